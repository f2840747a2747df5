package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ChatCompleter is the part of *openai.Client the classifier needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type industryResponse struct {
	Industry string `json:"industry"`
}

// GPTClassifier asks a chat model which Industry tag fits a company name.
type GPTClassifier struct {
	client      ChatCompleter
	model       string
	maxTokens   int
	temperature float64
	tags        []string
	logger      *zap.Logger
}

func NewGPTClassifier(apiKey string, model string, maxTokens int, temperature float64, logger *zap.Logger) *GPTClassifier {
	return NewGPTClassifierWithClient(openai.NewClient(apiKey), model, maxTokens, temperature, logger)
}

// NewGPTClassifierWithClient uses client instead of the OpenAI API.
func NewGPTClassifierWithClient(client ChatCompleter, model string, maxTokens int, temperature float64, logger *zap.Logger) *GPTClassifier {
	return &GPTClassifier{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		tags:        Industry.Tags(),
		logger:      logger,
	}
}

// ClassifyIndustry returns one of the Industry tags for company, or "" when
// the model answers with anything else.
func (c *GPTClassifier) ClassifyIndustry(ctx context.Context, company string) (string, error) {
	prompt := fmt.Sprintf(`Which industry does the company below operate in?
Choose exactly one of: %s.
If none of them fits, answer "none".

Return the response as a JSON object with this structure:
{
    "industry": "one_of_the_choices"
}

Company: %s`, strings.Join(c.tags, ", "), company)

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   c.maxTokens,
			Temperature: float32(c.temperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to get GPT response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("GPT response has no choices")
	}

	var parsed industryResponse
	response := stripCodeFence(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		c.logger.Error("Failed to parse GPT response",
			zap.Error(err),
			zap.String("response", response))
		return "", fmt.Errorf("failed to parse GPT response: %w", err)
	}

	industry := strings.ToLower(strings.TrimSpace(parsed.Industry))
	for _, tag := range c.tags {
		if tag == industry {
			return tag, nil
		}
	}
	c.logger.Debug("GPT answered with no known industry",
		zap.String("company", company),
		zap.String("industry", parsed.Industry))
	return "", nil
}

// stripCodeFence removes a ```json fence some models wrap around JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
