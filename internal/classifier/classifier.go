package classifier

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule maps a tag to the keywords that imply it.
type Rule struct {
	Tag      string
	Keywords []string
}

// KeywordClassifier tags free text by case-insensitive keyword matching.
// A keyword only matches whole words: "meta" tags "Meta Platforms" but not
// "Metadata Capital".
type KeywordClassifier struct {
	rules   []Rule
	maxTags int
}

// NewKeywordClassifier returns a classifier that applies rules in order.
// maxTags <= 0 means no limit.
func NewKeywordClassifier(maxTags int, rules ...Rule) *KeywordClassifier {
	return &KeywordClassifier{
		rules:   rules,
		maxTags: maxTags,
	}
}

// Classify returns the tags whose keywords occur in content, in rule order.
func (c *KeywordClassifier) Classify(content string) []string {
	content = strings.ToLower(content)
	tags := []string{}
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if containsWord(content, strings.ToLower(keyword)) {
				tags = append(tags, rule.Tag)
				break
			}
		}
		if c.maxTags > 0 && len(tags) == c.maxTags {
			break
		}
	}
	return tags
}

// Is reports whether content carries tag.
func (c *KeywordClassifier) Is(content, tag string) bool {
	for _, rule := range c.rules {
		if rule.Tag != tag {
			continue
		}
		content = strings.ToLower(content)
		for _, keyword := range rule.Keywords {
			if containsWord(content, strings.ToLower(keyword)) {
				return true
			}
		}
		return false
	}
	return false
}

// containsWord reports whether keyword occurs in content with no letter or
// digit directly before or after it. Edges of the keyword that are not
// letters or digits, like the comma in ", uk", need no boundary.
func containsWord(content, keyword string) bool {
	if keyword == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(keyword)
	last, _ := utf8.DecodeLastRuneInString(keyword)
	for offset := 0; offset < len(content); {
		i := strings.Index(content[offset:], keyword)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(keyword)
		before, _ := utf8.DecodeLastRuneInString(content[:start])
		after, _ := utf8.DecodeRuneInString(content[end:])
		if (start == 0 || !isWordRune(first) || !isWordRune(before)) &&
			(end == len(content) || !isWordRune(last) || !isWordRune(after)) {
			return true
		}
		offset = start + 1
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Tags lists the tags the classifier knows, in rule order.
func (c *KeywordClassifier) Tags() []string {
	tags := make([]string, len(c.rules))
	for i, rule := range c.rules {
		tags[i] = rule.Tag
	}
	return tags
}

// Industry tags a company name with the sector it operates in.
var Industry = NewKeywordClassifier(0,
	Rule{Tag: "tech", Keywords: []string{"google", "microsoft", "adobe", "amazon", "meta", "apple", "infosys", "wipro", "tcs", "techcorp", "cloudnative", "dataviz"}},
	Rule{Tag: "finance", Keywords: []string{"goldman", "morgan", "jpmorgan", "bank", "banking", "capital", "fintech", "finance", "financial"}},
	Rule{Tag: "healthcare", Keywords: []string{"health", "healthcare", "pharma", "pharmaceuticals", "hospital", "hospitals", "medical", "apollo"}},
	Rule{Tag: "education", Keywords: []string{"university", "school", "academy", "byju", "byjus", "education"}},
	Rule{Tag: "consulting", Keywords: []string{"deloitte", "mckinsey", "accenture", "kpmg", "consulting", "consultancy", "consultants"}},
)

// Region tags a location string with the country it lies in.
var Region = NewKeywordClassifier(0,
	Rule{Tag: "india", Keywords: []string{"india", "bangalore", "bengaluru", "mumbai", "delhi", "hyderabad", "pune", "bhubaneswar"}},
	Rule{Tag: "us", Keywords: []string{"san francisco", "seattle", "new york", "austin", "usa", "united states"}},
	Rule{Tag: "uk", Keywords: []string{"london", "united kingdom", ", uk"}},
	Rule{Tag: "canada", Keywords: []string{"toronto", "vancouver", "canada"}},
	Rule{Tag: "australia", Keywords: []string{"sydney", "melbourne", "australia"}},
)

// ExperienceLevel buckets a requirement like "2-4 years" or "5+ years".
type ExperienceLevel string

const (
	Entry  ExperienceLevel = "entry"
	Mid    ExperienceLevel = "mid"
	Senior ExperienceLevel = "senior"
)

// ClassifyExperience buckets by the lower bound of the required years:
// below 2 is entry, 2 through 4 is mid, 5 and above is senior.
func ClassifyExperience(requirement string) (ExperienceLevel, bool) {
	s := strings.TrimSpace(requirement)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return "", false
	}
	years, err := strconv.Atoi(s[:end])
	if err != nil {
		return "", false
	}
	switch {
	case years < 2:
		return Entry, true
	case years < 5:
		return Mid, true
	default:
		return Senior, true
	}
}
