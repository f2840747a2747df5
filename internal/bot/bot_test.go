package bot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/classifier"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var now = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

type fakeSender struct {
	mu       sync.Mutex
	sent     []tgbotapi.MessageConfig
	SendFunc func(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	f.mu.Unlock()

	if f.SendFunc != nil {
		return f.SendFunc(c)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) last(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.sent, "no message was sent")
	return f.sent[len(f.sent)-1]
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newTestBot(t *testing.T) (*Bot, *fakeSender) {
	t.Helper()
	snapshot, err := storage.DefaultSeed(now)
	require.NoError(t, err)
	svc := catalog.NewService(storage.NewMemoryStorage(snapshot), classifier.FixedClock(now),
		catalog.Options{CurrentUserID: "me"}, zap.NewNop())

	sender := &fakeSender{}
	return NewWithSender(sender, svc, zap.NewNop()), sender
}

func command(chatID int64, text string) *tgbotapi.Message {
	cmd, _, _ := strings.Cut(text, " ")
	return &tgbotapi.Message{
		Chat:     &tgbotapi.Chat{ID: chatID},
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd)}},
	}
}

func text(chatID int64, s string) *tgbotapi.Message {
	return &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}, Text: s}
}

func TestBot_AlumniSearch(t *testing.T) {
	b, sender := newTestBot(t)
	ctx := context.Background()

	b.handleMessage(ctx, command(1, "/alumni priya"))

	msg := sender.last(t)
	assert.Equal(t, int64(1), msg.ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdownV2, msg.ParseMode)
	assert.Contains(t, msg.Text, "Priya Sharma")
	assert.NotContains(t, msg.Text, "Arjun Malhotra")

	b.handleMessage(ctx, text(1, "goldman"))
	msg = sender.last(t)
	assert.Contains(t, msg.Text, "Arjun Malhotra")
	assert.NotContains(t, msg.Text, "Priya Sharma")
}

func TestBot_FilterToggle(t *testing.T) {
	b, sender := newTestBot(t)
	ctx := context.Background()

	b.handleMessage(ctx, command(1, "/jobs"))
	b.handleMessage(ctx, command(1, "/filter employmentType internship"))

	msg := sender.last(t)
	assert.Contains(t, msg.Text, "UX Designer Intern")
	assert.NotContains(t, msg.Text, "DevOps Engineer")
	assert.Contains(t, msg.Text, "Filters: employmentType\\=internship")

	b.handleMessage(ctx, command(1, "/filter employmentType internship"))
	msg = sender.last(t)
	assert.Contains(t, msg.Text, "DevOps Engineer")
	assert.NotContains(t, msg.Text, "Filters:")
}

func TestBot_FilterListing(t *testing.T) {
	b, sender := newTestBot(t)
	ctx := context.Background()

	b.handleMessage(ctx, command(1, "/events"))
	b.handleMessage(ctx, command(1, "/filter"))
	assert.Contains(t, sender.last(t).Text, "Event Type")

	b.handleMessage(ctx, command(1, "/filter eventType hybrid"))
	assert.True(t, strings.HasPrefix(sender.last(t).Text, "⚠️ Unknown filter eventType=hybrid"))

	b.handleMessage(ctx, command(1, "/communities"))
	b.handleMessage(ctx, command(1, "/filter"))
	assert.Equal(t, "⚠️ The communities page has no filters.", sender.last(t).Text)
}

func TestBot_SwitchingPageResetsFilters(t *testing.T) {
	b, sender := newTestBot(t)
	ctx := context.Background()

	b.handleMessage(ctx, command(1, "/jobs"))
	b.handleMessage(ctx, command(1, "/tab saved"))
	b.handleMessage(ctx, command(1, "/filter location remote"))
	b.handleMessage(ctx, command(1, "/events"))
	b.handleMessage(ctx, command(1, "/jobs"))

	session, ok := b.sessions.Get(1)
	require.True(t, ok)
	assert.Equal(t, Session{Page: catalog.PageJobs}, session)
	assert.NotContains(t, sender.last(t).Text, "Tab:")
}

func TestBot_SessionsArePerChat(t *testing.T) {
	b, _ := newTestBot(t)
	ctx := context.Background()

	b.handleMessage(ctx, command(1, "/jobs"))
	b.handleMessage(ctx, command(2, "/alumni"))

	s1, _ := b.sessions.Get(1)
	s2, _ := b.sessions.Get(2)
	assert.Equal(t, catalog.PageJobs, s1.Page)
	assert.Equal(t, catalog.PageAlumni, s2.Page)
}

func TestBot_TabErrors(t *testing.T) {
	b, sender := newTestBot(t)
	ctx := context.Background()

	b.handleMessage(ctx, command(1, "/tab saved"))
	assert.Equal(t, "Open a page first, for example /jobs.", sender.last(t).Text)

	b.handleMessage(ctx, command(1, "/events"))
	b.handleMessage(ctx, command(1, "/tab archived"))
	assert.Contains(t, sender.last(t).Text, "unknown tab")

	b.handleMessage(ctx, command(1, "/tab past"))
	assert.Contains(t, sender.last(t).Text, "Tab: past")
}

func TestBot_Actions(t *testing.T) {
	b, sender := newTestBot(t)
	ctx := context.Background()

	b.handleMessage(ctx, command(1, "/apply 4"))
	assert.Equal(t, "Applied to UX Designer Intern at DesignHub.", sender.last(t).Text)

	b.handleMessage(ctx, command(1, "/apply 4"))
	assert.Equal(t, "⚠️ You have already applied to this job.", sender.last(t).Text)

	b.handleMessage(ctx, command(1, "/connect 2"))
	assert.Equal(t, "Connection request sent to Rahul Verma.", sender.last(t).Text)

	b.handleMessage(ctx, command(1, "/join 99"))
	assert.Equal(t, "⚠️ Nothing found with that id.", sender.last(t).Text)

	b.handleMessage(ctx, command(1, "/rsvp 1 maybe"))
	assert.Contains(t, sender.last(t).Text, "Usage: /rsvp")

	b.handleMessage(ctx, command(1, "/rsvp 1 going"))
	assert.Contains(t, sender.last(t).Text, "You are going for")

	b.handleMessage(ctx, command(1, "/alumni"))
	b.handleMessage(ctx, command(1, "/tab pending"))
	assert.Contains(t, sender.last(t).Text, "Rahul Verma")
}

func TestBot_SendShowsThread(t *testing.T) {
	b, sender := newTestBot(t)
	ctx := context.Background()

	b.handleMessage(ctx, command(1, "/send c3 Hello Ananya"))

	msg := sender.last(t)
	assert.Contains(t, msg.Text, "*Ananya Patel*")
	assert.Contains(t, msg.Text, "_Today_")
	assert.Contains(t, msg.Text, "You: Hello Ananya")

	b.handleMessage(ctx, command(1, "/send c3"))
	assert.Equal(t, "⚠️ Usage: /send <id> <text>", sender.last(t).Text)
}

func TestBot_JobDetail(t *testing.T) {
	b, sender := newTestBot(t)
	ctx := context.Background()

	b.handleMessage(ctx, command(1, "/job 1"))
	msg := sender.last(t)
	assert.Equal(t, tgbotapi.ModeMarkdownV2, msg.ParseMode)
	assert.Contains(t, msg.Text, "*Front\\-end Developer*")
	assert.Contains(t, msg.Text, "*Responsibilities*")
	assert.Contains(t, msg.Text, "• Design and implement user interface components using React")
	assert.Contains(t, msg.Text, "*Benefits*")
	assert.Contains(t, msg.Text, "Apply with /apply 1")

	b.handleMessage(ctx, command(1, "/job 3"))
	assert.Contains(t, sender.last(t).Text, "You have applied to this job\\.")

	b.handleMessage(ctx, command(1, "/job 42"))
	msg = sender.last(t)
	assert.Contains(t, msg.Text, "*Job not found*")
	assert.Contains(t, msg.Text, "doesn't exist or has been removed\\.")

	b.handleMessage(ctx, command(1, "/job"))
	assert.Equal(t, "⚠️ Usage: /job <id>", sender.last(t).Text)
}

func TestBot_ProfileDetail(t *testing.T) {
	b, sender := newTestBot(t)
	ctx := context.Background()

	b.handleMessage(ctx, command(1, "/profile 1"))
	msg := sender.last(t)
	assert.Contains(t, msg.Text, "*Priya Sharma*")
	assert.Contains(t, msg.Text, "*About*")
	assert.Contains(t, msg.Text, "• Software Engineer at Google · Jan 2022 \\- Present · San Francisco, CA")
	assert.Contains(t, msg.Text, "• B\\.Tech, KIIT University · Computer Science · 2014\\-2018")
	assert.Contains(t, msg.Text, "• Google Cloud Certified Professional · 2022")

	b.handleMessage(ctx, command(1, "/profile 2"))
	msg = sender.last(t)
	assert.NotContains(t, msg.Text, "*Experience*")
	assert.Contains(t, msg.Text, "Connect with /connect 2")

	b.handleMessage(ctx, command(1, "/profile nobody"))
	assert.Contains(t, sender.last(t).Text, "*Profile not found*")
}

func TestBot_TextWithoutPage(t *testing.T) {
	b, sender := newTestBot(t)

	b.handleMessage(context.Background(), text(7, "hello"))
	assert.Contains(t, sender.last(t).Text, "Open a page first")
}

func TestBot_UnknownCommand(t *testing.T) {
	b, sender := newTestBot(t)

	b.handleMessage(context.Background(), command(1, "/tags"))
	assert.Equal(t, "Unknown command. Use /help to see available commands.", sender.last(t).Text)
}

func TestBot_SendFailureIsLogged(t *testing.T) {
	b, sender := newTestBot(t)
	sender.SendFunc = func(tgbotapi.Chattable) (tgbotapi.Message, error) {
		return tgbotapi.Message{}, errors.New("network down")
	}

	assert.NotPanics(t, func() {
		b.handleMessage(context.Background(), command(1, "/help"))
	})
	assert.Equal(t, 1, sender.count())
}

func TestBot_ServeStopsWhenChannelCloses(t *testing.T) {
	b, sender := newTestBot(t)
	updates := make(chan tgbotapi.Update, 3)
	updates <- tgbotapi.Update{Message: command(1, "/start")}
	updates <- tgbotapi.Update{}
	updates <- tgbotapi.Update{Message: command(2, "/help")}
	close(updates)

	err := b.Serve(context.Background(), updates)
	require.NoError(t, err)
	assert.Equal(t, 2, sender.count())
}

func TestBot_ServeStopsOnCancel(t *testing.T) {
	b, _ := newTestBot(t)
	updates := make(chan tgbotapi.Update)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- b.Serve(ctx, updates) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestBot_StartWithoutAPI(t *testing.T) {
	b, _ := newTestBot(t)
	assert.Error(t, b.Start(context.Background()))
}
