package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/storage"
	"go.uber.org/zap"
)

// Sender delivers replies. *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api      *tgbotapi.BotAPI
	sender   Sender
	service  *catalog.Service
	sessions *Sessions
	timeout  int
	logger   *zap.Logger
	wg       sync.WaitGroup
}

func New(token string, timeout int, service *catalog.Service, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := NewWithSender(api, service, logger)
	b.api = api
	b.timeout = timeout
	return b, nil
}

// NewWithSender builds a bot that replies through sender and is fed by Serve.
func NewWithSender(sender Sender, service *catalog.Service, logger *zap.Logger) *Bot {
	return &Bot{
		sender:   sender,
		service:  service,
		sessions: NewSessions(),
		logger:   logger,
	}
}

// Start long-polls Telegram until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if b.api == nil {
		return errors.New("bot has no Telegram API client")
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.timeout

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	b.logger.Info("Bot started", zap.String("username", b.api.Self.UserName))
	return b.Serve(ctx, updates)
}

// Serve handles updates until the channel closes or ctx is cancelled, then
// waits for in-flight handlers.
func (b *Bot) Serve(ctx context.Context, updates <-chan tgbotapi.Update) error {
	defer b.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}

			b.wg.Add(1)
			go func(message *tgbotapi.Message) {
				defer b.wg.Done()
				b.handleMessage(ctx, message)
			}(update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	// Plain text refines the search on the open page
	text := strings.TrimSpace(message.Text)
	session, ok := b.sessions.Update(message.Chat.ID, func(s *Session) { s.Search = text })
	if !ok {
		b.sendMessage(message.Chat.ID, "Open a page first, for example /alumni or /jobs. Use /help to see all commands.")
		return
	}
	b.showPage(ctx, message.Chat.ID, session)
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	args := strings.TrimSpace(message.CommandArguments())

	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.handleHelp(message)
	case "alumni":
		b.openPage(ctx, message.Chat.ID, catalog.PageAlumni, args)
	case "jobs":
		b.openPage(ctx, message.Chat.ID, catalog.PageJobs, args)
	case "events":
		b.openPage(ctx, message.Chat.ID, catalog.PageEvents, args)
	case "communities":
		b.openPage(ctx, message.Chat.ID, catalog.PageCommunities, args)
	case "messages":
		b.openPage(ctx, message.Chat.ID, catalog.PageConversations, args)
	case "thread":
		b.handleThread(ctx, message.Chat.ID, args)
	case "job":
		b.handleJob(ctx, message.Chat.ID, args)
	case "profile":
		b.handleProfile(ctx, message.Chat.ID, args)
	case "tab":
		b.handleTab(ctx, message.Chat.ID, args)
	case "filter":
		b.handleFilter(ctx, message.Chat.ID, args)
	case "clear":
		b.handleClear(ctx, message.Chat.ID)
	case "connect", "save", "apply", "rsvp", "join", "send":
		b.handleAction(ctx, message.Chat.ID, message.Command(), args)
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Use /help to see available commands.")
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	welcome := `Welcome to KIIT Connect Circle! 🎓
Browse the alumni directory, the job board, events, communities and your conversations.

Open a page with /alumni, /jobs, /events, /communities or /messages, then send any text to search it.
Use /help to see all available commands.`

	b.sendMessage(message.Chat.ID, welcome)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	help := `Available commands:
/start - Start the bot
/help - Show this help message
/alumni [query] - Search the alumni directory
/jobs [query] - Search the job board
/events [query] - Search events
/communities [query] - Search communities
/messages [query] - Search your conversations by name
/thread <id> - Show a conversation
/job <id> - Show a job posting
/profile <id> - Show an alumni profile
/tab <name> - Switch tab on the open page
/filter [group option] - List filters, or toggle one
/clear - Reset search, tab and filters
/connect <id> - Send a connection request
/save <id> - Save or unsave a job
/apply <id> - Apply to a job
/rsvp <id> <going|interested|not-going|none> - Respond to an event
/join <id> - Join a community
/send <id> <text> - Send a message

Any other text searches the open page.`

	b.sendMessage(message.Chat.ID, help)
}

func (b *Bot) openPage(ctx context.Context, chatID int64, page catalog.Page, search string) {
	session := b.sessions.Open(chatID, page, search)
	b.showPage(ctx, chatID, session)
}

func (b *Bot) handleTab(ctx context.Context, chatID int64, tab string) {
	if tab == "" {
		b.sendErrorMessage(chatID, "Usage: /tab <name>")
		return
	}
	session, ok := b.sessions.Get(chatID)
	if !ok {
		b.sendMessage(chatID, "Open a page first, for example /jobs.")
		return
	}
	if err := checkTab(session.Page, tab); err != nil {
		b.sendErrorMessage(chatID, err.Error())
		return
	}
	session, _ = b.sessions.Update(chatID, func(s *Session) { s.Tab = tab })
	b.showPage(ctx, chatID, session)
}

func checkTab(page catalog.Page, tab string) error {
	var err error
	switch page {
	case catalog.PageAlumni:
		_, err = catalog.ParseAlumniTab(tab)
	case catalog.PageJobs:
		_, err = catalog.ParseJobsTab(tab)
	case catalog.PageEvents:
		_, err = catalog.ParseEventsTab(tab)
	default:
		err = fmt.Errorf("the %s page has no tabs", page)
	}
	return err
}

func (b *Bot) handleFilter(ctx context.Context, chatID int64, args string) {
	session, ok := b.sessions.Get(chatID)
	if !ok {
		b.sendMessage(chatID, "Open a page first, for example /alumni.")
		return
	}

	facets, err := b.facets(ctx, session.Page)
	if err != nil {
		b.logger.Error("Failed to list filters",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
		b.sendErrorMessage(chatID, "Sorry, I couldn't load the filters.")
		return
	}
	if len(facets) == 0 {
		b.sendErrorMessage(chatID, fmt.Sprintf("The %s page has no filters.", session.Page))
		return
	}

	fields := strings.Fields(args)
	if len(fields) == 0 {
		b.sendMarkdown(chatID, renderFacets(facets, session.Facets))
		return
	}
	if len(fields) != 2 {
		b.sendErrorMessage(chatID, "Usage: /filter <group> <option>")
		return
	}
	group, option := fields[0], fields[1]
	if !hasOption(facets, group, option) {
		b.sendErrorMessage(chatID, fmt.Sprintf("Unknown filter %s=%s. Send /filter to list them.", group, option))
		return
	}

	session, _ = b.sessions.Update(chatID, func(s *Session) { s.Facets = s.Facets.Toggle(group, option) })
	b.showPage(ctx, chatID, session)
}

func (b *Bot) facets(ctx context.Context, page catalog.Page) ([]facetView, error) {
	switch page {
	case catalog.PageAlumni:
		facets, err := b.service.AlumniFacets(ctx)
		if err != nil {
			return nil, err
		}
		return facetViews(facets), nil
	case catalog.PageJobs:
		return facetViews(catalog.JobsFilter.Facets()), nil
	case catalog.PageEvents:
		return facetViews(catalog.EventsFilter.Facets()), nil
	}
	return nil, nil
}

func hasOption(facets []facetView, group, option string) bool {
	for _, f := range facets {
		if f.ID != group {
			continue
		}
		for _, o := range f.Options {
			if o.ID == option {
				return true
			}
		}
	}
	return false
}

func (b *Bot) handleClear(ctx context.Context, chatID int64) {
	session, ok := b.sessions.Get(chatID)
	if !ok {
		b.sendMessage(chatID, "Nothing to clear. Open a page with /alumni, /jobs or /events.")
		return
	}
	b.openPage(ctx, chatID, session.Page, "")
}

func (b *Bot) showPage(ctx context.Context, chatID int64, session Session) {
	text, err := b.renderPage(ctx, session)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownTab) || errors.Is(err, catalog.ErrUnknownFacet) {
			b.sendErrorMessage(chatID, err.Error())
			return
		}
		b.logger.Error("Failed to evaluate page",
			zap.Error(err),
			zap.String("page", string(session.Page)),
			zap.Int64("chat_id", chatID))
		b.sendErrorMessage(chatID, "Sorry, I couldn't load this page. Please try again later.")
		return
	}
	b.sendMarkdown(chatID, text)
}

func (b *Bot) renderPage(ctx context.Context, session Session) (string, error) {
	switch session.Page {
	case catalog.PageAlumni:
		r, err := b.service.Alumni(ctx, catalog.AlumniQuery{Query: session.query(), Tab: catalog.AlumniTab(session.Tab)})
		if err != nil {
			return "", err
		}
		return renderAlumni(r, session), nil
	case catalog.PageJobs:
		r, err := b.service.Jobs(ctx, catalog.JobsQuery{Query: session.query(), Tab: catalog.JobsTab(session.Tab)})
		if err != nil {
			return "", err
		}
		return renderJobs(r, session), nil
	case catalog.PageEvents:
		r, err := b.service.Events(ctx, catalog.EventsQuery{Query: session.query(), Tab: catalog.EventsTab(session.Tab)})
		if err != nil {
			return "", err
		}
		return renderEvents(r, session), nil
	case catalog.PageCommunities:
		r, err := b.service.Communities(ctx, session.Search)
		if err != nil {
			return "", err
		}
		return renderCommunities(r, session), nil
	case catalog.PageConversations:
		r, err := b.service.Conversations(ctx, session.Search)
		if err != nil {
			return "", err
		}
		return renderConversations(r, session), nil
	}
	return "", fmt.Errorf("unknown page %q", session.Page)
}

func (b *Bot) handleThread(ctx context.Context, chatID int64, id string) {
	if id == "" {
		b.sendErrorMessage(chatID, "Usage: /thread <id>")
		return
	}
	view, err := b.service.Thread(ctx, id)
	if err != nil {
		b.replyActionError(chatID, "thread", err)
		return
	}
	b.sendMarkdown(chatID, renderThread(view))
}

func (b *Bot) handleJob(ctx context.Context, chatID int64, id string) {
	if id == "" {
		b.sendErrorMessage(chatID, "Usage: /job <id>")
		return
	}
	detail, err := b.service.Job(ctx, id)
	if err != nil {
		b.replyActionError(chatID, "job", err)
		return
	}
	b.sendMarkdown(chatID, renderJobDetail(detail))
}

func (b *Bot) handleProfile(ctx context.Context, chatID int64, id string) {
	if id == "" {
		b.sendErrorMessage(chatID, "Usage: /profile <id>")
		return
	}
	detail, err := b.service.Profile(ctx, id)
	if err != nil {
		b.replyActionError(chatID, "profile", err)
		return
	}
	b.sendMarkdown(chatID, renderProfile(detail))
}

func (b *Bot) handleAction(ctx context.Context, chatID int64, command, args string) {
	id, rest, _ := strings.Cut(args, " ")
	rest = strings.TrimSpace(rest)
	if id == "" {
		b.sendErrorMessage(chatID, fmt.Sprintf("Usage: /%s <id>", command))
		return
	}

	store := b.service.Store()
	var (
		reply string
		err   error
	)
	switch command {
	case "connect":
		var p models.Profile
		if p, err = store.Connect(ctx, id); err == nil {
			reply = fmt.Sprintf("Connection request sent to %s.", p.Name)
			if p.Connection == models.ConnectionConnected {
				reply = fmt.Sprintf("You are already connected with %s.", p.Name)
			}
		}
	case "save":
		var j models.JobPosting
		if j, err = store.ToggleSaved(ctx, id); err == nil {
			reply = fmt.Sprintf("Removed %s from saved jobs.", j.Title)
			if j.Saved {
				reply = fmt.Sprintf("Saved %s.", j.Title)
			}
		}
	case "apply":
		var j models.JobPosting
		if j, err = store.Apply(ctx, id); err == nil {
			reply = fmt.Sprintf("Applied to %s at %s.", j.Title, j.Company)
		}
	case "rsvp":
		status, ok := models.ParseRSVP(rest)
		if !ok || rest == "" {
			b.sendErrorMessage(chatID, "Usage: /rsvp <id> <going|interested|not-going|none>")
			return
		}
		var e models.Event
		if e, err = store.SetRSVP(ctx, id, status); err == nil {
			reply = fmt.Sprintf("RSVP for %s cleared.", e.Title)
			if status != models.RSVPNone {
				reply = fmt.Sprintf("You are %s for %s.", status, e.Title)
			}
		}
	case "join":
		var c models.Community
		if c, err = store.JoinCommunity(ctx, id); err == nil {
			reply = fmt.Sprintf("You joined %s.", c.Name)
		}
	case "send":
		if rest == "" {
			b.sendErrorMessage(chatID, "Usage: /send <id> <text>")
			return
		}
		if _, err = store.SendMessage(ctx, id, b.service.CurrentUser(), rest, b.service.Clock().Now()); err == nil {
			b.handleThread(ctx, chatID, id)
			return
		}
	}
	if err != nil {
		b.replyActionError(chatID, command, err)
		return
	}
	b.sendMessage(chatID, reply)
}

func (b *Bot) replyActionError(chatID int64, action string, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		b.sendErrorMessage(chatID, "Nothing found with that id.")
	case errors.Is(err, storage.ErrAlreadyApplied):
		b.sendErrorMessage(chatID, "You have already applied to this job.")
	case errors.Is(err, storage.ErrEventFull):
		b.sendErrorMessage(chatID, "Sorry, this event is full.")
	case errors.Is(err, storage.ErrEmptyMessage):
		b.sendErrorMessage(chatID, "Message text is empty.")
	default:
		b.logger.Error("Action failed",
			zap.Error(err),
			zap.String("action", action),
			zap.Int64("chat_id", chatID))
		b.sendErrorMessage(chatID, "Sorry, something went wrong. Please try again.")
	}
}

func (b *Bot) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send page",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "⚠️ "+text)
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send error message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
