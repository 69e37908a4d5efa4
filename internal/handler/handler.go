package handler

import (
	"context"

	"przypadek/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// DrillProvider produces translated case drills
type DrillProvider interface {
	Next(ctx context.Context) (*domain.CaseResponse, error)
}

// Handler serves drills over HTTP and, optionally, Telegram
type Handler struct {
	drills DrillProvider
	logger *zap.Logger

	service string
	version string
	checks  map[string]func() error
}

// NewHandler creates a new handler instance
func NewHandler(drills DrillProvider, logger *zap.Logger, service, version string, checks map[string]func() error) *Handler {
	return &Handler{
		drills:  drills,
		logger:  logger,
		service: service,
		version: version,
		checks:  checks,
	}
}

// RegisterBotHandlers registers all bot handlers
func (h *Handler) RegisterBotHandlers(bot *tele.Bot) {
	// Commands
	bot.Handle("/start", h.handleStart)
	bot.Handle("/drill", h.handleDrill)

	// Callback queries (inline buttons)
	bot.Handle(&btnNext, h.handleDrill)
}

// Inline keyboard buttons
var (
	btnNext = tele.Btn{
		Unique: "next_drill",
		Text:   "🎲 Next",
	}
)

// nextMarkup returns the keyboard offering another drill
func nextMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnNext),
	)
	return menu
}
