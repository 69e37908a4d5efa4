package handler

import (
	"context"
	"time"

	"przypadek/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	botDrillTimeout     = 15 * time.Second
	botTranslationError = "Translation is unavailable right now. Try again later."
)

// handleDrill handles /drill command and the "next" button
func (h *Handler) handleDrill(c tele.Context) error {
	if c.Callback() != nil {
		_ = c.Respond()
	}

	ctx, cancel := context.WithTimeout(context.Background(), botDrillTimeout)
	defer cancel()

	drill, err := h.drills.Next(ctx)
	if err != nil {
		h.logger.Error("Failed to build drill for bot",
			append(senderFields(c), zap.Error(err))...,
		)
		return c.Send(botTranslationError)
	}

	return c.Send(formatDrill(drill), nextMarkup())
}

// formatDrill renders a drill as a two-line chat message
func formatDrill(drill *domain.CaseResponse) string {
	return drill.English + "\n→ " + drill.Polish
}
