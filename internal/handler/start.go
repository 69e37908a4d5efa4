package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const startMessage = "Cześć! Each drill is an English sentence in one of three cases with its translation.\n\nSend /drill or tap the button to get one."

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot", senderFields(c)...)

	return c.Send(startMessage, nextMarkup())
}

// senderFields identifies who triggered an update.
// Channel posts have no sender, so the chat is logged instead.
func senderFields(c tele.Context) []zap.Field {
	if sender := c.Sender(); sender != nil {
		return []zap.Field{
			zap.Int64("user_id", sender.ID),
			zap.String("username", sender.Username),
		}
	}
	if chat := c.Chat(); chat != nil {
		return []zap.Field{zap.Int64("chat_id", chat.ID)}
	}
	return nil
}
