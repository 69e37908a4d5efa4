package handler

import (
	"testing"

	"przypadek/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"
)

func TestFormatDrill(t *testing.T) {
	tests := []struct {
		name     string
		drill    *domain.CaseResponse
		expected string
	}{
		{
			name:     "singular",
			drill:    &domain.CaseResponse{English: "I have a dog", Polish: "Mam psa"},
			expected: "I have a dog\n→ Mam psa",
		},
		{
			name:     "plural",
			drill:    &domain.CaseResponse{English: "I do not have red foxs", Polish: "Nie mam czerwonych lisów"},
			expected: "I do not have red foxs\n→ Nie mam czerwonych lisów",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDrill(tt.drill))
		})
	}
}

func TestNextMarkup(t *testing.T) {
	markup := nextMarkup()

	if assert.Len(t, markup.InlineKeyboard, 1) && assert.Len(t, markup.InlineKeyboard[0], 1) {
		assert.Equal(t, btnNext.Text, markup.InlineKeyboard[0][0].Text)
	}
}

func TestSenderFields(t *testing.T) {
	bot, err := tele.NewBot(tele.Settings{Offline: true})
	require.NoError(t, err)

	tests := []struct {
		name     string
		update   tele.Update
		expected map[string]interface{}
	}{
		{
			name: "private message",
			update: tele.Update{Message: &tele.Message{
				Sender: &tele.User{ID: 42, Username: "ola"},
				Chat:   &tele.Chat{ID: 42},
			}},
			expected: map[string]interface{}{"user_id": int64(42), "username": "ola"},
		},
		{
			name: "channel post without sender",
			update: tele.Update{ChannelPost: &tele.Message{
				Chat: &tele.Chat{ID: -100123},
			}},
			expected: map[string]interface{}{"chat_id": int64(-100123)},
		},
		{
			name:     "empty update",
			update:   tele.Update{},
			expected: map[string]interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := zapcore.NewMapObjectEncoder()
			for _, field := range senderFields(bot.NewContext(tt.update)) {
				field.AddTo(enc)
			}

			assert.Equal(t, tt.expected, enc.Fields)
		})
	}
}
