// Package bot wires the Telegram transport to record parsing, storage
// and the admin report menu.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/ledgerflow/ledgerbot/internal/config"
	"github.com/ledgerflow/ledgerbot/internal/model"
	"github.com/ledgerflow/ledgerbot/internal/parse"
	"github.com/ledgerflow/ledgerbot/internal/report"
	"github.com/ledgerflow/ledgerbot/internal/service"
)

// transport is the slice of the Telegram client the handlers call. It is
// what the tests stub out; *tgbot.Bot satisfies it.
type transport interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*models.Message, error)
	SendDocument(ctx context.Context, params *tgbot.SendDocumentParams) (*models.Message, error)
	SetMessageReaction(ctx context.Context, params *tgbot.SetMessageReactionParams) (bool, error)
	AnswerCallbackQuery(ctx context.Context, params *tgbot.AnswerCallbackQueryParams) (bool, error)
	EditMessageText(ctx context.Context, params *tgbot.EditMessageTextParams) (*models.Message, error)
}

// Bot handles Telegram updates for the monitored chats and the admin menu.
type Bot struct {
	tg          *tgbot.Bot
	api         transport
	cfg         *config.Config
	store       service.Storage
	reports     *report.Service
	incomingRU  *parse.IncomingParser
	incomingENG *parse.IncomingParser
	outgoing    *parse.OutgoingParser
}

// newBot assembles the handler state without connecting to Telegram.
func newBot(cfg *config.Config, store service.Storage, reports *report.Service, api transport) *Bot {
	return &Bot{
		api:         api,
		cfg:         cfg,
		store:       store,
		reports:     reports,
		incomingRU:  parse.NewIncomingParser(model.ChatKindRU),
		incomingENG: parse.NewIncomingParser(model.ChatKindENG),
		outgoing:    parse.NewOutgoingParser(),
	}
}

// New builds the bot and registers its update handlers.
func New(cfg *config.Config, store service.Storage, reports *report.Service) (*Bot, error) {
	b := newBot(cfg, store, reports, nil)

	tg, err := tgbot.New(cfg.TelegramToken, tgbot.WithDefaultHandler(b.handleUpdate))
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}
	b.tg = tg
	b.api = tg

	tg.RegisterHandler(tgbot.HandlerTypeMessageText, "/start", tgbot.MatchTypeExact, b.handleStart)
	tg.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "menu:", tgbot.MatchTypePrefix, b.handleMenuCallback)

	return b, nil
}

// Run processes updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) {
	slog.Info("bot started")
	b.tg.Start(ctx)
	slog.Info("bot stopped")
}

// handleUpdate receives everything the registered handlers did not claim.
// Only group messages from the monitored chats are of interest.
func (b *Bot) handleUpdate(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	b.handleChatMessage(ctx, update.Message)
}

// react sets an emoji reaction on a message. Reaction failures are logged
// and swallowed; the record outcome never depends on them.
func (b *Bot) react(ctx context.Context, chatID int64, messageID int, emoji string) {
	_, err := b.api.SetMessageReaction(ctx, &tgbot.SetMessageReactionParams{
		ChatID:    chatID,
		MessageID: messageID,
		Reaction: []models.ReactionType{
			{
				Type:              models.ReactionTypeTypeEmoji,
				ReactionTypeEmoji: &models.ReactionTypeEmoji{Type: "emoji", Emoji: emoji},
			},
		},
	})
	if err != nil {
		slog.Warn("failed to set reaction",
			"chat_id", chatID,
			"message_id", messageID,
			"error", err)
	}
}

// reply sends a text response to the same chat, quoting the original message.
func (b *Bot) reply(ctx context.Context, msg *models.Message, text string) {
	_, err := b.api.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:          msg.Chat.ID,
		Text:            text,
		ReplyParameters: &models.ReplyParameters{MessageID: msg.ID},
	})
	if err != nil {
		slog.Error("failed to send reply",
			"chat_id", msg.Chat.ID,
			"error", err)
	}
}
