package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/ledgerflow/ledgerbot/internal/common"
	"github.com/ledgerflow/ledgerbot/internal/model"
	"github.com/ledgerflow/ledgerbot/internal/parse"
)

const (
	reactionSaved   = "👍"
	reactionDeleted = "👎"
)

// isCancellation reports whether the text asks to undo a record.
// Matching is case-insensitive and ignores surrounding whitespace.
func isCancellation(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "cancel")
}

// handleChatMessage routes a group message by the chat it arrived in.
// Messages from unmonitored chats are dropped.
func (b *Bot) handleChatMessage(ctx context.Context, msg *models.Message) {
	if msg.Text == "" {
		return
	}

	chatID := msg.Chat.ID
	kind, isPayin := b.cfg.PayinKind(chatID)

	switch {
	case isPayin:
		if b.tryCancel(ctx, msg, true) {
			return
		}
		parser := b.incomingRU
		if kind == model.ChatKindENG {
			parser = b.incomingENG
		}
		b.recordPayin(ctx, msg, parser)
	case b.cfg.IsPayoutChat(chatID):
		if b.tryCancel(ctx, msg, false) {
			return
		}
		b.recordPayout(ctx, msg)
	}
}

// tryCancel handles "cancel" replies. It returns true when the message was
// a cancellation request, whether or not a record was deleted. A bare
// "cancel" that replies to nothing is not a cancellation request and falls
// through to the classifier, which drops it.
func (b *Bot) tryCancel(ctx context.Context, msg *models.Message, payin bool) bool {
	if msg.ReplyToMessage == nil || !isCancellation(msg.Text) {
		return false
	}

	target := msg.ReplyToMessage
	var summary string
	var err error
	if payin {
		var deleted *model.PaymentIn
		deleted, err = b.store.DeletePaymentInByMessage(ctx, msg.Chat.ID, int64(target.ID))
		if err == nil {
			summary = fmt.Sprintf("%.2f from %s to %s", deleted.Amount, deleted.Client, deleted.Teacher)
		}
	} else {
		var deleted *model.PaymentOut
		deleted, err = b.store.DeletePaymentOutByMessage(ctx, msg.Chat.ID, int64(target.ID))
		if err == nil {
			summary = fmt.Sprintf("%.2f for %s to %s", deleted.Amount, deleted.Category, deleted.Recipient)
		}
	}

	switch {
	case err == nil:
		b.react(ctx, msg.Chat.ID, target.ID, reactionDeleted)
		b.reply(ctx, msg, "✅ Record deleted: "+summary)
		slog.Info("record canceled",
			"chat_id", msg.Chat.ID,
			"message_id", target.ID)
	case errors.Is(err, common.ErrNotFound):
		b.reply(ctx, msg, "❌ No record found for that message.")
	default:
		slog.Error("failed to delete record",
			"chat_id", msg.Chat.ID,
			"message_id", target.ID,
			"error", err)
		b.reply(ctx, msg, "❌ Failed to delete the record, try again later.")
	}
	return true
}

func (b *Bot) recordPayin(ctx context.Context, msg *models.Message, parser *parse.IncomingParser) {
	if !parse.LooksLikePayment(msg.Text) {
		return
	}

	payment, err := parser.Parse(msg.Text)
	if err != nil {
		b.replyParseFailure(ctx, msg, err)
		return
	}
	payment.MessageID = int64(msg.ID)
	payment.ChatID = msg.Chat.ID

	if err := b.store.SavePaymentIn(ctx, payment); err != nil {
		b.replySaveFailure(ctx, msg, err)
		return
	}

	slog.Info("pay-in record saved",
		"chat_id", msg.Chat.ID,
		"message_id", msg.ID,
		"amount", payment.Amount,
		"chat_kind", payment.ChatKind)
	b.react(ctx, msg.Chat.ID, msg.ID, reactionSaved)
}

func (b *Bot) recordPayout(ctx context.Context, msg *models.Message) {
	if !parse.LooksLikePayment(msg.Text) {
		return
	}

	payment, err := b.outgoing.Parse(msg.Text)
	if err != nil {
		b.replyParseFailure(ctx, msg, err)
		return
	}
	payment.MessageID = int64(msg.ID)
	payment.ChatID = msg.Chat.ID

	if err := b.store.SavePaymentOut(ctx, payment); err != nil {
		b.replySaveFailure(ctx, msg, err)
		return
	}

	slog.Info("pay-out record saved",
		"chat_id", msg.Chat.ID,
		"message_id", msg.ID,
		"amount", payment.Amount,
		"category", payment.Category)
	b.react(ctx, msg.Chat.ID, msg.ID, reactionSaved)
}

func (b *Bot) replyParseFailure(ctx context.Context, msg *models.Message, err error) {
	var parseErr *parse.Error
	if errors.As(err, &parseErr) {
		b.reply(ctx, msg, "❌ "+parseErr.Diagnostic)
		return
	}
	slog.Error("unexpected parse failure",
		"chat_id", msg.Chat.ID,
		"message_id", msg.ID,
		"error", err)
	b.reply(ctx, msg, "❌ Could not read the record.")
}

func (b *Bot) replySaveFailure(ctx context.Context, msg *models.Message, err error) {
	if errors.Is(err, common.ErrDuplicateEntry) {
		b.reply(ctx, msg, "❌ This message is already recorded.")
		return
	}
	slog.Error("failed to save record",
		"chat_id", msg.Chat.ID,
		"message_id", msg.ID,
		"error", err)
	b.reply(ctx, msg, "❌ Failed to save the record, try again later.")
}
