package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/ledgerflow/ledgerbot/internal/common"
	"github.com/ledgerflow/ledgerbot/internal/excel"
	"github.com/ledgerflow/ledgerbot/internal/model"
	"github.com/ledgerflow/ledgerbot/internal/report"
)

// handleStart shows the admin menu. Non-admins and group chats are refused.
func (b *Bot) handleStart(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat.Type != "private" {
		return
	}
	if !b.cfg.IsAdmin(msg.From.ID) {
		slog.Warn("menu request from non-admin", "user_id", msg.From.ID)
		return
	}

	_, err := b.api.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "What would you like to see?",
		ReplyMarkup: mainMenu(),
	})
	if err != nil {
		slog.Error("failed to send admin menu", "error", err)
	}
}

// handleMenuCallback dispatches admin menu button presses.
func (b *Bot) handleMenuCallback(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}

	if !b.cfg.IsAdmin(query.From.ID) {
		b.answerCallback(ctx, query.ID, "Access denied.", true)
		return
	}

	msg := query.Message.Message
	if msg == nil {
		b.answerCallback(ctx, query.ID, "", false)
		return
	}
	chatID := msg.Chat.ID

	b.answerCallback(ctx, query.ID, "", false)

	switch query.Data {
	case cbMain:
		b.editMenu(ctx, chatID, msg.ID, "What would you like to see?", mainMenu())
	case cbDebitCredit:
		b.sendDebitCredit(ctx, chatID)
	case cbBalance:
		b.sendBalance(ctx, chatID)
	case cbLastIncoming:
		b.sendLastIncoming(ctx, chatID)
	case cbLastOutgoing:
		b.sendLastOutgoing(ctx, chatID)
	case cbReports:
		b.editMenu(ctx, chatID, msg.ID, "Pick a reporting period:", reportsMenu())
	case cbReportWeek:
		b.sendPeriodReport(ctx, chatID, report.LastSevenDays(time.Now()))
	case cbReportMonth:
		b.sendPeriodReport(ctx, chatID, report.CurrentMonth(time.Now()))
	case cbReportPrevMonth:
		b.sendPeriodReport(ctx, chatID, report.PreviousMonth(time.Now()))
	default:
		slog.Warn("unknown menu callback", "data", query.Data)
	}
}

func (b *Bot) answerCallback(ctx context.Context, queryID, text string, alert bool) {
	_, err := b.api.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: queryID,
		Text:            text,
		ShowAlert:       alert,
	})
	if err != nil {
		slog.Warn("failed to answer callback query", "error", err)
	}
}

// editMenu swaps the menu message in place so navigation does not pile up
// messages in the admin's chat.
func (b *Bot) editMenu(ctx context.Context, chatID int64, messageID int, text string, markup *models.InlineKeyboardMarkup) {
	_, err := b.api.EditMessageText(ctx, &tgbot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		slog.Error("failed to edit menu", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) sendText(ctx context.Context, chatID int64, text string) {
	_, err := b.api.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		slog.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) sendDebitCredit(ctx context.Context, chatID int64) {
	summary, err := b.reports.DebitCredit(ctx)
	if err != nil {
		slog.Error("failed to build debit/credit summary", "error", err)
		b.sendText(ctx, chatID, "❌ Failed to query records.")
		return
	}
	b.sendText(ctx, chatID, formatDebitCredit(summary))
}

func (b *Bot) sendBalance(ctx context.Context, chatID int64) {
	summary, err := b.reports.DebitCredit(ctx)
	if err != nil {
		slog.Error("failed to build balance summary", "error", err)
		b.sendText(ctx, chatID, "❌ Failed to query records.")
		return
	}
	b.sendText(ctx, chatID, formatBalance(summary))
}

func (b *Bot) sendLastIncoming(ctx context.Context, chatID int64) {
	payment, err := b.reports.LastIncoming(ctx)
	switch {
	case errors.Is(err, common.ErrNotFound):
		b.sendText(ctx, chatID, "No incoming records yet.")
	case err != nil:
		slog.Error("failed to query last pay-in record", "error", err)
		b.sendText(ctx, chatID, "❌ Failed to query records.")
	default:
		b.sendText(ctx, chatID, formatPaymentIn(payment))
	}
}

func (b *Bot) sendLastOutgoing(ctx context.Context, chatID int64) {
	payment, err := b.reports.LastOutgoing(ctx)
	switch {
	case errors.Is(err, common.ErrNotFound):
		b.sendText(ctx, chatID, "No outgoing records yet.")
	case err != nil:
		slog.Error("failed to query last pay-out record", "error", err)
		b.sendText(ctx, chatID, "❌ Failed to query records.")
	default:
		b.sendText(ctx, chatID, formatPaymentOut(payment))
	}
}

func (b *Bot) sendPeriodReport(ctx context.Context, chatID int64, period report.Period) {
	incoming, outgoing, err := b.reports.PeriodRecords(ctx, period.Start, period.End)
	if err != nil {
		slog.Error("failed to query period records", "period", period.Name, "error", err)
		b.sendText(ctx, chatID, "❌ Failed to query records.")
		return
	}

	data, err := excel.PeriodReport(period, incoming, outgoing)
	if err != nil {
		slog.Error("failed to build xlsx report", "period", period.Name, "error", err)
		b.sendText(ctx, chatID, "❌ Failed to build the report.")
		return
	}

	_, err = b.api.SendDocument(ctx, &tgbot.SendDocumentParams{
		ChatID: chatID,
		Document: &models.InputFileUpload{
			Filename: reportFilename(period),
			Data:     bytes.NewReader(data),
		},
		Caption: period.Name,
	})
	if err != nil {
		slog.Error("failed to send xlsx report", "period", period.Name, "error", err)
		b.sendText(ctx, chatID, "❌ Failed to send the report.")
		return
	}
	slog.Info("report sent",
		"period", period.Name,
		"incoming", len(incoming),
		"outgoing", len(outgoing))
}

func reportFilename(period report.Period) string {
	return fmt.Sprintf("report_%s_%s.xlsx",
		period.Start.Format("2006-01-02"),
		period.End.Format("2006-01-02"))
}

func formatDebitCredit(s *report.Summary) string {
	return fmt.Sprintf(
		"📊 <b>Debit/Credit</b>\n\n"+
			"📥 Incoming: <b>%.2f</b> (%d records)\n"+
			"📤 Outgoing: <b>%.2f</b> (%d records)",
		s.TotalIncoming, s.IncomingCount, s.TotalOutgoing, s.OutgoingCount)
}

func formatBalance(s *report.Summary) string {
	icon := "🟢"
	if s.Balance() < 0 {
		icon = "🔴"
	}
	return fmt.Sprintf("%s Balance: <b>%.2f</b>", icon, s.Balance())
}

func formatPaymentIn(p *model.PaymentIn) string {
	return fmt.Sprintf(
		"📥 <b>Last incoming record</b>\n\n"+
			"Date: %s\nAmount: <b>%.2f</b>\nClient: %s\nTeacher: %s\nChat: %s\nRecorded: %s",
		p.Date.Format("02.01.2006"), p.Amount, p.Client, p.Teacher,
		p.ChatKind, p.CreatedAt.Format("02.01.2006 15:04"))
}

func formatPaymentOut(p *model.PaymentOut) string {
	return fmt.Sprintf(
		"📤 <b>Last outgoing record</b>\n\n"+
			"Date: %s\nAmount: <b>%.2f</b>\nCategory: %s\nRecipient: %s\nRecorded: %s",
		p.Date.Format("02.01.2006"), p.Amount, p.Category, p.Recipient,
		p.CreatedAt.Format("02.01.2006 15:04"))
}
