package bot

import "github.com/go-telegram/bot/models"

// Callback payloads for the admin menu. The "menu:" prefix routes every
// button press to the same handler.
const (
	cbDebitCredit     = "menu:debit_credit"
	cbBalance         = "menu:balance"
	cbLastIncoming    = "menu:last_in"
	cbLastOutgoing    = "menu:last_out"
	cbReports         = "menu:reports"
	cbMain            = "menu:main"
	cbReportWeek      = "menu:report_week"
	cbReportMonth     = "menu:report_month"
	cbReportPrevMonth = "menu:report_prev_month"
)

func mainMenu() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "📊 Debit/Credit", CallbackData: cbDebitCredit},
				{Text: "💰 Balance", CallbackData: cbBalance},
			},
			{
				{Text: "📥 Last Incoming", CallbackData: cbLastIncoming},
				{Text: "📤 Last Outgoing", CallbackData: cbLastOutgoing},
			},
			{
				{Text: "📈 Reports", CallbackData: cbReports},
			},
		},
	}
}

func reportsMenu() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "Last 7 Days", CallbackData: cbReportWeek},
			},
			{
				{Text: "Current Month", CallbackData: cbReportMonth},
			},
			{
				{Text: "Previous Month", CallbackData: cbReportPrevMonth},
			},
			{
				{Text: "« Back", CallbackData: cbMain},
			},
		},
	}
}
