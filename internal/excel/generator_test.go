package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/ledgerflow/ledgerbot/internal/model"
	"github.com/ledgerflow/ledgerbot/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testPeriod() report.Period {
	return report.Period{
		Start: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		Name:  "Current Month (February 2026)",
	}
}

func testRecords() ([]model.PaymentIn, []model.PaymentOut) {
	day1 := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 2, 5, 10, 30, 0, 0, time.UTC)

	incoming := []model.PaymentIn{
		{Date: day1, CreatedAt: created, Amount: 5000, Client: "Ivanov", Teacher: "Petrov", ChatKind: model.ChatKindRU},
		{Date: day2, CreatedAt: created, Amount: 2500, Client: "Smith", Teacher: "Petrov", ChatKind: model.ChatKindENG},
		{Date: day2, CreatedAt: created, Amount: 1000, Client: "Lee", Teacher: "Jones", ChatKind: model.ChatKindENG},
	}
	outgoing := []model.PaymentOut{
		{Date: day1, CreatedAt: created, Amount: 3000, Category: "Salary", Recipient: "Sidorov"},
		{Date: day2, CreatedAt: created, Amount: 200, Category: "Office", Recipient: "Landlord"},
	}
	return incoming, outgoing
}

func TestPeriodReport_Sheets(t *testing.T) {
	incoming, outgoing := testRecords()

	data, err := PeriodReport(testPeriod(), incoming, outgoing)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Summary", "Daily", "Incoming", "Outgoing", "By Teacher", "By Category"}, f.GetSheetList())
}

func TestPeriodReport_SummaryValues(t *testing.T) {
	incoming, outgoing := testRecords()

	data, err := PeriodReport(testPeriod(), incoming, outgoing)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Financial Report: Current Month (February 2026)", title)

	period, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Period: 01.02.2026 - 28.02.2026", period)

	// Incoming total sits next to its label on the first metric row.
	total, err := f.GetCellValue("Summary", "B6", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "8500", total)
}

func TestPeriodReport_DetailRows(t *testing.T) {
	incoming, outgoing := testRecords()

	data, err := PeriodReport(testPeriod(), incoming, outgoing)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	client, err := f.GetCellValue("Incoming", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Ivanov", client)

	chat, err := f.GetCellValue("Incoming", "F3")
	require.NoError(t, err)
	assert.Equal(t, "eng", chat)

	category, err := f.GetCellValue("Outgoing", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Salary", category)

	// Totals row follows the last detail row.
	label, err := f.GetCellValue("Incoming", "B5")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL:", label)
}

func TestPeriodReport_Breakdown(t *testing.T) {
	incoming, outgoing := testRecords()

	data, err := PeriodReport(testPeriod(), incoming, outgoing)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	// Teachers sort by total, descending.
	first, err := f.GetCellValue("By Teacher", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Petrov", first)

	second, err := f.GetCellValue("By Teacher", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Jones", second)

	share, err := f.GetCellValue("By Teacher", "E2")
	require.NoError(t, err)
	assert.Equal(t, "88.2%", share)

	topCategory, err := f.GetCellValue("By Category", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Salary", topCategory)
}

func TestPeriodReport_Empty(t *testing.T) {
	data, err := PeriodReport(testPeriod(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	noData, err := f.GetCellValue("By Teacher", "A2")
	require.NoError(t, err)
	assert.Equal(t, "No data", noData)

	noData, err = f.GetCellValue("By Category", "A2")
	require.NoError(t, err)
	assert.Equal(t, "No data", noData)
}
