package excel

import (
	"fmt"
	"sort"
	"time"

	"github.com/ledgerflow/ledgerbot/internal/model"
	"github.com/ledgerflow/ledgerbot/internal/report"
	"github.com/xuri/excelize/v2"
)

const dateLayout = "02.01.2006"

// Sheet names, in workbook order.
const (
	sheetSummary    = "Summary"
	sheetDaily      = "Daily"
	sheetIncoming   = "Incoming"
	sheetOutgoing   = "Outgoing"
	sheetByTeacher  = "By Teacher"
	sheetByCategory = "By Category"
)

// PeriodReport renders the records of one reporting period into an xlsx
// workbook and returns its bytes.
func PeriodReport(period report.Period, incoming []model.PaymentIn, outgoing []model.PaymentOut) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	for _, name := range []string{sheetDaily, sheetIncoming, sheetOutgoing, sheetByTeacher, sheetByCategory} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	if err := writeSummary(f, st, period, incoming, outgoing); err != nil {
		return nil, err
	}
	if err := writeDaily(f, st, incoming, outgoing); err != nil {
		return nil, err
	}
	if err := writeIncoming(f, st, incoming); err != nil {
		return nil, err
	}
	if err := writeOutgoing(f, st, outgoing); err != nil {
		return nil, err
	}
	if err := writeTeacherBreakdown(f, st, incoming); err != nil {
		return nil, err
	}
	if err := writeCategoryBreakdown(f, st, outgoing); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter wraps cell addressing for one sheet.
type sheetWriter struct {
	f     *excelize.File
	sheet string
}

// set writes a value and optionally applies a style (0 means default).
func (w *sheetWriter) set(col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("bad cell coordinates (%d, %d): %w", col, row, err)
	}
	if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set %s!%s: %w", w.sheet, cell, err)
	}
	if style != 0 {
		if err := w.f.SetCellStyle(w.sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to style %s!%s: %w", w.sheet, cell, err)
		}
	}
	return nil
}

func (w *sheetWriter) merge(fromCol, fromRow, toCol, toRow int) error {
	from, err := excelize.CoordinatesToCellName(fromCol, fromRow)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(toCol, toRow)
	if err != nil {
		return err
	}
	return w.f.MergeCell(w.sheet, from, to)
}

// headers writes a styled header row and sets column widths.
func (w *sheetWriter) headers(st *styles, titles []string, widths []float64) error {
	for i, title := range titles {
		if err := w.set(i+1, 1, title, st.header); err != nil {
			return err
		}
	}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := w.f.SetColWidth(w.sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width on %s: %w", w.sheet, err)
		}
	}
	return nil
}

func sumIn(payments []model.PaymentIn) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

func sumOut(payments []model.PaymentOut) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

func writeSummary(f *excelize.File, st *styles, period report.Period, incoming []model.PaymentIn, outgoing []model.PaymentOut) error {
	w := &sheetWriter{f: f, sheet: sheetSummary}

	totalIn := sumIn(incoming)
	totalOut := sumOut(outgoing)
	balance := totalIn - totalOut

	if err := w.set(1, 1, "Financial Report: "+period.Name, st.title); err != nil {
		return err
	}
	if err := w.merge(1, 1, 4, 1); err != nil {
		return err
	}
	if err := w.set(1, 2, fmt.Sprintf("Period: %s - %s", period.Start.Format(dateLayout), period.End.Format(dateLayout)), 0); err != nil {
		return err
	}
	if err := w.set(1, 3, "Generated: "+time.Now().Format(dateLayout), 0); err != nil {
		return err
	}

	row := 5
	writeMetric := func(label string, value any, style int) error {
		if err := w.set(1, row, label, 0); err != nil {
			return err
		}
		if err := w.set(2, row, value, style); err != nil {
			return err
		}
		row++
		return nil
	}

	if err := w.set(1, row, "INCOMING (DEBIT)", st.bold); err != nil {
		return err
	}
	row++
	if err := writeMetric("Total:", totalIn, st.money); err != nil {
		return err
	}
	if err := writeMetric("Transactions:", len(incoming), 0); err != nil {
		return err
	}
	if len(incoming) > 0 {
		minIn, maxIn := incoming[0].Amount, incoming[0].Amount
		var ruCount, engCount int
		var ruTotal, engTotal float64
		for _, p := range incoming {
			if p.Amount < minIn {
				minIn = p.Amount
			}
			if p.Amount > maxIn {
				maxIn = p.Amount
			}
			if p.ChatKind == model.ChatKindRU {
				ruCount++
				ruTotal += p.Amount
			} else {
				engCount++
				engTotal += p.Amount
			}
		}
		if err := writeMetric("Average:", totalIn/float64(len(incoming)), st.money); err != nil {
			return err
		}
		if err := writeMetric("Largest:", maxIn, st.money); err != nil {
			return err
		}
		if err := writeMetric("Smallest:", minIn, st.money); err != nil {
			return err
		}
		if err := writeMetric("From RU chat:", fmt.Sprintf("%d for %.2f", ruCount, ruTotal), 0); err != nil {
			return err
		}
		if err := writeMetric("From ENG chat:", fmt.Sprintf("%d for %.2f", engCount, engTotal), 0); err != nil {
			return err
		}
	}

	row++
	if err := w.set(1, row, "OUTGOING (CREDIT)", st.bold); err != nil {
		return err
	}
	row++
	if err := writeMetric("Total:", totalOut, st.money); err != nil {
		return err
	}
	if err := writeMetric("Transactions:", len(outgoing), 0); err != nil {
		return err
	}
	if len(outgoing) > 0 {
		minOut, maxOut := outgoing[0].Amount, outgoing[0].Amount
		for _, p := range outgoing {
			if p.Amount < minOut {
				minOut = p.Amount
			}
			if p.Amount > maxOut {
				maxOut = p.Amount
			}
		}
		if err := writeMetric("Average:", totalOut/float64(len(outgoing)), st.money); err != nil {
			return err
		}
		if err := writeMetric("Largest:", maxOut, st.money); err != nil {
			return err
		}
		if err := writeMetric("Smallest:", minOut, st.money); err != nil {
			return err
		}
	}

	row++
	if err := w.set(1, row, "BALANCE", st.bold); err != nil {
		return err
	}
	balanceStyle := st.good
	if balance < 0 {
		balanceStyle = st.warn
	}
	if err := w.set(2, row, balance, balanceStyle); err != nil {
		return err
	}

	if err := f.SetColWidth(sheetSummary, "A", "A", 25); err != nil {
		return err
	}
	return f.SetColWidth(sheetSummary, "B", "B", 30)
}

func writeDaily(f *excelize.File, st *styles, incoming []model.PaymentIn, outgoing []model.PaymentOut) error {
	w := &sheetWriter{f: f, sheet: sheetDaily}

	titles := []string{"Date", "Incoming #", "Incoming Total", "Outgoing #", "Outgoing Total", "Net"}
	widths := []float64{12, 12, 16, 12, 16, 16}
	if err := w.headers(st, titles, widths); err != nil {
		return err
	}

	inByDay := make(map[time.Time][]model.PaymentIn)
	outByDay := make(map[time.Time][]model.PaymentOut)
	daySet := make(map[time.Time]struct{})
	for _, p := range incoming {
		day := p.Date
		inByDay[day] = append(inByDay[day], p)
		daySet[day] = struct{}{}
	}
	for _, p := range outgoing {
		day := p.Date
		outByDay[day] = append(outByDay[day], p)
		daySet[day] = struct{}{}
	}

	days := make([]time.Time, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	row := 2
	for _, day := range days {
		dayIn := inByDay[day]
		dayOut := outByDay[day]
		net := sumIn(dayIn) - sumOut(dayOut)

		netStyle := st.good
		if net < 0 {
			netStyle = st.warn
		}

		cells := []struct {
			value any
			style int
		}{
			{day.Format(dateLayout), st.cell},
			{len(dayIn), st.cell},
			{sumIn(dayIn), st.money},
			{len(dayOut), st.cell},
			{sumOut(dayOut), st.money},
			{net, netStyle},
		}
		for col, c := range cells {
			if err := w.set(col+1, row, c.value, c.style); err != nil {
				return err
			}
		}
		row++
	}

	// Totals row.
	row++
	totals := []struct {
		value any
		style int
	}{
		{"TOTAL", st.bold},
		{len(incoming), st.bold},
		{sumIn(incoming), st.boldSum},
		{len(outgoing), st.bold},
		{sumOut(outgoing), st.boldSum},
		{sumIn(incoming) - sumOut(outgoing), st.boldSum},
	}
	for col, c := range totals {
		if err := w.set(col+1, row, c.value, c.style); err != nil {
			return err
		}
	}
	return nil
}

func writeIncoming(f *excelize.File, st *styles, payments []model.PaymentIn) error {
	w := &sheetWriter{f: f, sheet: sheetIncoming}

	titles := []string{"#", "Date", "Amount", "Client", "Teacher", "Chat", "Recorded"}
	widths := []float64{5, 12, 15, 20, 20, 8, 16}
	if err := w.headers(st, titles, widths); err != nil {
		return err
	}

	for i, p := range payments {
		row := i + 2
		cells := []struct {
			value any
			style int
		}{
			{i + 1, st.cell},
			{p.Date.Format(dateLayout), st.cell},
			{p.Amount, st.money},
			{p.Client, st.cell},
			{p.Teacher, st.cell},
			{string(p.ChatKind), st.cell},
			{p.CreatedAt.Format("02.01.2006 15:04"), st.cell},
		}
		for col, c := range cells {
			if err := w.set(col+1, row, c.value, c.style); err != nil {
				return err
			}
		}
	}

	if len(payments) > 0 {
		row := len(payments) + 2
		if err := w.set(2, row, "TOTAL:", st.bold); err != nil {
			return err
		}
		if err := w.set(3, row, sumIn(payments), st.boldSum); err != nil {
			return err
		}
	}
	return nil
}

func writeOutgoing(f *excelize.File, st *styles, payments []model.PaymentOut) error {
	w := &sheetWriter{f: f, sheet: sheetOutgoing}

	titles := []string{"#", "Date", "Amount", "Category", "Recipient", "Recorded"}
	widths := []float64{5, 12, 15, 20, 20, 16}
	if err := w.headers(st, titles, widths); err != nil {
		return err
	}

	for i, p := range payments {
		row := i + 2
		cells := []struct {
			value any
			style int
		}{
			{i + 1, st.cell},
			{p.Date.Format(dateLayout), st.cell},
			{p.Amount, st.money},
			{p.Category, st.cell},
			{p.Recipient, st.cell},
			{p.CreatedAt.Format("02.01.2006 15:04"), st.cell},
		}
		for col, c := range cells {
			if err := w.set(col+1, row, c.value, c.style); err != nil {
				return err
			}
		}
	}

	if len(payments) > 0 {
		row := len(payments) + 2
		if err := w.set(2, row, "TOTAL:", st.bold); err != nil {
			return err
		}
		if err := w.set(3, row, sumOut(payments), st.boldSum); err != nil {
			return err
		}
	}
	return nil
}

// breakdownRow is one aggregated row of a by-teacher or by-category sheet.
type breakdownRow struct {
	name  string
	total float64
	count int
}

func writeBreakdown(f *excelize.File, st *styles, sheet, nameHeader string, rows []breakdownRow, grandTotal float64, grandCount int) error {
	w := &sheetWriter{f: f, sheet: sheet}

	titles := []string{nameHeader, "Count", "Total", "Average", "Share"}
	widths := []float64{25, 12, 15, 15, 12}
	if err := w.headers(st, titles, widths); err != nil {
		return err
	}

	if len(rows) == 0 {
		return w.set(1, 2, "No data", 0)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].total > rows[j].total })

	for i, r := range rows {
		row := i + 2
		share := 0.0
		if grandTotal > 0 {
			share = r.total / grandTotal * 100
		}
		cells := []struct {
			value any
			style int
		}{
			{r.name, st.cell},
			{r.count, st.cell},
			{r.total, st.money},
			{r.total / float64(r.count), st.money},
			{fmt.Sprintf("%.1f%%", share), st.cell},
		}
		for col, c := range cells {
			if err := w.set(col+1, row, c.value, c.style); err != nil {
				return err
			}
		}
	}

	row := len(rows) + 3
	if err := w.set(1, row, "TOTAL", st.bold); err != nil {
		return err
	}
	if err := w.set(2, row, grandCount, st.bold); err != nil {
		return err
	}
	return w.set(3, row, grandTotal, st.boldSum)
}

func writeTeacherBreakdown(f *excelize.File, st *styles, incoming []model.PaymentIn) error {
	byTeacher := make(map[string]*breakdownRow)
	for _, p := range incoming {
		r, ok := byTeacher[p.Teacher]
		if !ok {
			r = &breakdownRow{name: p.Teacher}
			byTeacher[p.Teacher] = r
		}
		r.count++
		r.total += p.Amount
	}

	rows := make([]breakdownRow, 0, len(byTeacher))
	for _, r := range byTeacher {
		rows = append(rows, *r)
	}
	return writeBreakdown(f, st, sheetByTeacher, "Teacher", rows, sumIn(incoming), len(incoming))
}

func writeCategoryBreakdown(f *excelize.File, st *styles, outgoing []model.PaymentOut) error {
	byCategory := make(map[string]*breakdownRow)
	for _, p := range outgoing {
		r, ok := byCategory[p.Category]
		if !ok {
			r = &breakdownRow{name: p.Category}
			byCategory[p.Category] = r
		}
		r.count++
		r.total += p.Amount
	}

	rows := make([]breakdownRow, 0, len(byCategory))
	for _, r := range byCategory {
		rows = append(rows, *r)
	}
	return writeBreakdown(f, st, sheetByCategory, "Category", rows, sumOut(outgoing), len(outgoing))
}
