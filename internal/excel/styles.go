// Package excel renders period reports into xlsx workbooks.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// numFmtMoney is the built-in "#,##0.00" number format.
const numFmtMoney = 4

// styles holds the style IDs shared by every sheet of a workbook.
type styles struct {
	title   int
	header  int
	cell    int
	money   int
	bold    int
	boldSum int
	good    int
	warn    int
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	border := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		border = append(border, excelize.Border{Type: side, Color: "000000", Style: 1})
	}
	return border
}

func newStyles(f *excelize.File) (*styles, error) {
	s := &styles{}
	var err error

	s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return nil, fmt.Errorf("failed to create title style: %w", err)
	}

	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	s.cell, err = f.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return nil, fmt.Errorf("failed to create cell style: %w", err)
	}

	s.money, err = f.NewStyle(&excelize.Style{Border: thinBorder(), NumFmt: numFmtMoney})
	if err != nil {
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}

	s.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create bold style: %w", err)
	}

	s.boldSum, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: numFmtMoney})
	if err != nil {
		return nil, fmt.Errorf("failed to create bold sum style: %w", err)
	}

	s.good, err = f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"C6EFCE"}, Pattern: 1},
		NumFmt: numFmtMoney,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create positive style: %w", err)
	}

	s.warn, err = f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFEB9C"}, Pattern: 1},
		NumFmt: numFmtMoney,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create negative style: %w", err)
	}

	return s, nil
}
