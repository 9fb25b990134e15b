// Package report serializes the aggregated result sets into a multi-sheet
// XLSX workbook.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/mgrube/employerstocks/internal/models"
)

// WriteError marks the one fatal failure mode of a run: the workbook could
// not be written. Everything upstream degrades per-entity instead.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing workbook to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Sheet is one tab of the workbook.
type Sheet struct {
	Name string
	Rows []models.Snapshot
}

var columns = []string{"Name", "Ticker", "Price", "Sector", "Industry", "Market Cap", "P/E Ratio"}

type Writer struct{}

func NewWriter() *Writer { return &Writer{} }

// Write builds the workbook in memory and saves it in one step, so a
// failing destination leaves no partial file behind. Absent fields stay as
// genuinely empty cells.
func (w *Writer) Write(path string, sheets ...Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return &WriteError{Path: path, Err: err}
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return &WriteError{Path: path, Err: err}
		}
		if err := writeSheet(f, sheet); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	for col, header := range columns {
		if err := setCell(f, sheet.Name, col+1, 1, header); err != nil {
			return err
		}
	}
	for i, snap := range sheet.Rows {
		row := i + 2
		cells := []struct {
			col   int
			value any
			set   bool
		}{
			{1, displayName(snap), displayName(snap) != ""},
			{2, snap.Ticker, snap.Ticker != ""},
			{3, decimalValue(snap.Price), snap.Price != nil},
			{4, snap.Sector, snap.Sector != ""},
			{5, snap.Industry, snap.Industry != ""},
			{6, decimalValue(snap.MarketCap), snap.MarketCap != nil},
			{7, decimalValue(snap.PERatio), snap.PERatio != nil},
		}
		for _, c := range cells {
			if !c.set {
				continue
			}
			if err := setCell(f, sheet.Name, c.col, row, c.value); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

// The upstream display name reads better in the sheet; the scraped name is
// the fallback for companies that never resolved.
func displayName(snap models.Snapshot) string {
	if snap.ShortName != "" {
		return snap.ShortName
	}
	return snap.CompanyName
}

func decimalValue(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.InexactFloat64()
}
