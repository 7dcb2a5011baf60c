// Package export projects screen result sets into styled xlsx workbooks.
// Builders are pure: rows in, workbook out, no retained state. An empty
// dataset is an error and produces no file.
package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

var ErrEmptyDataset = errors.New("no data to export")

// Filename returns the default attachment name, e.g. "rapport_20260830.xlsx".
func Filename(entity string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", entity, now.Format("20060102"))
}

const moneyFmt = "#,##0.00"

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#CCCCCC"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

func moneyStyle(f *excelize.File) (int, error) {
	fmtStr := moneyFmt
	return f.NewStyle(&excelize.Style{CustomNumFmt: &fmtStr})
}

func totalRowStyle(f *excelize.File) (int, error) {
	fmtStr := moneyFmt
	return f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &fmtStr,
	})
}

// newSheet creates a single-sheet workbook with a styled header row and
// fixed column widths.
func newSheet(name string, headers []string, widths []float64) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(name)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(idx)

	style, err := headerStyle(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(name, cell, h); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellStyle(name, cell, cell, style); err != nil {
			f.Close()
			return nil, err
		}
	}
	for col, w := range widths {
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetColWidth(name, colName, colName, w); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, rowIdx int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func styleCell(f *excelize.File, sheet string, col, rowIdx, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, rowIdx)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}
