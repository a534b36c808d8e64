// Package xlsxwriter renders one styled XLSX workbook per quarter:
// a summary table on top, a blank spacer row, then the raw payment
// records. All style objects live on the writer instance, one per
// workbook, so report generation stays safe to parallelize across
// quarters or transcript files.
package xlsxwriter

import (
	"fmt"
	"path/filepath"

	"tribute-xlsx/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

const (
	currencyFormat = "# ##0.00 ₽"
	dateFormat     = "DD.MM.YYYY HH:MM"

	// numFmtText is the builtin "@" text format.
	numFmtText = 49
)

var (
	summaryHeader = []string{"Категория", "Количество", "Сумма"}
	dataHeader    = []string{"Дата и время", "Пользователь", "Сумма", "Категория"}
	columnWidths  = map[string]float64{"A": 18, "B": 22, "C": 14, "D": 22}
)

type styleSet struct {
	left     int
	currency int
	date     int
	text     int
}

type quarterWriter struct {
	f      *excelize.File
	sheet  string
	styles styleSet
}

// WriteQuarterFile writes the workbook for one quarter into dir and
// returns the file path. The file and sheet names carry the quarter's
// month-range suffix, e.g. "Квартал_Q1_янв_фев_мар.xlsx".
func WriteQuarterFile(dir string, quarter models.Quarter, summary models.QuarterSummary, records []models.PaymentRecord) (string, error) {
	suffix := quarter.MonthRangeSuffix()
	sheet := fmt.Sprintf("Квартал %s%s", quarter, suffix)
	path := filepath.Join(dir, fmt.Sprintf("Квартал_%s%s.xlsx", quarter, suffix))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("error naming sheet: %w", err)
	}

	w := &quarterWriter{f: f, sheet: sheet}
	if err := w.buildStyles(); err != nil {
		return "", fmt.Errorf("error creating styles: %w", err)
	}
	if err := w.writeSummary(summary); err != nil {
		return "", err
	}
	// Data table starts after the summary block and one blank row.
	dataRow := len(summary.Lines) + 3
	if err := w.writeRecords(dataRow, records); err != nil {
		return "", err
	}
	for col, width := range columnWidths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return "", fmt.Errorf("error setting column width: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("error saving workbook: %w", err)
	}

	log.WithFields(logrus.Fields{
		"quarter": quarter,
		"records": len(records),
		"file":    path,
	}).Info("Wrote quarter report")
	return path, nil
}

func (w *quarterWriter) buildStyles() error {
	var err error
	currency := currencyFormat
	date := dateFormat

	if w.styles.left, err = w.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left"},
	}); err != nil {
		return err
	}
	if w.styles.currency, err = w.f.NewStyle(&excelize.Style{
		CustomNumFmt: &currency,
		Alignment:    &excelize.Alignment{Horizontal: "left"},
	}); err != nil {
		return err
	}
	if w.styles.date, err = w.f.NewStyle(&excelize.Style{
		CustomNumFmt: &date,
		Alignment:    &excelize.Alignment{Horizontal: "left"},
	}); err != nil {
		return err
	}
	if w.styles.text, err = w.f.NewStyle(&excelize.Style{
		NumFmt:    numFmtText,
		Alignment: &excelize.Alignment{Horizontal: "left"},
	}); err != nil {
		return err
	}
	return nil
}

func (w *quarterWriter) writeSummary(summary models.QuarterSummary) error {
	if err := w.setRow(1, toAnySlice(summaryHeader)...); err != nil {
		return err
	}
	for i, line := range summary.Lines {
		row := i + 2
		if err := w.setRow(row, line.Label, line.Count, amountValue(line.Sum)); err != nil {
			return err
		}
		if err := w.styleCell("C", row, w.styles.currency); err != nil {
			return err
		}
	}
	return nil
}

func (w *quarterWriter) writeRecords(headerRow int, records []models.PaymentRecord) error {
	if err := w.setRow(headerRow, toAnySlice(dataHeader)...); err != nil {
		return err
	}
	if err := w.styleRange("A", "D", headerRow, headerRow, w.styles.left); err != nil {
		return err
	}

	for i, record := range records {
		row := headerRow + 1 + i
		if err := w.setRow(row, record.Date, record.Sender, amountValue(record.Amount), string(record.Category)); err != nil {
			return err
		}
		if err := w.styleCell("A", row, w.styles.date); err != nil {
			return err
		}
		if err := w.styleCell("B", row, w.styles.text); err != nil {
			return err
		}
		if err := w.styleCell("C", row, w.styles.currency); err != nil {
			return err
		}
		if err := w.styleCell("D", row, w.styles.text); err != nil {
			return err
		}
	}
	return nil
}

func (w *quarterWriter) setRow(row int, values ...any) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
			return fmt.Errorf("error writing cell %s: %w", cell, err)
		}
	}
	return nil
}

func (w *quarterWriter) styleCell(col string, row, style int) error {
	cell := fmt.Sprintf("%s%d", col, row)
	return w.f.SetCellStyle(w.sheet, cell, cell, style)
}

func (w *quarterWriter) styleRange(fromCol, toCol string, fromRow, toRow, style int) error {
	return w.f.SetCellStyle(w.sheet,
		fmt.Sprintf("%s%d", fromCol, fromRow),
		fmt.Sprintf("%s%d", toCol, toRow),
		style)
}

// amountValue converts a decimal sum for the spreadsheet cell. Values
// go in as plain numbers; the currency number format does the display
// rounding.
func amountValue(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
