// Package common provides the shared CSV output layer.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"tribute-xlsx/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Delimiter is the CSV output delimiter, configurable via the
// csv.delimiter config key.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// recordRow maps a PaymentRecord to CSV columns. Fields are
// pre-formatted strings so the CSV carries the same presentation as
// the spreadsheet reports.
type recordRow struct {
	Date     string `csv:"Дата и время"`
	Sender   string `csv:"Пользователь"`
	Amount   string `csv:"Сумма"`
	Category string `csv:"Категория"`
}

const csvDateLayout = "02.01.2006 15:04"

// WriteRecordsToCSV writes payment records to a CSV file, in record
// order, with amounts fixed to two decimal places.
func WriteRecordsToCSV(records []models.PaymentRecord, csvFile string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(records),
	}).Info("Writing payment records to CSV file")

	if dir := filepath.Dir(csvFile); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]recordRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, recordRow{
			Date:     record.Date.Format(csvDateLayout),
			Sender:   record.Sender,
			Amount:   record.Amount.StringFixed(2),
			Category: string(record.Category),
		})
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithField("file", csvFile).Info("Successfully wrote records to CSV file")
	return nil
}
