// Package report runs the full pipeline for one transcript: parse,
// extract, group by quarter, summarize. Each run is an independent
// batch with no state shared between invocations, so processing many
// transcripts in parallel needs no coordination.
package report

import (
	"fmt"
	"strings"

	"tribute-xlsx/internal/aggregator"
	"tribute-xlsx/internal/classifier"
	"tribute-xlsx/internal/config"
	"tribute-xlsx/internal/extractor"
	"tribute-xlsx/internal/models"
	"tribute-xlsx/internal/transcriptparser"
	"tribute-xlsx/internal/xlsxwriter"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// QuarterReport is one non-empty quarter's output: the summary plus
// the quarter's records in extraction order.
type QuarterReport struct {
	Quarter models.Quarter
	Summary models.QuarterSummary
	Records []models.PaymentRecord
}

// Generator wires the pipeline stages together from configuration.
type Generator struct {
	extractor  *extractor.Extractor
	aggregator *aggregator.Aggregator
}

// NewGenerator builds a Generator from configuration. A configured
// rules file replaces the built-in classification table.
func NewGenerator(cfg *config.Config) (*Generator, error) {
	var (
		cls *classifier.Classifier
		err error
	)
	if cfg.Report.RulesFile != "" {
		cls, err = classifier.NewFromFile(cfg.Report.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("error loading classification rules: %w", err)
		}
	} else {
		cls = classifier.New()
	}

	return &Generator{
		extractor:  extractor.New(cls, cfg.Report.Sender),
		aggregator: aggregator.New(decimal.NewFromFloat(cfg.Report.TaxRate)),
	}, nil
}

// Extract parses the transcript file and extracts its payment records.
func (g *Generator) Extract(inputFile string) ([]models.PaymentRecord, error) {
	transcript, err := transcriptparser.ParseFile(inputFile)
	if err != nil {
		return nil, err
	}
	return g.extractor.Records(transcript.Messages)
}

// Process runs the full pipeline on a transcript file and returns one
// QuarterReport per non-empty quarter, in calendar order. Quarters
// without records are not represented at all.
func (g *Generator) Process(inputFile string) ([]QuarterReport, error) {
	records, err := g.Extract(inputFile)
	if err != nil {
		return nil, err
	}

	grouped, err := aggregator.GroupByQuarter(records)
	if err != nil {
		return nil, err
	}

	var reports []QuarterReport
	for _, quarter := range models.Quarters {
		quarterRecords, ok := grouped[quarter]
		if !ok {
			continue
		}
		reports = append(reports, QuarterReport{
			Quarter: quarter,
			Summary: g.aggregator.Summarize(quarterRecords),
			Records: quarterRecords,
		})
	}

	log.WithFields(logrus.Fields{
		"records":  len(records),
		"quarters": len(reports),
	}).Info("Pipeline completed")
	return reports, nil
}

// WriteWorkbooks renders one XLSX file per quarter report into dir and
// returns the written paths.
func WriteWorkbooks(reports []QuarterReport, dir string) ([]string, error) {
	paths := make([]string, 0, len(reports))
	for _, r := range reports {
		path, err := xlsxwriter.WriteQuarterFile(dir, r.Quarter, r.Summary, r.Records)
		if err != nil {
			return nil, fmt.Errorf("error writing report for %s: %w", r.Quarter, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Title returns the display title of a quarter report, e.g.
// "Q1_янв_фев_мар".
func (r QuarterReport) Title() string {
	return string(r.Quarter) + r.Quarter.MonthRangeSuffix()
}

// FormatSummaryText renders the summary as the plain-text block shown
// alongside the generated files, one line per summary entry. The tax
// line carries no count, only the derived sum.
func FormatSummaryText(summary models.QuarterSummary) string {
	lines := make([]string, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		if line.Label == models.LineTax {
			lines = append(lines, fmt.Sprintf("%s - %s₽", line.Label, groupedAmount(line.Sum)))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s - %dшт, %s₽", line.Label, line.Count, groupedAmount(line.Sum)))
	}
	return strings.Join(lines, "\n")
}

// groupedAmount formats a sum with two decimals and comma thousands
// grouping, e.g. 1234.5 -> "1,234.50".
func groupedAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return sign + b.String() + "." + fracPart
}
