// Package aggregator groups payment records by calendar quarter and
// computes the per-quarter summary lines.
package aggregator

import (
	"tribute-xlsx/internal/models"

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

// GroupByQuarter partitions records by the quarter of their date,
// preserving input order within each quarter. Quarters without records
// simply have no map entry; callers iterate models.Quarters and skip
// missing ones, so an empty quarter never produces a report.
func GroupByQuarter(records []models.PaymentRecord) (map[models.Quarter][]models.PaymentRecord, error) {
	grouped := make(map[models.Quarter][]models.PaymentRecord)
	for _, record := range records {
		quarter, err := models.QuarterOfMonth(record.Date.Month())
		if err != nil {
			return nil, err
		}
		grouped[quarter] = append(grouped[quarter], record)
	}
	return grouped, nil
}

// Aggregator computes quarter summaries. The subscription tax rate is
// per-instance configuration rather than a package constant.
type Aggregator struct {
	taxRate decimal.Decimal
}

// New creates an Aggregator with the given subscription tax rate
// (0.06 for the standard 6% bookkeeping line).
func New(taxRate decimal.Decimal) *Aggregator {
	return &Aggregator{taxRate: taxRate}
}

// Summarize computes the four summary lines for one quarter's records:
// donations, new plus renewed subscriptions, the derived subscription
// tax, and the total over all categories. Sums are exact decimals;
// rounding happens only at presentation.
func (a *Aggregator) Summarize(records []models.PaymentRecord) models.QuarterSummary {
	var (
		donationCount int
		donationSum   = decimal.Zero
		subCount      int
		subSum        = decimal.Zero
		totalSum      = decimal.Zero
	)

	for _, record := range records {
		switch {
		case record.Category == models.CategoryDonation:
			donationCount++
			donationSum = donationSum.Add(record.Amount)
		case record.Category.IsSubscription():
			subCount++
			subSum = subSum.Add(record.Amount)
		}
		totalSum = totalSum.Add(record.Amount)
	}

	log.WithFields(logrus.Fields{
		"records":       len(records),
		"donations":     donationCount,
		"subscriptions": subCount,
	}).Debug("Summarized quarter")

	return models.QuarterSummary{
		Lines: []models.SummaryLine{
			{Label: models.LineDonations, Count: donationCount, Sum: donationSum},
			{Label: models.LineSubscriptions, Count: subCount, Sum: subSum},
			// Derived line: no observable payments behind it, count stays 0.
			{Label: models.LineTax, Count: 0, Sum: subSum.Mul(a.taxRate)},
			{Label: models.LineTotal, Count: len(records), Sum: totalSum},
		},
	}
}
