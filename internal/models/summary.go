package models

import "github.com/shopspring/decimal"

// Summary line labels, in the fixed order they appear in reports.
const (
	LineDonations     = "Донат"
	LineSubscriptions = "Новые и обновлённые подписки"
	LineTax           = "Налог 6% с подписок"
	LineTotal         = "Всего платежей"
)

// SummaryLine is one row of a quarter summary: how many payments and
// how much money a line covers. The tax line is derived, not counted,
// so its Count stays zero.
type SummaryLine struct {
	Label string
	Count int
	Sum   decimal.Decimal
}

// QuarterSummary holds the four summary lines of one quarter in
// presentation order.
type QuarterSummary struct {
	Lines []SummaryLine
}

// Line returns the summary line with the given label, or a zero line
// if the label is unknown.
func (s QuarterSummary) Line(label string) SummaryLine {
	for _, l := range s.Lines {
		if l.Label == label {
			return l
		}
	}
	return SummaryLine{Label: label, Sum: decimal.Zero}
}
