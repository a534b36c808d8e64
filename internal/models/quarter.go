package models

import (
	"errors"
	"fmt"
	"time"
)

// Quarter is one of the four three-month fiscal buckets used for
// report partitioning.
type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

// Quarters lists all quarters in calendar order. Report generation
// iterates this slice so output order is deterministic.
var Quarters = []Quarter{Q1, Q2, Q3, Q4}

// ErrInvalidMonth signals a month outside 1..12. Unreachable for any
// month coming from a parsed timestamp; callers passing raw integers
// must check it.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// QuarterOfMonth maps a calendar month to its quarter:
// Q1={1,2,3}, Q2={4,5,6}, Q3={7,8,9}, Q4={10,11,12}.
func QuarterOfMonth(month time.Month) (Quarter, error) {
	switch {
	case month >= time.January && month <= time.March:
		return Q1, nil
	case month >= time.April && month <= time.June:
		return Q2, nil
	case month >= time.July && month <= time.September:
		return Q3, nil
	case month >= time.October && month <= time.December:
		return Q4, nil
	default:
		return "", fmt.Errorf("invalid month %d: %w", month, ErrInvalidMonth)
	}
}

// monthRangeSuffixes are appended to sheet and file names so a reader
// can tell the covered months without decoding quarter numbers.
var monthRangeSuffixes = map[Quarter]string{
	Q1: "_янв_фев_мар",
	Q2: "_апр_май_июн",
	Q3: "_июл_авг_сен",
	Q4: "_окт_ноя_дек",
}

// MonthRangeSuffix returns the month-range suffix for the quarter,
// e.g. "_янв_фев_мар" for Q1.
func (q Quarter) MonthRangeSuffix() string {
	return monthRangeSuffixes[q]
}
