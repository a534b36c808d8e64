package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentCategory is the closed set of payment event kinds. The values
// are the Russian labels that appear verbatim in the generated reports.
type PaymentCategory string

const (
	CategoryNewSubscription     PaymentCategory = "Новая подписка"
	CategorySubscriptionRenewal PaymentCategory = "Обновление подписки"
	CategoryDonation            PaymentCategory = "Донат"
)

// IsSubscription reports whether the category counts toward the
// subscription summary line (new or renewed).
func (c PaymentCategory) IsSubscription() bool {
	return c == CategoryNewSubscription || c == CategorySubscriptionRenewal
}

// PaymentRecord is one extracted payment event. Created once per
// qualifying message and never mutated afterwards.
type PaymentRecord struct {
	Date     time.Time
	Sender   string
	Amount   decimal.Decimal
	Category PaymentCategory
}
