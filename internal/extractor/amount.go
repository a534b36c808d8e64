package extractor

import (
	"regexp"
	"strings"

	"tribute-xlsx/internal/models"

	"github.com/shopspring/decimal"
)

// Tribute always renders amounts in bold as "₽<digits>.<two digits>".
// The pattern requires exactly two post-decimal digits and a ₽ prefix:
// whole-number and €-denominated amounts are deliberately not matched
// and their messages dropped. Kept as-is pending product clarification.
var amountPattern = regexp.MustCompile(`₽\d{1,7}\.\d{2}`)

var amountNormalizer = strings.NewReplacer("₽", "", "€", "", ",", ".")

// Amount scans the entities in order and parses the first bold
// fragment matching the amount pattern. Later bold fragments are
// ignored even if they also match. The second return value is false
// when no bold fragment carries an amount.
func Amount(entities []models.TextEntity) (decimal.Decimal, bool) {
	for _, entity := range entities {
		if entity.Type != models.EntityBold {
			continue
		}

		match := amountPattern.FindString(entity.Text)
		if match == "" {
			continue
		}

		amount, err := decimal.NewFromString(amountNormalizer.Replace(match))
		if err != nil {
			// The pattern guarantees a parseable number; a failure here
			// would mean the pattern and the normalizer disagree.
			log.WithField("match", match).Warn("Matched amount failed to parse")
			return decimal.Zero, false
		}
		return amount, true
	}
	return decimal.Zero, false
}
