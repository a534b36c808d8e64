package extractor

import (
	"testing"

	"tribute-xlsx/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bold(text string) models.TextEntity {
	return models.TextEntity{Type: models.EntityBold, Text: text}
}

func plain(text string) models.TextEntity {
	return models.TextEntity{Type: models.EntityPlain, Text: text}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		entities []models.TextEntity
		expected string
		matched  bool
	}{
		{"plain amount", []models.TextEntity{bold("₽1234.56")}, "1234.56", true},
		{"amount inside text", []models.TextEntity{bold("Оплата ₽500.00 получена")}, "500.00", true},
		{"maximum digits", []models.TextEntity{bold("₽9999999.99")}, "9999999.99", true},
		// Whole-number amounts are not recognized: the pattern
		// requires exactly two post-decimal digits.
		{"no fractional part", []models.TextEntity{bold("₽12")}, "", false},
		{"one decimal digit", []models.TextEntity{bold("₽12.5")}, "", false},
		// Only ₽-prefixed amounts match; € stays unrecognized even
		// though the normalizer would strip it.
		{"euro amount", []models.TextEntity{bold("€50,00")}, "", false},
		{"no currency prefix", []models.TextEntity{bold("1234.56")}, "", false},
		{"not bold", []models.TextEntity{plain("₽1234.56")}, "", false},
		{"no entities", nil, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, ok := Amount(tc.entities)
			require.Equal(t, tc.matched, ok)
			if tc.matched {
				assert.Equal(t, tc.expected, amount.StringFixed(2))
			}
		})
	}
}

func TestAmountFirstBoldMatchWins(t *testing.T) {
	entities := []models.TextEntity{
		plain("₽999.99"),
		bold("без суммы"),
		bold("₽100.00"),
		bold("₽200.00"),
	}

	amount, ok := Amount(entities)
	require.True(t, ok)
	assert.Equal(t, "100.00", amount.StringFixed(2))
}
