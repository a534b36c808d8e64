package extractor

import (
	"testing"

	"tribute-xlsx/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSender(t *testing.T) {
	userID := int64(42)

	tests := []struct {
		name     string
		entities []models.TextEntity
		expected string
	}{
		{
			"handle mention",
			[]models.TextEntity{{Type: models.EntityMention, Text: "@alice"}},
			"@alice",
		},
		{
			"handle mention without text",
			[]models.TextEntity{{Type: models.EntityMention}},
			"Неизвестно",
		},
		{
			"id mention",
			[]models.TextEntity{{Type: models.EntityMentionName, Text: "Ann", UserID: &userID}},
			"Ann (id42)",
		},
		{
			"id mention without name",
			[]models.TextEntity{{Type: models.EntityMentionName, UserID: &userID}},
			"Неизвестно (id42)",
		},
		{
			"id mention without id",
			[]models.TextEntity{{Type: models.EntityMentionName, Text: "Ann"}},
			"Ann (id)",
		},
		{
			"no mention entities",
			[]models.TextEntity{plain("просто текст"), bold("₽100.00")},
			"Неизвестно",
		},
		{
			"empty message",
			nil,
			"Неизвестно",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Sender(tc.entities))
		})
	}
}

func TestSenderFirstMentionWins(t *testing.T) {
	userID := int64(7)
	entities := []models.TextEntity{
		plain("платёж от"),
		{Type: models.EntityMentionName, Text: "Bob", UserID: &userID},
		{Type: models.EntityMention, Text: "@alice"},
	}

	// The scan stops at the first qualifying entity regardless of kind.
	assert.Equal(t, "Bob (id7)", Sender(entities))
}
