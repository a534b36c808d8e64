package extractor

import (
	"fmt"

	"tribute-xlsx/internal/models"
)

// UnknownSender is the display name used when a message carries no
// usable user reference.
const UnknownSender = "Неизвестно"

// Sender derives a display name for the paying user from the first
// mention entity in the message. The scan stops at the first mention
// or mention_name entity, whichever comes first:
//   - mention: the visible handle text, e.g. "@alice"
//   - mention_name: "<name> (id<user id>)"
//
// Missing pieces fall back to UnknownSender for the name and an empty
// id for mention_name entities without a user id.
func Sender(entities []models.TextEntity) string {
	for _, entity := range entities {
		switch entity.Type {
		case models.EntityMention:
			if entity.Text == "" {
				return UnknownSender
			}
			return entity.Text
		case models.EntityMentionName:
			name := entity.Text
			if name == "" {
				name = UnknownSender
			}
			id := ""
			if entity.UserID != nil {
				id = fmt.Sprintf("%d", *entity.UserID)
			}
			return fmt.Sprintf("%s (id%s)", name, id)
		}
	}
	return UnknownSender
}
