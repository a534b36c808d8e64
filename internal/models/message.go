// Package models defines the core data types shared by the transcript
// parser, the extraction pipeline and the report writers.
package models

// EntityType identifies the kind of a text entity inside a message.
// Telegram exports represent message text as an ordered list of typed
// fragments rather than a single string.
type EntityType string

const (
	// EntityPlain is unformatted text. Any type not listed below is
	// treated the same way: it contributes to the classification blob
	// and nothing else.
	EntityPlain EntityType = "plain"
	// EntityBold is emphasized text. Bold fragments are the only
	// carrier of payment amounts.
	EntityBold EntityType = "bold"
	// EntityMention references a user by visible handle, e.g. "@alice".
	EntityMention EntityType = "mention"
	// EntityMentionName references a user by display name plus numeric
	// account id.
	EntityMentionName EntityType = "mention_name"
)

// TextEntity is a single typed fragment of a message.
// UserID is only present for mention_name entities; a pointer keeps a
// missing id distinguishable from id 0.
type TextEntity struct {
	Type   EntityType `json:"type"`
	Text   string     `json:"text"`
	UserID *int64     `json:"user_id,omitempty"`
}

// RawMessage is one message of the exported transcript. Messages are
// immutable input; the pipeline never writes back into them.
type RawMessage struct {
	From     string       `json:"from"`
	Date     string       `json:"date"`
	Entities []TextEntity `json:"text_entities"`
}

// Transcript is the top-level structure of a Telegram chat export.
type Transcript struct {
	Messages []RawMessage `json:"messages"`
}
