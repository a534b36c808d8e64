package transcriptparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tribute-xlsx/internal/models"
	"tribute-xlsx/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTranscript = `{
  "name": "Мой канал",
  "type": "private_channel",
  "messages": [
    {
      "from": "Tribute",
      "date": "2024-02-10T12:30:00",
      "text_entities": [
        {"type": "mention", "text": "@alice"},
        {"type": "plain", "text": " оформил подписку "},
        {"type": "bold", "text": "₽500.00"}
      ]
    },
    {
      "from": "Tribute",
      "date": "2024-07-03T09:15:00",
      "text_entities": [
        {"type": "mention_name", "text": "Bob", "user_id": 7},
        {"type": "plain", "text": " отправил донат "},
        {"type": "bold", "text": "₽100.00"}
      ]
    }
  ]
}`

func TestParse(t *testing.T) {
	transcript, err := Parse(strings.NewReader(sampleTranscript))
	require.NoError(t, err)
	require.Len(t, transcript.Messages, 2)

	first := transcript.Messages[0]
	assert.Equal(t, "Tribute", first.From)
	assert.Equal(t, "2024-02-10T12:30:00", first.Date)
	require.Len(t, first.Entities, 3)
	assert.Equal(t, models.EntityMention, first.Entities[0].Type)
	assert.Equal(t, "@alice", first.Entities[0].Text)
	assert.Nil(t, first.Entities[0].UserID)

	second := transcript.Messages[1]
	require.Len(t, second.Entities, 3)
	require.NotNil(t, second.Entities[0].UserID)
	assert.Equal(t, int64(7), *second.Entities[0].UserID)
}

func TestParseEmptyMessages(t *testing.T) {
	transcript, err := Parse(strings.NewReader(`{"messages": []}`))
	require.NoError(t, err)
	assert.Empty(t, transcript.Messages)
}

func TestParseInvalidFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing messages key", `{"name": "chat"}`},
		{"not json", "just some text"},
		{"json but wrong shape", `{"messages": 42}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			require.Error(t, err)

			var formatErr *parsererror.InvalidFormatError
			assert.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleTranscript), 0600))

	transcript, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, transcript.Messages, 2)
}

func TestParseFileReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "chat"}`), 0600))

	_, err := ParseFile(path)
	require.Error(t, err)

	var formatErr *parsererror.InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, path, formatErr.FilePath)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidateFormat(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(valid, []byte(sampleTranscript), 0600))
	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte("not a transcript"), 0600))

	ok, err := ValidateFormat(valid)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ValidateFormat(invalid)
	require.NoError(t, err)
	assert.False(t, ok)
}
