// Package transcriptparser decodes exported Telegram chat transcripts
// (result.json files) into the message list consumed by the extraction
// pipeline.
package transcriptparser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"tribute-xlsx/internal/models"
	"tribute-xlsx/internal/parsererror"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// rawTranscript mirrors models.Transcript but keeps the messages list
// as a pointer so an absent "messages" key is distinguishable from an
// empty one.
type rawTranscript struct {
	Messages *[]models.RawMessage `json:"messages"`
}

// ParseFile reads and decodes a transcript file. This is the main
// entry point for loading transcripts from disk.
func ParseFile(filePath string) (models.Transcript, error) {
	log.WithField("file", filePath).Info("Parsing transcript file")

	file, err := os.Open(filePath)
	if err != nil {
		return models.Transcript{}, fmt.Errorf("error opening transcript: %w", err)
	}
	defer file.Close()

	transcript, err := Parse(file)
	if err != nil {
		if fe, ok := err.(*parsererror.InvalidFormatError); ok {
			fe.FilePath = filePath
		}
		log.WithError(err).Error("Failed to parse transcript")
		return models.Transcript{}, err
	}

	log.WithField("count", len(transcript.Messages)).Info("Successfully parsed transcript")
	return transcript, nil
}

// Parse decodes a transcript from a reader. A transcript without a
// top-level "messages" list is rejected outright.
func Parse(r io.Reader) (models.Transcript, error) {
	var raw rawTranscript
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return models.Transcript{}, &parsererror.InvalidFormatError{
			Msg: "not a JSON chat export",
			Err: err,
		}
	}

	if raw.Messages == nil {
		return models.Transcript{}, &parsererror.InvalidFormatError{
			Msg: `missing top-level "messages" list`,
		}
	}

	return models.Transcript{Messages: *raw.Messages}, nil
}

// ValidateFormat checks whether the file looks like a chat export
// without keeping the decoded messages around.
func ValidateFormat(filePath string) (bool, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return false, fmt.Errorf("error opening file for validation: %w", err)
	}
	defer file.Close()

	if _, err := Parse(file); err != nil {
		if _, ok := err.(*parsererror.InvalidFormatError); ok {
			log.WithError(err).Info("File is not a valid chat export")
			return false, nil
		}
		return false, err
	}

	return true, nil
}
