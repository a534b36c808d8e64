// Package extractor turns raw transcript messages into typed payment
// records. Messages that are not payment notifications (wrong sender,
// no recognized category, no parseable amount) are silently dropped:
// most transcript content is ordinary chat, so misses are the common
// case and not errors. An unparseable timestamp, by contrast, aborts
// the whole batch.
package extractor

import (
	"tribute-xlsx/internal/classifier"
	"tribute-xlsx/internal/dateutils"
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

// Extractor builds payment records from messages sent by one specific
// bot account.
type Extractor struct {
	classifier   *classifier.Classifier
	senderFilter string
}

// New creates an Extractor. senderFilter is matched exactly and
// case-sensitively against each message's "from" field; it identifies
// the bot account, not the payer.
func New(c *classifier.Classifier, senderFilter string) *Extractor {
	return &Extractor{
		classifier:   c,
		senderFilter: senderFilter,
	}
}

// Records extracts one PaymentRecord per qualifying message, in input
// order. A message qualifies when it comes from the configured bot
// account and yields both a category and an amount.
func (e *Extractor) Records(messages []models.RawMessage) ([]models.PaymentRecord, error) {
	var records []models.PaymentRecord
	for _, msg := range messages {
		if msg.From != e.senderFilter {
			continue
		}

		date, err := dateutils.ParseTimestamp(msg.Date)
		if err != nil {
			return nil, &parsererror.InvalidTimestampError{Value: msg.Date, Err: err}
		}

		category, ok := e.classifier.Classify(classifier.Blob(msg.Entities))
		if !ok {
			log.WithField("date", msg.Date).Debug("Message has no payment category, skipping")
			continue
		}

		amount, ok := Amount(msg.Entities)
		if !ok {
			log.WithFields(logrus.Fields{
				"date":     msg.Date,
				"category": category,
			}).Debug("Message has no parseable amount, skipping")
			continue
		}

		records = append(records, models.PaymentRecord{
			Date:     date,
			Sender:   Sender(msg.Entities),
			Amount:   amount,
			Category: category,
		})
	}

	log.WithFields(logrus.Fields{
		"messages": len(messages),
		"records":  len(records),
	}).Info("Extracted payment records")
	return records, nil
}
