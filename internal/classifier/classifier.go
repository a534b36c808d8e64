// Package classifier decides which payment category, if any, a message
// belongs to. Classification is keyword containment over an ordered
// rule table: rules are evaluated in declaration order and the first
// match wins, so overlapping triggers resolve deterministically.
package classifier

import (
	"fmt"
	"os"
	"strings"

	"tribute-xlsx/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Rule maps a set of trigger keywords to a payment category. A message
// blob containing any of the keywords matches the rule.
type Rule struct {
	Category models.PaymentCategory `yaml:"category"`
	Keywords []string               `yaml:"keywords"`
}

// Classifier evaluates an ordered rule table against message text.
type Classifier struct {
	rules []Rule
}

type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// New creates a Classifier with the built-in rule table.
func New() *Classifier {
	c, err := parseRules(defaultRules)
	if err != nil {
		// The embedded table is validated by tests; failing to parse it
		// is a build defect, not a runtime condition.
		log.WithError(err).Fatal("Embedded classification rules are invalid")
	}
	return c
}

// NewFromFile creates a Classifier with a rule table loaded from a
// YAML file, replacing the built-in rules entirely.
func NewFromFile(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	c, err := parseRules(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"rules": len(c.rules),
	}).Info("Loaded classification rules")
	return c, nil
}

func parseRules(data []byte) (*Classifier, error) {
	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, err
	}
	if len(rf.Rules) == 0 {
		return nil, fmt.Errorf("rule table is empty")
	}
	for i, rule := range rf.Rules {
		if rule.Category == "" {
			return nil, fmt.Errorf("rule %d has no category", i)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rule %d (%s) has no keywords", i, rule.Category)
		}
	}
	return &Classifier{rules: rf.Rules}, nil
}

// Rules returns the rule table in evaluation order.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Classify matches the blob against the rule table. The second return
// value is false when no rule matches, meaning the message is not a
// payment notification.
func (c *Classifier) Classify(blob string) (models.PaymentCategory, bool) {
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(blob, keyword) {
				log.WithFields(logrus.Fields{
					"keyword":  keyword,
					"category": rule.Category,
				}).Debug("Message classified by keyword")
				return rule.Category, true
			}
		}
	}
	return "", false
}

// Blob builds the classification input for a message: all entity texts
// lowercased and joined with single spaces, in fragment order.
func Blob(entities []models.TextEntity) string {
	parts := make([]string, 0, len(entities))
	for _, entity := range entities {
		parts = append(parts, strings.ToLower(entity.Text))
	}
	return strings.Join(parts, " ")
}
