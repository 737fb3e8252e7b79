// Package knowledge holds the keyword-triggered topics of the FAQ responder.
//
// A KnowledgeBase is immutable once built, so lookups from many goroutines
// need no synchronisation. Topic order is significant: when a query contains
// triggers of several topics, the topic listed first wins.
package knowledge

import (
	"errors"
	"fmt"
	"strings"

	"macromate/internal/models"
)

// Configuration errors returned by New.
var (
	ErrEmptyTopicID    = errors.New("topic id is empty")
	ErrNoTriggers      = errors.New("topic has no triggers")
	ErrBlankTrigger    = errors.New("topic has a blank trigger")
	ErrConfidenceRange = errors.New("topic confidence must be between 0 and 1")
	ErrDuplicateTopic  = errors.New("duplicate topic id")
)

// KnowledgeBase is an ordered, validated list of topics.
type KnowledgeBase struct {
	topics []models.Topic
}

// New validates topics and builds a KnowledgeBase preserving their order.
// Triggers are stored lower-cased.
func New(topics []models.Topic) (*KnowledgeBase, error) {
	seen := make(map[string]struct{}, len(topics))
	kept := make([]models.Topic, 0, len(topics))

	for i, t := range topics {
		if strings.TrimSpace(t.ID) == "" {
			return nil, fmt.Errorf("topic #%d: %w", i, ErrEmptyTopicID)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("topic %q: %w", t.ID, ErrDuplicateTopic)
		}
		if len(t.Triggers) == 0 {
			return nil, fmt.Errorf("topic %q: %w", t.ID, ErrNoTriggers)
		}
		if t.Confidence < 0 || t.Confidence > 1 {
			return nil, fmt.Errorf("topic %q: %w", t.ID, ErrConfidenceRange)
		}

		triggers := make([]string, len(t.Triggers))
		for j, trig := range t.Triggers {
			if strings.TrimSpace(trig) == "" {
				return nil, fmt.Errorf("topic %q: %w", t.ID, ErrBlankTrigger)
			}
			triggers[j] = strings.ToLower(trig)
		}

		seen[t.ID] = struct{}{}
		kept = append(kept, models.Topic{
			ID:         t.ID,
			Triggers:   triggers,
			Response:   t.Response,
			Confidence: t.Confidence,
		})
	}

	return &KnowledgeBase{topics: kept}, nil
}

// Lookup returns the first topic, in insertion order, having a trigger that
// is a substring of the normalized query.
func (kb *KnowledgeBase) Lookup(normalizedQuery string) (models.Topic, bool) {
	for _, t := range kb.topics {
		for _, trig := range t.Triggers {
			if strings.Contains(normalizedQuery, trig) {
				return t, true
			}
		}
	}
	return models.Topic{}, false
}

// Len returns the number of topics.
func (kb *KnowledgeBase) Len() int {
	return len(kb.topics)
}

// IDs returns topic ids in insertion order.
func (kb *KnowledgeBase) IDs() []string {
	ids := make([]string, len(kb.topics))
	for i, t := range kb.topics {
		ids[i] = t.ID
	}
	return ids
}
