package services

import (
	"strings"

	"github.com/foxxcyber/voice-cart/internal/models"
)

// ItemResolver matches a candidate item name, possibly in the other
// language, against the live list for remove and update operations.
type ItemResolver struct {
	lex *Lexicon
}

// NewItemResolver creates a resolver over the given lexicon.
func NewItemResolver(lex *Lexicon) *ItemResolver {
	return &ItemResolver{lex: lex}
}

// Resolve finds the list entry for candidateName, trying tiers in order:
// exact case-insensitive match, cross-language translated match, then
// bidirectional substring containment. Ties within a tier resolve to list
// order. Returns nil when no tier matches; the caller emits a localized
// not-found message.
func (r *ItemResolver) Resolve(candidateName string, items []models.ShoppingItem, language models.Language) *models.ShoppingItem {
	candidate := strings.ToLower(strings.TrimSpace(candidateName))
	if candidate == "" {
		return nil
	}

	// Tier 1: exact match on the stored name.
	for i := range items {
		if strings.ToLower(items[i].Name) == candidate {
			return &items[i]
		}
	}

	// Tier 2: translate across languages and retry. The Hindi extractor
	// emits canonical English terms, so under hi-IN the list may hold the
	// Hindi spelling; under en-US the candidate itself may be Hindi.
	var translated string
	if language.IsHindi() {
		translated = r.lex.EnglishToHindi(candidateName)
	} else {
		translated = r.lex.Translate(candidateName)
	}
	if t := strings.ToLower(strings.TrimSpace(translated)); t != "" && t != candidate {
		for i := range items {
			if strings.ToLower(items[i].Name) == t {
				return &items[i]
			}
		}
	}

	// Tier 3: substring containment either way, which covers plural and
	// partial forms.
	for i := range items {
		name := strings.ToLower(items[i].Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, candidate) || strings.Contains(candidate, name) {
			return &items[i]
		}
	}

	return nil
}
