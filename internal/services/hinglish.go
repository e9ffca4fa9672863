package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// latinRemoveKeywords are Latin-script removal markers (Hinglish and
// English). devanagariRemoveKeywords are their Devanagari counterparts.
var (
	latinRemoveKeywords      = []string{"hatao", "hata", "nikalo", "delete", "remove"}
	devanagariRemoveKeywords = []string{"हटाओ", "हटा", "निकालो", "डिलीट"}

	latinLetterPattern = regexp.MustCompile(`[a-zA-Z]`)
)

func containsLatinRemoveKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range latinRemoveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func containsDevanagariRemoveKeyword(text string) bool {
	for _, kw := range devanagariRemoveKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// NormalizedUtterance is the output of the Hinglish normalizer: Devanagari
// text plus the removal-intent flag.
type NormalizedUtterance struct {
	Text            string
	IsRemoveCommand bool
}

// Transliterator is the slice of the suggestion client the normalizer needs.
type Transliterator interface {
	CorrectTransliteration(ctx context.Context, text string) TransliterationResult
}

// HinglishNormalizer converts Latin-script Hindi utterances to Devanagari
// and detects removal intent. Removal detection is monotonic: the service
// flag, the Latin keyword scan and the Devanagari keyword scan can each
// assert it, none can retract it.
type HinglishNormalizer struct {
	ai     Transliterator
	logger zerolog.Logger
}

// NewHinglishNormalizer creates a normalizer backed by the given
// transliteration service.
func NewHinglishNormalizer(ai Transliterator, logger zerolog.Logger) *HinglishNormalizer {
	return &HinglishNormalizer{
		ai:     ai,
		logger: logger.With().Str("component", "hinglish").Logger(),
	}
}

// Normalize maps an utterance from the Hindi pipeline to Devanagari text and
// a removal flag. Devanagari input passes through unchanged.
func (n *HinglishNormalizer) Normalize(ctx context.Context, text string) NormalizedUtterance {
	hasRemoveKeyword := containsLatinRemoveKeyword(text) || containsDevanagariRemoveKeyword(text)

	if latinLetterPattern.MatchString(text) {
		result := n.ai.CorrectTransliteration(ctx, text)
		n.logger.Debug().
			Str("input", text).
			Str("corrected", result.CorrectedText).
			Bool("remove", result.IsRemoveCommand || hasRemoveKeyword).
			Msg("normalized hinglish utterance")
		return NormalizedUtterance{
			Text:            result.CorrectedText,
			IsRemoveCommand: result.IsRemoveCommand || hasRemoveKeyword,
		}
	}

	return NormalizedUtterance{
		Text:            text,
		IsRemoveCommand: hasRemoveKeyword,
	}
}
