package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/foxxcyber/voice-cart/internal/models"
)

// Localized user-facing messages.
const (
	msgEnglishCleared       = "Cleared your shopping list."
	msgEnglishNotUnderstood = `I didn't understand that. Try saying something like "add milk" or "I need 5 apples".`

	msgHindiCleared       = "आपकी खरीदारी सूची साफ कर दी गई है।"
	msgHindiNotUnderstood = `मैं समझ नहीं पाया। कृपया "दूध जोड़ो" या "मुझे पांच सेब चाहिए" जैसे वाक्य कहकर प्रयास करें।`
	msgHindiItemUnknown   = "मैं आइटम को पहचान नहीं पाया। कृपया कोई अन्य आइटम नाम कहें।"
	msgHindiWhichItem     = `आपकी सूची में क्या जोड़ना है, कृपया उस आइटम का नाम कहें। उदाहरण के लिए, "दूध जोड़ो"।`
)

var englishNumberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

const numberAlt = `\d+|one|two|three|four|five|six|seven|eight|nine|ten`

// English grammar, compiled once. The remove patterns record which capture
// group holds the item.
var (
	englishRemovePatterns = []struct {
		re        *regexp.Regexp
		itemGroup int
	}{
		{regexp.MustCompile(`(?i)(remove|delete|take off|get rid of)\s+(\w+)`), 2},
		{regexp.MustCompile(`(?i)(\w+)\s+(remove|delete)\b`), 1},
		{regexp.MustCompile(`(?i)no more\s+(\w+)`), 1},
		{regexp.MustCompile(`(?i)don't need\s+(\w+)`), 1},
		{regexp.MustCompile(`(?i)cancel\s+(\w+)`), 1},
	}

	englishQuantityAddPattern   = regexp.MustCompile(`(?i)(add|buy|get|need|want)\s+(` + numberAlt + `)\s+(\w+)`)
	englishArticleAddPattern    = regexp.MustCompile(`(?i)(add|buy|get|need|want)\s+(a|an)\s+(\w+)`)
	englishBareAddPattern       = regexp.MustCompile(`(?i)(add|buy|get|need|want)\s+(\w+)`)
	englishStandalonePattern    = regexp.MustCompile(`(?i)^(` + numberAlt + `)\s+(\w+)$`)
)

// englishCommonItems is the bare-word vocabulary accepted without a verb.
var englishCommonItems = map[string]bool{
	"milk": true, "bread": true, "eggs": true, "rice": true, "tea": true,
	"coffee": true, "sugar": true, "salt": true, "oil": true, "flour": true,
	"apple": true, "banana": true, "orange": true, "tomato": true,
	"potato": true, "onion": true, "chicken": true, "cheese": true,
	"yogurt": true, "butter": true,
}

var hindiAddKeywords = []string{"जोड़ो", "ऐड करो", "डालो", "लाओ", "खरीदो", "चाहिए", "add", "buy"}

var hindiRemoveSuffixes = []string{" हटाओ", " हटा", " निकालो", " डिलीट करो", " hatao", " hata", " nikalo", " remove", " delete"}

// SuggestionClient is the slice of the generative-language client the
// processor depends on.
type SuggestionClient interface {
	Transliterator
	FetchVarietySuggestions(ctx context.Context, itemName string) []string
	ExtractItemName(ctx context.Context, text string) (string, error)
}

// VoiceProcessor interprets transcribed utterances into structured list
// commands. It is stateless across calls: each invocation is a pure function
// of (transcript, language), with the suggestion client as its only side
// effect.
type VoiceProcessor struct {
	lex        *Lexicon
	ai         SuggestionClient
	normalizer *HinglishNormalizer
	logger     zerolog.Logger
}

// NewVoiceProcessor creates a processor over the given lexicon and
// suggestion client.
func NewVoiceProcessor(lex *Lexicon, ai SuggestionClient, logger zerolog.Logger) *VoiceProcessor {
	return &VoiceProcessor{
		lex:        lex,
		ai:         ai,
		normalizer: NewHinglishNormalizer(ai, logger),
		logger:     logger.With().Str("component", "voice_processor").Logger(),
	}
}

// Process interprets one utterance. Every path terminates in a result; no
// error ever escapes to the caller.
func (p *VoiceProcessor) Process(ctx context.Context, transcript string, language models.Language) models.ProcessedCommand {
	text := strings.TrimSpace(transcript)

	p.logger.Debug().Str("transcript", text).Str("language", string(language)).Msg("processing command")

	if text == "" {
		if language.IsHindi() {
			return models.ErrorCommand(msgHindiNotUnderstood)
		}
		return models.ErrorCommand(msgEnglishNotUnderstood)
	}

	if language.IsHindi() {
		if cmd := p.processHindi(ctx, text); cmd != nil {
			return *cmd
		}
		// Secondary attempt: a hi-IN transcript may still be plain English.
		if cmd := p.processEnglish(text); cmd != nil {
			return *cmd
		}
		return models.ErrorCommand(msgHindiNotUnderstood)
	}

	if cmd := p.processEnglish(text); cmd != nil {
		return *cmd
	}
	return models.ErrorCommand(msgEnglishNotUnderstood)
}

// processEnglish runs the ordered English grammar; the first matching rule
// wins. Returns nil when no rule matches.
func (p *VoiceProcessor) processEnglish(text string) *models.ProcessedCommand {
	lower := strings.ToLower(text)

	// 1. clear
	if strings.Contains(lower, "clear") || strings.Contains(lower, "empty") {
		return &models.ProcessedCommand{Type: models.CommandClear, Message: msgEnglishCleared}
	}

	// 2. remove
	for _, pat := range englishRemovePatterns {
		if m := pat.re.FindStringSubmatch(lower); m != nil {
			item := m[pat.itemGroup]
			if item != "" && item != "remove" && item != "delete" {
				return &models.ProcessedCommand{
					Type:         models.CommandRemove,
					Message:      fmt.Sprintf("Removed %s from your shopping list.", item),
					SelectedItem: item,
				}
			}
		}
	}

	// 3. verb + quantity + item
	if m := englishQuantityAddPattern.FindStringSubmatch(lower); m != nil {
		return p.englishAdd(m[3], parseEnglishQuantity(m[2]))
	}

	// 4. verb + article + item
	if m := englishArticleAddPattern.FindStringSubmatch(lower); m != nil {
		return p.englishAdd(m[3], 1)
	}

	// 5. verb + item
	if m := englishBareAddPattern.FindStringSubmatch(lower); m != nil {
		return p.englishAdd(m[2], 1)
	}

	// 6. standalone quantity + item
	if m := englishStandalonePattern.FindStringSubmatch(lower); m != nil {
		return p.englishAdd(m[2], parseEnglishQuantity(m[1]))
	}

	// 7. bare common item
	if englishCommonItems[lower] {
		return p.englishAdd(lower, 1)
	}

	return nil
}

// parseEnglishQuantity maps a digit string or number word to an integer,
// defaulting to 1. Never returns less than 1.
func parseEnglishQuantity(word string) int {
	if n, err := strconv.Atoi(word); err == nil && n > 0 {
		return n
	}
	if n, ok := englishNumberWords[strings.ToLower(word)]; ok {
		return n
	}
	return 1
}

func (p *VoiceProcessor) englishAdd(name string, quantity int) *models.ProcessedCommand {
	category := p.lex.CategoryFor(name)
	unit := p.lex.UnitFor(name)
	item := models.NewShoppingItem(name, quantity, unit, category)
	return &models.ProcessedCommand{
		Type:    models.CommandAdd,
		Message: fmt.Sprintf("Added %d %s of %s to your shopping list.", item.Quantity, unit, name),
		Item:    &item,
	}
}

// processHindi runs the Hindi pipeline: normalize, then remove/clear/add in
// that precedence. Returns nil when nothing matches so the caller can fall
// through to the English grammar.
func (p *VoiceProcessor) processHindi(ctx context.Context, text string) *models.ProcessedCommand {
	norm := p.normalizer.Normalize(ctx, text)

	// The removal flag takes precedence over everything below.
	if norm.IsRemoveCommand {
		return p.hindiRemove(ctx, norm.Text)
	}

	lower := strings.ToLower(norm.Text)

	if strings.Contains(lower, "साफ") || strings.Contains(lower, "खाली") || strings.Contains(lower, "clear") {
		return &models.ProcessedCommand{Type: models.CommandClear, Message: msgHindiCleared}
	}

	if entry, quantity, ok := p.findHindiItem(lower); ok {
		return p.hindiAdd(entry.Hindi, quantity)
	}

	for _, kw := range hindiAddKeywords {
		if strings.Contains(lower, kw) {
			return &models.ProcessedCommand{Type: models.CommandError, Message: msgHindiWhichItem}
		}
	}

	// Single bare token that the lexicon knows.
	words := strings.Fields(norm.Text)
	if len(words) == 1 && p.lex.HasHindi(words[0]) {
		return p.hindiAdd(words[0], 1)
	}

	return nil
}

// findHindiItem scans the lexicon in declaration order for the first entry
// contained in the text, then looks for an adjacent quantity word. Earlier
// entries shadow later ones on ties.
func (p *VoiceProcessor) findHindiItem(lower string) (LexiconEntry, int, bool) {
	for _, entry := range p.lex.Entries() {
		hindiLower := strings.ToLower(entry.Hindi)
		if !strings.Contains(lower, hindiLower) {
			continue
		}

		quantity := 1
		for _, n := range p.lex.Numbers() {
			if strings.Contains(lower, strings.ToLower(n.word)+" "+hindiLower) ||
				strings.Contains(lower, fmt.Sprintf("%d %s", n.value, hindiLower)) {
				quantity = n.value
				break
			}
		}
		return entry, quantity, true
	}
	return LexiconEntry{}, 0, false
}

// hindiAdd builds an add result. Category and unit derive from the canonical
// English term; the stored item name keeps the original Hindi spelling.
func (p *VoiceProcessor) hindiAdd(hindiName string, quantity int) *models.ProcessedCommand {
	canonical := p.lex.Translate(hindiName)
	category := p.lex.CategoryFor(canonical)
	unit := p.lex.UnitFor(canonical)
	item := models.NewShoppingItem(hindiName, quantity, unit, category)
	return &models.ProcessedCommand{
		Type:    models.CommandAdd,
		Message: fmt.Sprintf("%d %s %s आपकी खरीदारी सूची में जोड़ दिया गया है।", item.Quantity, unit, hindiName),
		Item:    &item,
	}
}

// hindiRemove extracts the item to remove and maps it through the lexicon so
// the caller's resolver receives the canonical English term when one exists.
func (p *VoiceProcessor) hindiRemove(ctx context.Context, text string) *models.ProcessedCommand {
	itemName := p.extractHindiItem(ctx, text)
	if itemName == "" {
		return &models.ProcessedCommand{Type: models.CommandError, Message: msgHindiItemUnknown}
	}

	canonical := p.lex.Translate(itemName)
	return &models.ProcessedCommand{
		Type:         models.CommandRemove,
		Message:      fmt.Sprintf("%s आपकी खरीदारी सूची से हटा दिया गया है।", itemName),
		SelectedItem: canonical,
	}
}

// extractHindiItem prefers the AI extraction prompt and falls back to
// splitting on removal-keyword suffixes, then to the last token.
func (p *VoiceProcessor) extractHindiItem(ctx context.Context, text string) string {
	if name, err := p.ai.ExtractItemName(ctx, text); err == nil {
		return name
	} else {
		p.logger.Warn().Err(err).Msg("item extraction call failed, using local fallback")
	}

	for _, suffix := range hindiRemoveSuffixes {
		if idx := strings.Index(text, suffix); idx >= 0 {
			if item := strings.TrimSpace(text[:idx]); item != "" {
				return fixCommonMispronunciations(item)
			}
		}
	}

	words := strings.Fields(text)
	if len(words) > 0 {
		return fixCommonMispronunciations(words[len(words)-1])
	}
	return ""
}

// SuggestVarieties produces a suggest-typed result for the variety-picker
// flow. The suggestion client already degrades to local fallbacks, so this
// always yields at least one suggestion.
func (p *VoiceProcessor) SuggestVarieties(ctx context.Context, itemName string, language models.Language) models.ProcessedCommand {
	canonical := p.lex.Translate(itemName)
	suggestions := p.ai.FetchVarietySuggestions(ctx, canonical)
	category := p.lex.CategoryFor(canonical)

	message := fmt.Sprintf("Here are some varieties of %s. Which one would you like?", itemName)
	if language.IsHindi() {
		message = fmt.Sprintf("%s की कुछ किस्में यहां हैं। आप कौन सी लेना चाहेंगे?", itemName)
	}

	return models.ProcessedCommand{
		Type:        models.CommandSuggest,
		Message:     message,
		Suggestions: suggestions,
		Category:    category,
	}
}

// ConfirmVariety produces a confirm-typed result for a picked variety. The
// caller owns the list and constructs the stored item.
func (p *VoiceProcessor) ConfirmVariety(variety string, language models.Language) models.ProcessedCommand {
	message := fmt.Sprintf("Added %s to your shopping list.", variety)
	if language.IsHindi() {
		message = fmt.Sprintf("%s आपकी खरीदारी सूची में जोड़ दिया गया है।", variety)
	}
	return models.ProcessedCommand{
		Type:         models.CommandConfirm,
		Message:      message,
		SelectedItem: variety,
	}
}
