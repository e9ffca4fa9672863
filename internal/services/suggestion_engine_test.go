package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foxxcyber/voice-cart/internal/models"
)

var (
	midSummer = time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	midWinter = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
)

func TestSuggestSeasonal(t *testing.T) {
	e := NewSuggestionEngine()

	out := e.Suggest(nil, midSummer)

	require.NotEmpty(t, out)
	assert.Equal(t, "tomatoes", out[0].Name)
	assert.Equal(t, ReasonSeasonal, out[0].Reason)
}

func TestSuggestSeasonFor(t *testing.T) {
	assert.Equal(t, "spring", seasonFor(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "summer", seasonFor(midSummer))
	assert.Equal(t, "fall", seasonFor(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "winter", seasonFor(midWinter))
	assert.Equal(t, "winter", seasonFor(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSuggestExcludesListedItems(t *testing.T) {
	e := NewSuggestionEngine()
	list := testList("tomatoes", "Corn")

	out := e.Suggest(list, midSummer)

	for _, s := range out {
		assert.NotEqual(t, "tomatoes", s.Name)
		assert.NotEqual(t, "corn", s.Name)
	}
}

func TestSuggestFrequentlyBoughtTogether(t *testing.T) {
	e := NewSuggestionEngine()

	// Seasonal and trending suggestions fill the cap first; list-derived
	// ones only surface when enough of the preamble is already on the
	// list.
	list := testList("milk", "kale", "cabbage", "winter squash", "quinoa", "kombucha", "chia seeds")

	out := e.Suggest(list, midWinter)

	names := make(map[string]SuggestionReason, len(out))
	for _, s := range out {
		names[s.Name] = s.Reason
	}
	require.Contains(t, names, "bread")
	assert.Equal(t, ReasonFrequent, names["bread"])
}

func TestSuggestSubstitutes(t *testing.T) {
	e := NewSuggestionEngine()
	list := testList("butter", "kale", "cabbage", "quinoa", "kombucha", "chia seeds")

	out := e.Suggest(list, midWinter)

	var reasons []SuggestionReason
	for _, s := range out {
		if s.Name == "olive oil" {
			reasons = append(reasons, s.Reason)
		}
	}
	require.Len(t, reasons, 1)
	assert.Equal(t, ReasonSubstitute, reasons[0])
}

func TestSuggestCapAndUniqueness(t *testing.T) {
	e := NewSuggestionEngine()
	list := testList("milk", "bread", "eggs", "bananas", "chicken", "pasta")

	out := e.Suggest(list, midSummer)

	assert.LessOrEqual(t, len(out), maxSmartSuggestions)
	seen := make(map[string]bool, len(out))
	for _, s := range out {
		assert.False(t, seen[s.Name], "duplicate suggestion %q", s.Name)
		seen[s.Name] = true
	}
}

func TestSuggestDeterministic(t *testing.T) {
	e := NewSuggestionEngine()
	list := testList("milk", "coffee")

	assert.Equal(t, e.Suggest(list, midWinter), e.Suggest(list, midWinter))
}

func TestSuggestEmptyList(t *testing.T) {
	e := NewSuggestionEngine()

	out := e.Suggest([]models.ShoppingItem{}, midWinter)

	require.Len(t, out, maxSmartSuggestions)
	for _, s := range out {
		assert.Contains(t, []SuggestionReason{ReasonSeasonal, ReasonTrending}, s.Reason)
	}
}
