package services

import (
	"strings"
	"time"

	"github.com/foxxcyber/voice-cart/internal/models"
)

// SuggestionReason classifies why an item was suggested.
type SuggestionReason string

const (
	ReasonSeasonal   SuggestionReason = "seasonal"
	ReasonTrending   SuggestionReason = "trending"
	ReasonFrequent   SuggestionReason = "frequent"
	ReasonSubstitute SuggestionReason = "substitute"
)

// SmartSuggestion is one recommendation with its reason.
type SmartSuggestion struct {
	Name   string           `json:"name"`
	Reason SuggestionReason `json:"reason"`
}

var seasonalItems = map[string][]string{
	"spring": {"asparagus", "peas", "strawberries", "rhubarb", "artichokes"},
	"summer": {"tomatoes", "corn", "watermelon", "peaches", "zucchini", "bell peppers"},
	"fall":   {"pumpkin", "squash", "apples", "pears", "mushrooms", "sweet potatoes"},
	"winter": {"citrus fruits", "root vegetables", "winter squash", "cabbage", "kale"},
}

var trendingItems = []string{
	"organic avocados", "plant-based milk", "quinoa", "chia seeds",
	"kombucha", "kale chips",
}

var frequentlyBoughtTogether = map[string][]string{
	"milk":       {"bread", "cereal", "eggs", "honey", "cookies", "chocolate"},
	"bread":      {"milk", "butter", "jam", "honey", "olive oil", "garlic"},
	"eggs":       {"milk", "bacon", "cheese", "bread", "vegetables", "herbs"},
	"bananas":    {"yogurt", "cereal", "peanut butter", "honey", "nuts", "chocolate"},
	"chicken":    {"rice", "vegetables", "sauce", "herbs", "olive oil", "garlic"},
	"pasta":      {"tomato sauce", "cheese", "vegetables", "olive oil", "garlic", "herbs"},
	"coffee":     {"cream", "sugar", "filters", "cookies"},
	"toothpaste": {"toothbrush", "floss", "mouthwash"},
	"tomato":     {"onion", "garlic", "potatoes", "cilantro", "ginger", "spices"},
}

var substituteItems = map[string][]string{
	"milk":   {"almond milk", "soy milk", "oat milk", "coconut milk"},
	"butter": {"olive oil", "coconut oil", "avocado"},
	"eggs":   {"flax seeds", "chia seeds", "banana", "applesauce"},
	"sugar":  {"honey", "maple syrup", "stevia", "coconut sugar"},
	"flour":  {"almond flour", "coconut flour"},
	"meat":   {"tofu", "tempeh", "seitan"},
}

const maxSmartSuggestions = 10

// SuggestionEngine recommends items based on the current list, the season
// and trends. Pure and deterministic for a fixed time.
type SuggestionEngine struct{}

// NewSuggestionEngine creates an engine.
func NewSuggestionEngine() *SuggestionEngine {
	return &SuggestionEngine{}
}

// Suggest produces up to ten unique recommendations for the given list
// snapshot at the given time.
func (e *SuggestionEngine) Suggest(list []models.ShoppingItem, now time.Time) []SmartSuggestion {
	onList := make(map[string]bool, len(list))
	for _, item := range list {
		onList[strings.ToLower(item.Name)] = true
	}

	seen := make(map[string]bool)
	var out []SmartSuggestion
	appendUnique := func(name string, reason SuggestionReason) {
		lower := strings.ToLower(name)
		if onList[lower] || seen[lower] || len(out) >= maxSmartSuggestions {
			return
		}
		seen[lower] = true
		out = append(out, SmartSuggestion{Name: name, Reason: reason})
	}

	for _, name := range seasonalItems[seasonFor(now)] {
		appendUnique(name, ReasonSeasonal)
	}
	for _, name := range trendingItems {
		appendUnique(name, ReasonTrending)
	}
	for _, item := range list {
		lower := strings.ToLower(item.Name)
		for _, name := range frequentlyBoughtTogether[lower] {
			appendUnique(name, ReasonFrequent)
		}
		for _, name := range substituteItems[lower] {
			appendUnique(name, ReasonSubstitute)
		}
	}

	return out
}

func seasonFor(now time.Time) string {
	switch month := now.Month(); {
	case month >= time.March && month <= time.May:
		return "spring"
	case month >= time.June && month <= time.August:
		return "summer"
	case month >= time.September && month <= time.November:
		return "fall"
	default:
		return "winter"
	}
}
