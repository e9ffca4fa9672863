package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackVarietiesCurated(t *testing.T) {
	varieties := FallbackVarieties("apples")

	require.Len(t, varieties, 8)
	assert.Contains(t, varieties, "Fuji Apples")
	assert.Contains(t, varieties, "Granny Smith Apples")
}

func TestFallbackVarietiesNormalizesLookup(t *testing.T) {
	assert.Equal(t, FallbackVarieties("apples"), FallbackVarieties("  Apples "))
}

func TestFallbackVarietiesKeywordClasses(t *testing.T) {
	tests := []struct {
		item     string
		expected string
	}{
		{"running shoes", "Nike Shoes"},
		{"toothpaste", "Colgate Toothpaste"},
		{"ground beef", "Beef"},
		{"red lentils", "Red Lentils"},
		{"dal", "Red Lentils"},
		{"blue shirt", "Nike Shirt"},
	}
	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			varieties := FallbackVarieties(tt.item)
			require.Len(t, varieties, 8)
			assert.Contains(t, varieties, tt.expected)
		})
	}
}

func TestFallbackVarietiesGeneric(t *testing.T) {
	varieties := FallbackVarieties("paper towels")

	require.Len(t, varieties, 8)
	assert.Equal(t, "paper towels - Brand A", varieties[0])
	assert.Equal(t, "paper towels - Standard", varieties[7])
}

func TestFallbackVarietiesIsTotal(t *testing.T) {
	for _, item := range []string{"", "   ", "x", "अनाज"} {
		assert.NotEmpty(t, FallbackVarieties(item), "item %q", item)
	}
}

func TestFallbackVarietiesReturnsCopies(t *testing.T) {
	first := FallbackVarieties("milk")
	first[0] = "mutated"

	assert.Equal(t, "Whole Milk", FallbackVarieties("milk")[0])
}
