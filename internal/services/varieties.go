package services

import (
	"fmt"
	"strings"
)

// curatedVarieties maps an exact item name to its known varieties. Checked
// before the keyword classes below.
var curatedVarieties = map[string][]string{
	"apples": {
		"Red Delicious Apples", "Granny Smith Apples", "Gala Apples",
		"Fuji Apples", "Honeycrisp Apples", "Pink Lady Apples",
		"Golden Delicious Apples", "McIntosh Apples",
	},
	"milk": {
		"Whole Milk", "2% Reduced Fat Milk", "1% Low Fat Milk", "Skim Milk",
		"Almond Milk", "Soy Milk", "Oat Milk", "Organic Whole Milk",
	},
	"bread": {
		"Whole Wheat Bread", "White Bread", "Sourdough Bread",
		"Multigrain Bread", "Rye Bread", "Brioche Bread",
		"Gluten-Free Bread", "Artisan Bread",
	},
	"eggs": {
		"Large Eggs", "Extra Large Eggs", "Jumbo Eggs", "Organic Eggs",
		"Free-Range Eggs", "Cage-Free Eggs", "Brown Eggs", "White Eggs",
	},
	"cheese": {
		"Cheddar Cheese", "Mozzarella Cheese", "Swiss Cheese",
		"Provolone Cheese", "Gouda Cheese", "Feta Cheese",
		"Parmesan Cheese", "Colby Jack Cheese",
	},
	"yogurt": {
		"Greek Yogurt", "Regular Yogurt", "Vanilla Yogurt",
		"Strawberry Yogurt", "Plain Yogurt", "Low-Fat Yogurt",
		"Organic Yogurt", "Plant-Based Yogurt",
	},
	"bananas": {
		"Regular Bananas", "Organic Bananas", "Plantains", "Red Bananas",
		"Lady Finger Bananas", "Cavendish Bananas", "Baby Bananas",
		"Green Bananas",
	},
	"tomatoes": {
		"Roma Tomatoes", "Cherry Tomatoes", "Beefsteak Tomatoes",
		"Grape Tomatoes", "Heirloom Tomatoes", "Campari Tomatoes",
		"Vine-Ripened Tomatoes", "Organic Tomatoes",
	},
	"chicken": {
		"Chicken Breast", "Chicken Thighs", "Chicken Wings", "Whole Chicken",
		"Ground Chicken", "Chicken Tenders", "Organic Chicken",
		"Free-Range Chicken",
	},
	"rice": {
		"White Rice", "Brown Rice", "Basmati Rice", "Jasmine Rice",
		"Arborio Rice", "Wild Rice", "Long Grain Rice", "Organic Rice",
	},
}

type varietyClass struct {
	keywords  []string
	varieties []string
}

// varietyClasses are checked in order; the first class with a matching
// keyword wins.
var varietyClasses = []varietyClass{
	{
		keywords: []string{"shirt", "clothes", "clothing"},
		varieties: []string{
			"Nike Shirt", "Adidas Shirt", "Puma Shirt", "Under Armour Shirt",
			"Levi's Shirt", "Tommy Hilfiger Shirt", "Calvin Klein Shirt",
			"Ralph Lauren Shirt",
		},
	},
	{
		keywords: []string{"shoes", "footwear"},
		varieties: []string{
			"Nike Shoes", "Adidas Shoes", "Converse Shoes", "Vans Shoes",
			"Puma Shoes", "Reebok Shoes", "New Balance Shoes",
			"Skechers Shoes",
		},
	},
	{
		keywords: []string{"toothpaste", "dental"},
		varieties: []string{
			"Colgate Toothpaste", "Crest Toothpaste", "Sensodyne Toothpaste",
			"Oral-B Toothpaste", "Aquafresh Toothpaste",
			"Arm & Hammer Toothpaste", "Tom's Toothpaste",
			"Close-Up Toothpaste",
		},
	},
	{
		keywords: []string{"meat", "beef", "pork"},
		varieties: []string{
			"Beef", "Pork", "Lamb", "Chicken", "Turkey", "Duck", "Goat",
			"Bison",
		},
	},
	{
		keywords: []string{"lentil", "dal"},
		varieties: []string{
			"Red Lentils", "Green Lentils", "Black Lentils", "Yellow Lentils",
			"Brown Lentils", "Split Peas", "Chickpeas", "Kidney Beans",
		},
	},
}

// FallbackVarieties returns a deterministic variety list for an item when the
// suggestion service is unavailable. It is total: any input yields at least
// eight entries.
func FallbackVarieties(itemName string) []string {
	lower := strings.ToLower(strings.TrimSpace(itemName))

	if varieties, ok := curatedVarieties[lower]; ok {
		out := make([]string, len(varieties))
		copy(out, varieties)
		return out
	}

	for _, class := range varietyClasses {
		for _, kw := range class.keywords {
			if strings.Contains(lower, kw) {
				out := make([]string, len(class.varieties))
				copy(out, class.varieties)
				return out
			}
		}
	}

	return []string{
		fmt.Sprintf("%s - Brand A", itemName),
		fmt.Sprintf("%s - Brand B", itemName),
		fmt.Sprintf("%s - Premium", itemName),
		fmt.Sprintf("%s - Organic", itemName),
		fmt.Sprintf("%s - Regular", itemName),
		fmt.Sprintf("%s - Large Size", itemName),
		fmt.Sprintf("%s - Small Size", itemName),
		fmt.Sprintf("%s - Standard", itemName),
	}
}
