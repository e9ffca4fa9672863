package services

import "strings"

// LexiconEntry maps one Hindi spelling to its canonical English term. The
// mapping is many-to-one: mispronunciations and alternate spellings share a
// canonical term.
type LexiconEntry struct {
	Hindi   string
	English string
}

type substringRule struct {
	pattern string
	value   string
}

type numberWord struct {
	word  string
	value int
}

// Lexicon holds the static Hindi/English term tables plus the ordered
// category and unit derivation rules. It is built once at startup and passed
// by reference; nothing mutates it afterwards.
type Lexicon struct {
	entries       []LexiconEntry
	hindiIndex    map[string]string
	numbers       []numberWord
	categoryRules []substringRule
	unitRules     []substringRule
}

/// NewLexicon builds the canonical lexicon. Entry order matters: containment
// scans resolve ties by declaration order, so earlier entries shadow later
// ones.
func NewLexicon() *Lexicon {
	entries := []LexiconEntry{
		{"दूध", "milk"},
		{"रोटी", "bread"},
		{"अंडे", "eggs"},
		{"चावल", "rice"},
		{"चवाल", "rice"}, // common mispronunciation
		{"चाय", "tea"},
		{"कॉफी", "coffee"},
		{"शक्कर", "sugar"},
		{"नमक", "salt"},
		{"तेल", "oil"},
		{"आटा", "flour"},
		{"मैदा", "flour"}, // refined flour
		{"दाल", "lentils"},
		{"सब्जी", "vegetables"},
		{"फल", "fruits"},
		{"सेब", "apple"},
		{"केला", "banana"},
		{"कैला", "banana"}, // common mispronunciation
		{"केले", "banana"}, // plural form
		{"संतरा", "orange"},
		{"टमाटर", "tomato"},
		{"आलू", "potato"},
		{"प्याज", "onion"},
		{"लहसुन", "garlic"},
		{"अदरक", "ginger"},
		{"मांस", "meat"},
		{"मछली", "fish"},
		{"चिकन", "chicken"},
		{"पनीर", "cheese"},
		{"दही", "yogurt"},
		{"मक्खन", "butter"},
		{"बिस्कुट", "biscuit"},
		{"चॉकलेट", "chocolate"},
		{"आइसक्रीम", "ice cream"},
		{"पानी", "water"},
		{"जूस", "juice"},
		{"नूडल्स", "noodles"},
		{"पास्ता", "pasta"},
		{"सूप", "soup"},
		{"चिप्स", "chips"},
		{"नमकीन", "snacks"},
		{"ब्रेड", "bread"},
		{"केक", "cake"},
		{"बटर", "butter"},
		{"चीज़", "cheese"},
		{"चना", "chickpeas"},
		{"राजमा", "kidney beans"},
		{"हल्दी", "turmeric"},
		{"धनिया", "coriander"},
		{"जीरा", "cumin"},
		{"मसाला", "spices"},
		// Latin Hinglish spellings, so local fallbacks still resolve when
		// the transliteration service is down. Declared after the
		// Devanagari block so the canonical spellings shadow them.
		{"doodh", "milk"},
		{"chawal", "rice"},
		{"chaawal", "rice"},
		{"roti", "bread"},
		{"ande", "eggs"},
		{"chai", "tea"},
		{"cheeni", "sugar"},
		{"namak", "salt"},
		{"aata", "flour"},
		{"maida", "flour"},
		{"seb", "apple"},
		{"kela", "banana"},
		{"santra", "orange"},
		{"tamatar", "tomato"},
		{"aloo", "potato"},
		{"pyaz", "onion"},
		{"paneer", "cheese"},
		{"dahi", "yogurt"},
		{"makkhan", "butter"},
		{"machli", "fish"},
		{"sabzi", "vegetables"},
		{"dal", "lentils"},
	}

	index := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, ok := index[e.Hindi]; !ok {
			index[e.Hindi] = e.English
		}
	}

	return &Lexicon{
		entries:    entries,
		hindiIndex: index,
		numbers: []numberWord{
			{"एक", 1}, {"दो", 2}, {"तीन", 3}, {"चार", 4},
			{"पांच", 5}, {"पाँच", 5}, {"छह", 6}, {"सात", 7},
			{"आठ", 8}, {"नौ", 9}, {"दस", 10},
			{"१", 1}, {"२", 2}, {"३", 3}, {"४", 4}, {"५", 5},
			{"६", 6}, {"७", 7}, {"८", 8}, {"९", 9}, {"१०", 10},
			{"ek", 1}, {"do", 2}, {"teen", 3}, {"char", 4},
			{"panch", 5}, {"paanch", 5}, {"chhah", 6}, {"saat", 7},
			{"aath", 8}, {"nau", 9}, {"das", 10},
		},
		categoryRules: []substringRule{
			{"apple", "produce"},
			{"banana", "produce"},
			{"orange", "produce"},
			{"tomato", "produce"},
			{"potato", "produce"},
			{"onion", "produce"},
			{"milk", "dairy"},
			{"cheese", "dairy"},
			{"yogurt", "dairy"},
			{"egg", "dairy"},
			{"butter", "dairy"},
			{"bread", "bakery"},
			{"chicken", "meat"},
			{"meat", "meat"},
			{"fish", "meat"},
			{"rice", "pantry"},
			{"flour", "pantry"},
			{"sugar", "pantry"},
			{"salt", "pantry"},
			{"oil", "pantry"},
			{"tea", "pantry"},
			{"coffee", "pantry"},
		},
		unitRules: []substringRule{
			{"apple", "piece"},
			{"banana", "piece"},
			{"orange", "piece"},
			{"tomato", "piece"},
			{"potato", "piece"},
			{"onion", "piece"},
			{"milk", "gallon"},
			{"bread", "loaf"},
			{"egg", "dozen"},
			{"cheese", "package"},
			{"yogurt", "container"},
			{"chicken", "pound"},
			{"rice", "bag"},
			{"flour", "bag"},
			{"sugar", "bag"},
			{"salt", "box"},
			{"oil", "bottle"},
			{"tea", "box"},
			{"coffee", "bag"},
			{"butter", "pack"},
		},
	}
}

// Entries returns the lexicon in declaration order.
func (l *Lexicon) Entries() []LexiconEntry {
	return l.entries
}

// Translate maps a Hindi term to its canonical English term, returning the
// input unchanged when no mapping exists.
func (l *Lexicon) Translate(term string) string {
	if english, ok := l.hindiIndex[term]; ok {
		return english
	}
	return term
}

// HasHindi reports whether term is a known Hindi lexicon key.
func (l *Lexicon) HasHindi(term string) bool {
	_, ok := l.hindiIndex[term]
	return ok
}

// EnglishToHindi returns the first Hindi spelling mapped to the given English
// term, or the input unchanged when none exists.
func (l *Lexicon) EnglishToHindi(term string) string {
	lower := strings.ToLower(term)
	for _, e := range l.entries {
		if e.English == lower {
			return e.Hindi
		}
	}
	return term
}

// Numbers returns the Hindi numeral words in declaration order.
func (l *Lexicon) Numbers() []numberWord {
	return l.numbers
}

// Number maps a Hindi numeral word or Devanagari digit to its value.
func (l *Lexicon) Number(word string) (int, bool) {
	for _, n := range l.numbers {
		if n.word == word {
			return n.value, true
		}
	}
	return 0, false
}

// CategoryFor derives the category for an item name using the ordered
// substring rules. Matching is case-insensitive and the first rule wins;
// unmatched names fall back to "general".
func (l *Lexicon) CategoryFor(name string) string {
	lower := strings.ToLower(name)
	for _, r := range l.categoryRules {
		if strings.Contains(lower, r.pattern) {
			return r.value
		}
	}
	return "general"
}

// UnitFor derives the default unit for an item name the same way CategoryFor
// derives the category; unmatched names fall back to "piece".
func (l *Lexicon) UnitFor(name string) string {
	lower := strings.ToLower(name)
	for _, r := range l.unitRules {
		if strings.Contains(lower, r.pattern) {
			return r.value
		}
	}
	return "piece"
}
