package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foxxcyber/voice-cart/internal/cache"
)

// geminiReply wraps text in the candidate envelope the endpoint returns.
func geminiReply(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func newTestGemini(t *testing.T, handler http.HandlerFunc, cacheClient cache.Client) *GeminiClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGeminiClient("test-key", server.URL, 2*time.Second, cacheClient, zerolog.Nop())
}

type fakeCache struct {
	data map[string][]byte
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	if v, ok := f.data[key]; ok {
		return v, nil
	}
	return nil, cache.ErrCacheMiss
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.data[key] = value
	f.sets++
	return nil
}

func (f *fakeCache) Close() error { return nil }

func TestFetchVarietySuggestionsParsesLines(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		geminiReply(t, w, "Fuji Apples\n- Gala Apples\n* Honeycrisp Apples\n\n• Pink Lady Apples\n")
	}, nil)

	suggestions := client.FetchVarietySuggestions(context.Background(), "apples")

	assert.Equal(t, []string{
		"Fuji Apples", "Gala Apples", "Honeycrisp Apples", "Pink Lady Apples",
	}, suggestions)
}

func TestFetchVarietySuggestionsCapped(t *testing.T) {
	var lines []string
	for i := 0; i < 15; i++ {
		lines = append(lines, fmt.Sprintf("Variety %d", i))
	}
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		geminiReply(t, w, strings.Join(lines, "\n"))
	}, nil)

	suggestions := client.FetchVarietySuggestions(context.Background(), "tea")

	assert.Len(t, suggestions, maxVarietySuggestions)
	assert.Equal(t, "Variety 0", suggestions[0])
}

func TestFetchVarietySuggestionsFallbackOnServerError(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}, nil)

	suggestions := client.FetchVarietySuggestions(context.Background(), "apples")

	assert.Equal(t, FallbackVarieties("apples"), suggestions)
}

func TestFetchVarietySuggestionsFallbackOnEmptyReply(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		geminiReply(t, w, "   \n  ")
	}, nil)

	suggestions := client.FetchVarietySuggestions(context.Background(), "milk")

	assert.Equal(t, FallbackVarieties("milk"), suggestions)
}

func TestFetchVarietySuggestionsFallbackWithoutAPIKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(server.Close)
	client := NewGeminiClient("", server.URL, time.Second, nil, zerolog.Nop())

	suggestions := client.FetchVarietySuggestions(context.Background(), "bread")

	assert.Equal(t, FallbackVarieties("bread"), suggestions)
	assert.False(t, called, "no request should leave the process without a key")
}

func TestFetchVarietySuggestionsCache(t *testing.T) {
	fc := newFakeCache()
	requests := 0
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		geminiReply(t, w, "Whole Milk\nOat Milk")
	}, fc)

	first := client.FetchVarietySuggestions(context.Background(), "Milk")
	second := client.FetchVarietySuggestions(context.Background(), "milk")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, requests, "second lookup must be served from cache")
	assert.Equal(t, 1, fc.sets)
	assert.Contains(t, fc.data, "varieties:milk")
}

func TestCorrectTransliteration(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		geminiReply(t, w, `{"correctedText": "चावल हटाओ", "isRemoveCommand": true}`)
	}, nil)

	result := client.CorrectTransliteration(context.Background(), "chawal hatao")

	assert.Equal(t, "चावल हटाओ", result.CorrectedText)
	assert.True(t, result.IsRemoveCommand)
}

func TestCorrectTransliterationFencedReply(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		geminiReply(t, w, "```json\n{\"correctedText\": \"दूध जोड़ो\", \"isRemoveCommand\": false}\n```")
	}, nil)

	result := client.CorrectTransliteration(context.Background(), "doodh jodo")

	assert.Equal(t, "दूध जोड़ो", result.CorrectedText)
	assert.False(t, result.IsRemoveCommand)
}

func TestCorrectTransliterationProseWrappedReply(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		geminiReply(t, w, `Here is the corrected text: {"correctedText": "केला", "isRemoveCommand": false} as requested.`)
	}, nil)

	result := client.CorrectTransliteration(context.Background(), "kela")

	assert.Equal(t, "केला", result.CorrectedText)
}

func TestCorrectTransliterationMalformedReply(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		geminiReply(t, w, "sorry, I cannot help with that")
	}, nil)

	result := client.CorrectTransliteration(context.Background(), "chawal hatao")

	assert.Equal(t, "chawal hatao", result.CorrectedText)
	assert.True(t, result.IsRemoveCommand, "local keyword detection survives a bad reply")
}

func TestCorrectTransliterationServerError(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}, nil)

	result := client.CorrectTransliteration(context.Background(), "doodh jodo")

	assert.Equal(t, "doodh jodo", result.CorrectedText)
	assert.False(t, result.IsRemoveCommand)
}

func TestCorrectTransliterationLocalFlagWins(t *testing.T) {
	// The service says this is not a removal; the keyword scan of the
	// original input overrides it.
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		geminiReply(t, w, `{"correctedText": "आटा हटाओ", "isRemoveCommand": false}`)
	}, nil)

	result := client.CorrectTransliteration(context.Background(), "aata hatao")

	assert.Equal(t, "आटा हटाओ", result.CorrectedText)
	assert.True(t, result.IsRemoveCommand)
}

func TestExtractItemName(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		geminiReply(t, w, "\"आटा\"\nsome trailing explanation")
	}, nil)

	name, err := client.ExtractItemName(context.Background(), "आटा हटाओ")

	require.NoError(t, err)
	assert.Equal(t, "आटा", name)
}

func TestExtractItemNameFixesMispronunciation(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		geminiReply(t, w, "चवाल")
	}, nil)

	name, err := client.ExtractItemName(context.Background(), "चवाल हटाओ")

	require.NoError(t, err)
	assert.Equal(t, "चावल", name)
}

func TestExtractItemNameSurfacesErrors(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}, nil)

	_, err := client.ExtractItemName(context.Background(), "आटा हटाओ")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGeminiAPIError)
}

func TestExtractItemNameEmptyReply(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		geminiReply(t, w, "\"\"")
	}, nil)

	_, err := client.ExtractItemName(context.Background(), "आटा हटाओ")

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerateContentRequestShape(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, `"toothpaste"`)

		geminiReply(t, w, "Colgate")
	}, nil)

	suggestions := client.FetchVarietySuggestions(context.Background(), "toothpaste")

	assert.Equal(t, []string{"Colgate"}, suggestions)
}
