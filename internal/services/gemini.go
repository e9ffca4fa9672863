package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/foxxcyber/voice-cart/internal/cache"
)

const (
	defaultGeminiAPIURL  = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"
	defaultGeminiTimeout = 10 * time.Second
	maxVarietySuggestions = 10
	varietyCacheTTL       = 24 * time.Hour
)

var (
	ErrMissingAPIKey  = errors.New("missing gemini api key")
	ErrGeminiAPIError = errors.New("gemini api error")
	ErrEmptyResponse  = errors.New("empty gemini response")
)

// TransliterationResult is the structured reply of a Hinglish correction
// request. The JSON tags match the schema the prompt asks the model for.
type TransliterationResult struct {
	CorrectedText   string `json:"correctedText"`
	IsRemoveCommand bool   `json:"isRemoveCommand"`
}

// GeminiClient talks to the generative-language endpoint. The suggestion and
// transliteration operations never surface an error: every failure degrades
// to a deterministic local fallback, so callers cannot tell a live reply from
// a fallback one.
type GeminiClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
	cache      cache.Client
	logger     zerolog.Logger
}

// NewGeminiClient creates a client. cacheClient may be nil, which disables
// suggestion caching.
func NewGeminiClient(apiKey, apiURL string, timeout time.Duration, cacheClient cache.Client, logger zerolog.Logger) *GeminiClient {
	if apiURL == "" {
		apiURL = defaultGeminiAPIURL
	}
	if timeout <= 0 {
		timeout = defaultGeminiTimeout
	}
	return &GeminiClient{
		apiKey: apiKey,
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache:  cacheClient,
		logger: logger.With().Str("component", "gemini").Logger(),
	}
}

// Gemini API wire structures
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generateContent sends one prompt and returns the first candidate's text.
func (c *GeminiClient) generateContent(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"?key="+c.apiKey, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d - %s", ErrGeminiAPIError, resp.StatusCode, string(body))
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	text := geminiResp.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// FetchVarietySuggestions returns popular varieties, brands or types of an
// item. Failures of any kind fall back to the local variety tables; the
// result is never empty and the call never fails.
func (c *GeminiClient) FetchVarietySuggestions(ctx context.Context, itemName string) []string {
	cacheKey := "varieties:" + strings.ToLower(strings.TrimSpace(itemName))

	if c.cache != nil {
		if data, err := c.cache.Get(ctx, cacheKey); err == nil {
			var cached []string
			if json.Unmarshal(data, &cached) == nil && len(cached) > 0 {
				return cached
			}
		}
	}

	prompt := fmt.Sprintf(`Generate 8-10 popular varieties, brands, or types of "%s" for shopping.
Include different brands, flavors, sizes, or types that people commonly buy.
Return only the names, one per line, without numbers or bullet points.
Examples:
- For "toothpaste": Colgate, Crest, Sensodyne, Oral-B, etc.
- For "shoes": Nike, Adidas, Converse, Vans, etc.
- For "meat": Beef, Pork, Lamb, Chicken, etc.
- For "lentils": Red Lentils, Green Lentils, Black Lentils, etc.`, itemName)

	raw, err := c.generateContent(ctx, prompt)
	if err != nil {
		c.logger.Warn().Err(err).Str("item", itemName).Msg("variety suggestion call failed, using fallback")
		return FallbackVarieties(itemName)
	}

	var suggestions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• "))
		if line == "" {
			continue
		}
		suggestions = append(suggestions, line)
		if len(suggestions) == maxVarietySuggestions {
			break
		}
	}

	if len(suggestions) == 0 {
		return FallbackVarieties(itemName)
	}

	if c.cache != nil {
		if data, err := json.Marshal(suggestions); err == nil {
			if err := c.cache.Set(ctx, cacheKey, data, varietyCacheTTL); err != nil {
				c.logger.Warn().Err(err).Msg("failed to cache variety suggestions")
			}
		}
	}

	return suggestions
}

// CorrectTransliteration asks the service to convert Latin-script Hindi to
// Devanagari and flag removal intent. A locally detected removal keyword
// always wins over the service's flag; on any failure the original text is
// returned with the local flag.
func (c *GeminiClient) CorrectTransliteration(ctx context.Context, text string) TransliterationResult {
	localRemove := containsLatinRemoveKeyword(text)

	prompt := fmt.Sprintf(`Correct this Hinglish (Hindi written in English letters) to proper Hindi text.
Return a JSON object with two fields: "correctedText" and "isRemoveCommand".
Examples:
- Input: "doodh" -> Output: {"correctedText": "दूध", "isRemoveCommand": false}
- Input: "kela" -> Output: {"correctedText": "केला", "isRemoveCommand": false}
- Input: "aata hatao" -> Output: {"correctedText": "आटा हटाओ", "isRemoveCommand": true}
- Input: "chawal hatao" -> Output: {"correctedText": "चावल हटाओ", "isRemoveCommand": true}
- Input: "mujhe panch seb chahiye" -> Output: {"correctedText": "मुझे पांच सेब चाहिए", "isRemoveCommand": false}

Input: "%s"
Output:`, text)

	fallback := TransliterationResult{CorrectedText: text, IsRemoveCommand: localRemove}

	raw, err := c.generateContent(ctx, prompt)
	if err != nil {
		c.logger.Warn().Err(err).Msg("transliteration call failed, using original text")
		return fallback
	}

	result, err := parseTransliteration(raw)
	if err != nil {
		c.logger.Warn().Err(err).Str("response", raw).Msg("unparseable transliteration reply, using original text")
		return fallback
	}

	if result.CorrectedText == "" {
		result.CorrectedText = text
	}
	if localRemove {
		// Local keyword detection is fail-safe toward removal: it can
		// assert the flag but never retract it.
		result.IsRemoveCommand = true
	}
	return result
}

// parseTransliteration extracts the JSON object from a model reply,
// tolerating markdown code fences and surrounding prose.
func parseTransliteration(raw string) (TransliterationResult, error) {
	content := strings.TrimSpace(raw)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return TransliterationResult{}, fmt.Errorf("no JSON object in reply")
	}

	var result TransliterationResult
	if err := json.Unmarshal([]byte(content[start:end+1]), &result); err != nil {
		return TransliterationResult{}, fmt.Errorf("unmarshaling reply: %w", err)
	}
	return result, nil
}

// ExtractItemName asks the service to pull the item name out of a Hindi
// command. Unlike the other operations this one surfaces its error: the
// caller runs a local suffix-splitting fallback instead.
func (c *GeminiClient) ExtractItemName(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`Extract the item name from this Hindi command. Return only the item name in Hindi.
Examples:
- Input: "आटा हटाओ" -> Output: "आटा"
- Input: "दूध जोड़ो" -> Output: "दूध"
- Input: "मुझे पांच सेब चाहिए" -> Output: "सेब"
- Input: "रोटी हटाओ" -> Output: "रोटी"
- Input: "चवाल हटाओ" -> Output: "चावल"

Input: "%s"
Output:`, text)

	raw, err := c.generateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	name := strings.TrimSpace(raw)
	if idx := strings.IndexByte(name, '\n'); idx >= 0 {
		name = strings.TrimSpace(name[:idx])
	}
	name = strings.Trim(name, `"'`)
	if name == "" {
		return "", ErrEmptyResponse
	}
	return fixCommonMispronunciations(name), nil
}

// fixCommonMispronunciations normalizes known speech-to-text slips.
func fixCommonMispronunciations(name string) string {
	if name == "चवाल" {
		return "चावल"
	}
	return name
}
