package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements NarrativeProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Itinerary text should vary between runs but keep a parseable shape.
	model.SetTemperature(0.7)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GenerateDays runs one generation round-trip and parses the day array.
func (p *GeminiProvider) GenerateDays(ctx context.Context, prompt string) ([]GeneratedDay, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	return ParseDays(responseText.String())
}

// ParseDays decodes a model response into the day array. Accepts either a
// bare JSON array or an object wrapping it under "days" or "itinerary",
// since models drift between the two shapes.
func ParseDays(raw string) ([]GeneratedDay, error) {
	cleaned := cleanJSONString(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty response")
	}

	var days []GeneratedDay
	if err := json.Unmarshal([]byte(cleaned), &days); err == nil {
		return days, nil
	}

	var wrapped struct {
		Days      []GeneratedDay `json:"days"`
		Itinerary []GeneratedDay `json:"itinerary"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleaned)
	}
	if len(wrapped.Days) > 0 {
		return wrapped.Days, nil
	}
	if len(wrapped.Itinerary) > 0 {
		return wrapped.Itinerary, nil
	}
	return nil, fmt.Errorf("response contained no day entries")
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
