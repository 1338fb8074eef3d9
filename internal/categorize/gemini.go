package categorize

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/dvloznov/budgetmentor/internal/model"
)

// DefaultModelName is the Gemini model used for category suggestions.
const DefaultModelName = "gemini-2.0-flash"

// GeminiSuggester asks Gemini to pick a category for a description. Answers
// outside the fixed taxonomy fall back to the keyword suggester.
type GeminiSuggester struct {
	client   *genai.Client
	fallback Suggester
}

// NewGeminiSuggester creates a Gemini-backed suggester. The API key is read
// from the environment by the genai client.
func NewGeminiSuggester(ctx context.Context) (*GeminiSuggester, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("NewGeminiSuggester: create genai client: %w", err)
	}
	return &GeminiSuggester{
		client:   client,
		fallback: NewKeywordSuggester(),
	}, nil
}

// Suggest implements Suggester.
func (s *GeminiSuggester) Suggest(ctx context.Context, description string) (string, error) {
	prompt :=
		"You are a transaction categorizer for a personal finance app.\n\n" +
			"Task:\n" +
			"- Categorize the transaction description below.\n" +
			"- Answer with EXACTLY one category name from this list, nothing else:\n" +
			"  " + strings.Join(model.Categories, ", ") + "\n\n" +
			"Do NOT wrap the response in code fences.\n" +
			"Do NOT add punctuation or explanation.\n\n" +
			"Description: " + description + "\n"

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, DefaultModelName, contents, nil)
	if err != nil {
		return "", fmt.Errorf("Suggest: generate content: %w", err)
	}

	answer := cleanModelAnswer(resp.Text())
	if model.ValidCategory(answer) {
		return answer, nil
	}

	// The model ignored the instructions; fall back to keywords.
	return s.fallback.Suggest(ctx, description)
}

func cleanModelAnswer(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```...``` wrappers if the model ignored instructions.
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}

	s = strings.Trim(strings.TrimSpace(s), `"'.`)

	// Keep the first line only.
	if idx := strings.Index(s, "\n"); idx != -1 {
		s = strings.TrimSpace(s[:idx])
	}
	return s
}
