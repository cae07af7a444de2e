package reward

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"lifeos/internal/logger"
)

const model = "gemini-3-flash-preview"

// Fallback strings shown instead of a recommendation. The reward flow never
// surfaces an error; finishing a book always yields something to watch.
const (
	MsgMissingKey   = "API Key is missing. Unable to generate reward."
	MsgEmptyAnswer  = "Could not generate a recommendation at this time."
	MsgServiceError = "An error occurred while communicating with the Oracle. Please try again later."
)

// Recommender produces a movie recommendation for a finished book.
type Recommender interface {
	MovieFor(ctx context.Context, title, author string) string
}

// GeminiRecommender asks Gemini for a movie matched to the book's themes.
type GeminiRecommender struct {
	apiKey string
}

func NewGeminiRecommender(apiKey string) *GeminiRecommender {
	return &GeminiRecommender{apiKey: apiKey}
}

// MovieFor returns the recommendation text, or a fixed fallback when the key
// is missing or the API call fails.
func (r *GeminiRecommender) MovieFor(ctx context.Context, title, author string) string {
	if r.apiKey == "" {
		return MsgMissingKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: r.apiKey,
	})
	if err != nil {
		logger.Error("failed to create genai client", "error", err)
		return MsgServiceError
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt(title, author), genai.RoleUser),
	}
	resp, err := client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		logger.Error("gemini request failed", "error", err)
		return MsgServiceError
	}

	if text := resp.Text(); text != "" {
		return text
	}
	return MsgEmptyAnswer
}

func prompt(title, author string) string {
	return fmt.Sprintf(`I just finished reading the book %q by %s.
Based on the intellectual depth, themes, and complexity of this book, recommend ONE specific, eye-opening movie.

The movie should be:
1. Intellectually stimulating (like Fight Club, The Matrix, Inception, Primer, etc.).
2. Thematically resonant with the book I read.

Provide the response in this format:
"**[Movie Title]**

[A short, compelling paragraph explaining why this movie is the perfect visual successor to the book, highlighting the shared philosophy or mind-bending nature.]"`, title, author)
}
