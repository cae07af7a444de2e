package reward

import (
	"context"
	"strings"
	"testing"
)

func TestMovieForWithoutKey(t *testing.T) {
	r := NewGeminiRecommender("")
	if got := r.MovieFor(context.Background(), "Dune", "Frank Herbert"); got != MsgMissingKey {
		t.Errorf("MovieFor() = %q, want missing-key fallback", got)
	}
}

func TestPrompt(t *testing.T) {
	p := prompt("Dune", "Frank Herbert")
	if !strings.Contains(p, `"Dune"`) || !strings.Contains(p, "Frank Herbert") {
		t.Errorf("prompt missing book details: %q", p)
	}
	if !strings.Contains(p, "ONE specific, eye-opening movie") {
		t.Errorf("prompt lost its instruction: %q", p)
	}
}
