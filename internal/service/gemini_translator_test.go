package service

import (
	"context"
	"strings"
	"testing"

	apperrors "pdf-translator/pkg/errors"

	"github.com/google/generative-ai-go/genai"
)

type emptyKeyConfig struct {
	mockConfig
}

func (c *emptyKeyConfig) GetAPIKey() string { return "   " }

func TestNewGeminiTranslator_MissingCredential(t *testing.T) {
	_, err := NewGeminiTranslator(context.Background(), &emptyKeyConfig{}, newMockLogger())
	if err == nil {
		t.Fatal("expected authentication error for missing API key")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeAuthentication) {
		t.Fatalf("expected authentication error before any network call, got %v", err)
	}
}

func TestTranslationPrompt_ArabicVariant(t *testing.T) {
	prompt := translationPrompt("Arabic", "Italian")
	if !strings.Contains(prompt, "Islamic texts") {
		t.Fatal("expected Arabic prompt to mention Islamic texts")
	}
	if !strings.Contains(prompt, "Arabic to Italian") {
		t.Fatalf("expected language pair in prompt, got: %s", prompt[:80])
	}
}

func TestTranslationPrompt_GenericVariant(t *testing.T) {
	prompt := translationPrompt("English", "French")
	if strings.Contains(prompt, "Islamic") {
		t.Fatal("generic prompt must not carry the Arabic-specific guidance")
	}
	if !strings.Contains(prompt, "English to French") {
		t.Fatal("expected language pair in generic prompt")
	}
}

func textResponse(s string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(s)}}},
		},
	}
}

func TestResponseText_StripsMarkdownFences(t *testing.T) {
	got := responseText(textResponse("```markdown\nciao mondo\n```"))
	if got != "ciao mondo" {
		t.Fatalf("expected fences stripped, got %q", got)
	}

	got = responseText(textResponse("ciao"))
	if got != "ciao" {
		t.Fatalf("expected plain text untouched, got %q", got)
	}
}

func TestResponseText_ConcatenatesParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("ciao "), genai.Text("mondo")}}},
		},
	}
	if got := responseText(resp); got != "ciao mondo" {
		t.Fatalf("expected concatenated parts, got %q", got)
	}
}

func TestResponseText_EmptyResponse(t *testing.T) {
	if got := responseText(nil); got != "" {
		t.Fatalf("expected empty string for nil response, got %q", got)
	}
	if got := responseText(&genai.GenerateContentResponse{}); got != "" {
		t.Fatalf("expected empty string for no candidates, got %q", got)
	}
}
