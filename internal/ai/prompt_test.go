package ai

import (
	"strings"
	"testing"

	"pulse/internal/model"
)

func TestBuildAnalysisPrompt(t *testing.T) {
	system, user := BuildAnalysisPrompt("I felt heard today.")

	if user != "I felt heard today." {
		t.Errorf("transcript must be the user message verbatim, got %q", user)
	}
	for _, want := range []string{"sentiment", "confidence", "keyThemes", "JSON"} {
		if !strings.Contains(system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestBuildCoachPrompt_EmbedsAnalysis(t *testing.T) {
	prompt := BuildCoachPrompt("We argued again.", &model.SentimentAnalysis{
		Sentiment:  "negative",
		Confidence: 0.7,
		KeyThemes:  []string{"conflict", "communication"},
	})

	for _, want := range []string{
		"We argued again.",
		"negative",
		"0.70",
		"conflict, communication",
		"under 3 sentences",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("coach prompt missing %q:\n%s", want, prompt)
		}
	}
}
