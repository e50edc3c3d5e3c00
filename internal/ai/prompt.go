package ai

import (
	"fmt"
	"strings"

	"pulse/internal/model"
)

// BuildAnalysisPrompt builds the fixed instruction for sentiment/theme
// analysis. The user message is the transcript verbatim.
func BuildAnalysisPrompt(transcript string) (string, string) {
	systemPrompt := `Analyze conversation for:
1. Overall sentiment (positive/negative/neutral)
2. Confidence score (0-1)
3. Key relationship themes
Return JSON format only, with exactly these fields:
{"sentiment": "positive", "confidence": 0.8, "keyThemes": ["theme 1", "theme 2"]}`

	return systemPrompt, transcript
}

// BuildCoachPrompt builds the fixed relationship-coach instruction embedding
// the detected analysis. The three-sentence cap is advisory prompt text; the
// reply is returned verbatim without server-side length enforcement.
func BuildCoachPrompt(transcript string, analysis *model.SentimentAnalysis) string {
	return fmt.Sprintf(`You're a relationship coach. Respond empathetically to this reflection: %s
Detected sentiment: %s (%.2f)
Key themes: %s
Keep response under 3 sentences.`,
		transcript, analysis.Sentiment, analysis.Confidence, strings.Join(analysis.KeyThemes, ", "))
}
