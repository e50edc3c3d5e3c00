package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"

	"pulse/internal/model"
)

// AnalyzeTranscript submits the transcript with the fixed analysis
// instruction and parses the model's text output into a SentimentAnalysis.
// The output is treated as an untrusted boundary: it is schema-validated
// after parsing and any violation fails the request.
func (c *Client) AnalyzeTranscript(ctx context.Context, transcript string) (*model.SentimentAnalysis, error) {
	systemPrompt, userPrompt := BuildAnalysisPrompt(transcript)

	log.Printf("[Analysis] Calling OpenAI API with model: %s (transcript length: %d)", c.model, len(transcript))

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		Temperature: 0.3, // Low temperature for factual output
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		log.Printf("[Analysis] OpenAI API error: %v", err)
		return nil, fmt.Errorf("%w: analysis: %v", ErrProvider, err)
	}

	log.Printf("[Analysis] Usage - Prompt tokens: %d, Completion tokens: %d, Total tokens: %d",
		resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: analysis: no choices returned", ErrProvider)
	}

	content := resp.Choices[0].Message.Content
	log.Printf("[Analysis] Raw response (%d chars): %s", len(content), truncateString(content, 500))

	result, err := parseAnalysis(content)
	if err != nil {
		log.Printf("[Analysis] %v", err)
		return nil, err
	}

	log.Printf("[Analysis] Parsed: sentiment=%s, confidence=%.2f, themes=%v",
		result.Sentiment, result.Confidence, result.KeyThemes)

	return result, nil
}

// parseAnalysis decodes and validates the model output. Sentiment case is
// normalized before validation; everything else must already conform.
func parseAnalysis(content string) (*model.SentimentAnalysis, error) {
	var result model.SentimentAnalysis
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		// Models occasionally wrap the object in a markdown code fence.
		extracted := extractJSONFromMarkdown(content)
		if err := json.Unmarshal([]byte(extracted), &result); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}

	result.Sentiment = strings.ToLower(strings.TrimSpace(result.Sentiment))

	if err := validate.Struct(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return &result, nil
}

// extractJSONFromMarkdown extracts JSON from markdown code blocks
func extractJSONFromMarkdown(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}

	return strings.TrimSpace(content)
}

// truncateString truncates string to max length
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
