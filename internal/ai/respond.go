package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/sashabaranov/go-openai"

	"pulse/internal/model"
)

// GenerateResponse issues the second chat-completion call: an empathetic
// coach reply to the reflection, informed by the detected analysis. The
// model's text is returned verbatim.
func (c *Client) GenerateResponse(ctx context.Context, transcript string, analysis *model.SentimentAnalysis) (string, error) {
	prompt := BuildCoachPrompt(transcript, analysis)

	log.Printf("[Response] Calling OpenAI API with model: %s", c.model)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: prompt,
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("[Response] OpenAI API error: %v", err)
		return "", fmt.Errorf("%w: response generation: %v", ErrProvider, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response generation: no choices returned", ErrProvider)
	}

	reply := resp.Choices[0].Message.Content
	log.Printf("[Response] Generated reply (%d chars)", len(reply))

	return reply, nil
}
