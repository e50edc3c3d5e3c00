package ai

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sashabaranov/go-openai"
)

var (
	// ErrProvider indicates a transport/auth/rate-limit failure from the
	// language-model service, at either call site.
	ErrProvider = errors.New("ai provider request failed")

	// ErrParse indicates the model's text output was not the valid,
	// schema-conforming JSON the analysis instruction demands. The request
	// fails closed: no repair, no retry, no partial result.
	ErrParse = errors.New("ai analysis parse failed")
)

var validate = validator.New()

// Client wraps the OpenAI chat-completion API for the two pipeline call
// sites: transcript analysis and coach-reply generation. Constructed once at
// startup and injected into the orchestrator.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a client using the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		api:   openai.NewClient(apiKey),
		model: openai.GPT4oMini,
	}
}
