package model

// SentimentAnalysis is the structured result the language model is asked to
// return for a transcript. The model output is untrusted: the validate tags
// are enforced after parsing and any violation fails the whole request.
type SentimentAnalysis struct {
	Sentiment  string   `json:"sentiment" validate:"required,oneof=positive negative neutral"`
	Confidence float64  `json:"confidence" validate:"gte=0,lte=1"`
	KeyThemes  []string `json:"keyThemes" validate:"required"`
}

// ConversationRecord is one completed exchange, appended to the conversation
// log. Immutable once written; one record per completed request.
type ConversationRecord struct {
	Timestamp  string            `json:"timestamp"` // RFC3339
	Transcript string            `json:"transcript"`
	Analysis   SentimentAnalysis `json:"analysis"`
	AIResponse string            `json:"aiResponse"`
}

// Message is the presentation shape the conversation view renders. Not
// authoritative state; derived from ConversationRecord on read.
type Message struct {
	Role      string `json:"role"` // "user" or "ai"
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Sentiment string `json:"sentiment,omitempty"`
}

// Messages expands a logged record into the user/ai message pair the
// conversation thread displays.
func (r ConversationRecord) Messages() []Message {
	return []Message{
		{
			Role:      "user",
			Content:   r.Transcript,
			Timestamp: r.Timestamp,
			Sentiment: r.Analysis.Sentiment,
		},
		{
			Role:      "ai",
			Content:   r.AIResponse,
			Timestamp: r.Timestamp,
		},
	}
}
