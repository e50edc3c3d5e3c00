// Package dashboard supplies the relationship-analytics data the browser
// dashboard renders. The data is demo fixtures, but it sits behind a
// Provider interface so a real analytics source can replace it without
// touching the HTTP layer.
package dashboard

// EmotionPoint is one sample of a relationship's emotional trend.
type EmotionPoint struct {
	Date      string  `json:"date"`
	Sentiment float64 `json:"sentiment"`
	Depth     int     `json:"depth"`
}

// Theme aggregates how often a conversation theme appears and how it feels.
type Theme struct {
	Theme     string  `json:"theme"`
	Count     int     `json:"count"`
	Sentiment float64 `json:"sentiment"`
}

// Relationship is the full dashboard payload for one tracked relationship.
type Relationship struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	EmotionalData   []EmotionPoint `json:"emotionalData"`
	Themes          []Theme        `json:"themes"`
	Insights        []string       `json:"insights"`
	SuggestedTopics []string       `json:"suggestedTopics"`
}

// Summary carries the aggregates the dashboard header shows.
type Summary struct {
	AverageSentiment float64 `json:"averageSentiment"`
	AverageDepth     float64 `json:"averageDepth"`
}

// Provider serves relationship dashboard data.
type Provider interface {
	// Relationships lists all tracked relationships.
	Relationships() []Relationship

	// Relationship returns the dashboard payload for one relationship.
	Relationship(id string) (*Relationship, bool)
}

// Summarize computes the averages over a relationship's emotional data.
func Summarize(r *Relationship) Summary {
	if len(r.EmotionalData) == 0 {
		return Summary{}
	}
	var sentiment, depth float64
	for _, p := range r.EmotionalData {
		sentiment += p.Sentiment
		depth += float64(p.Depth)
	}
	n := float64(len(r.EmotionalData))
	return Summary{
		AverageSentiment: sentiment / n,
		AverageDepth:     depth / n,
	}
}
