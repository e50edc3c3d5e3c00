package dashboard

// StaticProvider serves the built-in demo fixtures.
type StaticProvider struct {
	relationships []Relationship
}

// NewStaticProvider returns a provider backed by the demo dataset.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{relationships: demoRelationships()}
}

func (p *StaticProvider) Relationships() []Relationship {
	out := make([]Relationship, len(p.relationships))
	copy(out, p.relationships)
	return out
}

func (p *StaticProvider) Relationship(id string) (*Relationship, bool) {
	for i := range p.relationships {
		if p.relationships[i].ID == id {
			r := p.relationships[i]
			return &r, true
		}
	}
	return nil, false
}

func demoRelationships() []Relationship {
	return []Relationship{
		{
			ID:   "1",
			Name: "Sarah Johnson",
			Type: "Friend",
			EmotionalData: []EmotionPoint{
				{Date: "2023-01-01", Sentiment: 0.7, Depth: 3},
				{Date: "2023-01-08", Sentiment: 0.8, Depth: 4},
				{Date: "2023-01-15", Sentiment: 0.6, Depth: 3},
				{Date: "2023-01-22", Sentiment: 0.9, Depth: 5},
				{Date: "2023-01-29", Sentiment: 0.7, Depth: 4},
				{Date: "2023-02-05", Sentiment: 0.8, Depth: 4},
			},
			Themes: []Theme{
				{Theme: "Support", Count: 12, Sentiment: 0.9},
				{Theme: "Shared Activities", Count: 8, Sentiment: 0.8},
				{Theme: "Communication", Count: 6, Sentiment: 0.5},
				{Theme: "Trust", Count: 5, Sentiment: 0.7},
				{Theme: "Boundaries", Count: 3, Sentiment: 0.3},
			},
			Insights: []string{
				"You feel most supported when discussing career challenges",
				"Shared outdoor activities strengthen your connection",
				"Communication tends to be more strained during busy periods",
				"You value their perspective on family matters",
			},
			SuggestedTopics: []string{
				"How do you feel about the balance of support in your relationship?",
				"What new activities would you like to explore together?",
				"How might you improve communication during busy times?",
			},
		},
		{
			ID:   "2",
			Name: "Michael Chen",
			Type: "Partner",
			EmotionalData: []EmotionPoint{
				{Date: "2023-01-01", Sentiment: 0.9, Depth: 5},
				{Date: "2023-01-08", Sentiment: 0.7, Depth: 4},
				{Date: "2023-01-15", Sentiment: 0.8, Depth: 5},
				{Date: "2023-01-22", Sentiment: 0.6, Depth: 3},
				{Date: "2023-01-29", Sentiment: 0.9, Depth: 5},
				{Date: "2023-02-05", Sentiment: 0.8, Depth: 4},
			},
			Themes: []Theme{
				{Theme: "Intimacy", Count: 15, Sentiment: 0.9},
				{Theme: "Future Plans", Count: 10, Sentiment: 0.7},
				{Theme: "Daily Routines", Count: 8, Sentiment: 0.6},
				{Theme: "Conflict Resolution", Count: 6, Sentiment: 0.4},
				{Theme: "Family", Count: 5, Sentiment: 0.8},
			},
			Insights: []string{
				"You feel most connected during quiet evenings together",
				"Discussions about the future bring both excitement and anxiety",
				"Small daily gestures of affection are important to you",
				"You appreciate their patience during disagreements",
			},
			SuggestedTopics: []string{
				"How do you envision your relationship evolving in the next year?",
				"What daily rituals would you like to establish together?",
				"How can you better support each other during stressful times?",
			},
		},
	}
}
