package llm

// Suggestion is one model-ranked menu item. Fields the model omits stay
// at their zero values — never rejected.
type Suggestion struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Portion  string `json:"portion"`
	Price    int    `json:"price"`
	Reason   string `json:"reason"`
}

// Preferences carries the questionnaire into the prompt builder.
type Preferences struct {
	Peoples int
	Mood    string
	Spice   string
	Avoid   string
	Budget  string
}
