package recommend

import "github.com/hasnainyaqub/Microservice-App/internal/menu"

// --------------------------------------------------
// REQUEST
// --------------------------------------------------

// Question is the caller's questionnaire. Every enum-ish field is free
// text; unrecognized values degrade to a neutral branch instead of
// rejecting the request.
type Question struct {
	Peoples       int    `json:"peoples"`
	Mood          string `json:"mood"`
	SpiceLvl      string `json:"spice_lvl"`
	AvoidAnything string `json:"avoid_anything"`
	Budget        string `json:"budget"`
	MealTime      string `json:"meal_time"`
}

type InputPayload struct {
	Branch   int      `json:"branch"`
	Question Question `json:"question"`
}

// --------------------------------------------------
// WORKING STATE (request-local)
// --------------------------------------------------

type ScoredItem struct {
	menu.Item
	Score int `json:"score"`
}

// --------------------------------------------------
// RESPONSE
// --------------------------------------------------

type DealItem struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Qty        int    `json:"qty"`
	UnitPrice  int    `json:"unit_price"`
	TotalPrice int    `json:"total_price"`
}

type Deal struct {
	DealNumber int        `json:"deal_number"`
	Items      []DealItem `json:"items"`
	TotalCost  int        `json:"total_cost"`
}

type Recommendation struct {
	Branch      int    `json:"branch"`
	Peoples     int    `json:"peoples"`
	Mood        string `json:"mood"`
	MealTime    string `json:"meal_time"`
	BudgetType  string `json:"budget_type"`
	BudgetLimit int    `json:"budget_limit"`
	Deals       []Deal `json:"deals"`
}
