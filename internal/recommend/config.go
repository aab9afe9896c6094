package recommend

import "os"

// Mode selects how the endpoint ranks: local scoring + deal building,
// or delegation to the external model.
type Mode string

const (
	ModeLocal Mode = "local"
	ModeLLM   Mode = "llm"
)

// Weights are the scoring coefficients. Budget is zero in the deal
// profile; the simple top-3 profile sets it to 3.
type Weights struct {
	Mood       int
	Spice      int
	Popularity int
	Budget     int
}

// Config collapses the historical router variants into one parameterized
// scorer / deal-builder pair, selected once at process start.
type Config struct {
	Mode    Mode
	Weights Weights

	// MoodKeywords maps a mood tag to name keywords. A mood missing
	// here contributes nothing.
	MoodKeywords map[string][]string

	// SpiceKeywords maps a spice level to name keywords.
	SpiceKeywords map[string][]string

	// BudgetCeilings gates the budget score component: an item fits a
	// tier when price <= ceiling. A zero ceiling means no limit
	// (comfortable). Only consulted when Weights.Budget > 0.
	BudgetCeilings map[string]int

	// DefaultPriority is the category walk order when no meal time is
	// given; MealPriority overrides it per meal time.
	DefaultPriority []string
	MealPriority    map[string][]string

	// RotationOffsets produce the numbered alternative deals.
	RotationOffsets []int

	PopularityWindowDays int
}

func DefaultConfig() Config {
	return Config{
		Mode: ModeLocal,
		Weights: Weights{
			Mood:       2,
			Spice:      3,
			Popularity: 1,
			Budget:     0,
		},
		MoodKeywords: map[string][]string{
			"spicy_craving":  {"spicy", "hot"},
			"cheesy_mood":    {"cheese", "cheesy"},
			"sweet_craving":  {"sweet", "dessert", "cake", "brownie"},
			"healthy_choice": {"salad", "grill", "low fat"},
			"heavy_meal":     {"karahi", "biryani", "handi", "qorma"},
			"light_meal":     {"soup", "salad", "fries"},
		},
		SpiceKeywords: map[string][]string{
			"low":    {"mild", "light"},
			"medium": {"regular", "medium"},
			"high":   {"hot", "spicy"},
		},
		BudgetCeilings: map[string]int{
			"tight":       500,
			"medium":      1200,
			"comfortable": 0,
		},
		DefaultPriority: []string{
			"Pizza",
			"Burger",
			"Roll",
			"Rice",
			"Karahi",
			"BBQ",
			"Appetizer",
			"Fries",
			"Drink",
			"Dessert",
		},
		MealPriority: map[string][]string{
			"breakfast": {"Sandwich", "Omelette", "Paratha", "Tea", "Coffee", "Dessert"},
			"lunch":     {"Rice", "Karahi", "BBQ", "Curry", "Appetizer", "Drink"},
			"dinner":    {"Pizza", "Burger", "Roll", "Karahi", "BBQ", "Appetizer", "Drink", "Dessert"},
		},
		RotationOffsets:      []int{0, 2, 4},
		PopularityWindowDays: 30,
	}
}

// ConfigFromEnv builds the deployment config: RECOMMEND_MODE picks the
// ranking variant, SCORING_PROFILE=simple turns the budget score
// component on, everything else stays at the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if os.Getenv("RECOMMEND_MODE") == string(ModeLLM) {
		cfg.Mode = ModeLLM
	}

	if os.Getenv("SCORING_PROFILE") == "simple" {
		cfg.Weights.Budget = 3
	}

	return cfg
}

// CategoryPriority resolves the walk order for a meal time, falling back
// to the default list for unknown or empty values.
func (c Config) CategoryPriority(mealTime string) []string {
	if p, ok := c.MealPriority[mealTime]; ok {
		return p
	}
	return c.DefaultPriority
}
