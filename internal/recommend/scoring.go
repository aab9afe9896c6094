package recommend

import (
	"sort"
	"strings"

	"github.com/hasnainyaqub/Microservice-App/internal/menu"
)

// --------------------------------------------------
// KEYWORD MATCHERS
// --------------------------------------------------

func keywordMatch(name string, keywords []string) int {
	lower := strings.ToLower(name)
	for _, w := range keywords {
		if strings.Contains(lower, strings.ToLower(w)) {
			return 1
		}
	}
	return 0
}

func (c Config) moodMatch(name, mood string) int {
	return keywordMatch(name, c.MoodKeywords[mood])
}

func (c Config) spiceMatch(name, spice string) int {
	return keywordMatch(name, c.SpiceKeywords[strings.ToLower(spice)])
}

func (c Config) budgetMatch(price int, tier string) int {
	ceiling, ok := c.BudgetCeilings[strings.ToLower(tier)]
	if !ok {
		return 0
	}
	if ceiling == 0 || price <= ceiling {
		return 1
	}
	return 0
}

// --------------------------------------------------
// SCORING
// --------------------------------------------------

// Score computes the weighted desirability of a single item. Pure and
// side-effect free; always non-negative.
func (c Config) Score(item menu.Item, q Question, popularity menu.Popularity) int {
	score := c.moodMatch(item.Name, q.Mood)*c.Weights.Mood +
		c.spiceMatch(item.Name, q.SpiceLvl)*c.Weights.Spice +
		popularity[item.Name]*c.Weights.Popularity

	if c.Weights.Budget > 0 {
		score += c.budgetMatch(item.Price, q.Budget) * c.Weights.Budget
	}

	return score
}

// Excluded reports whether the avoid filter drops an item. An empty
// avoid string excludes nothing (a bare substring check would otherwise
// match every name). Plural terms also match their singular stem, so
// "nuts" catches "Peanut Satay".
func Excluded(item menu.Item, avoid string) bool {
	term := strings.ToLower(strings.TrimSpace(avoid))
	if term == "" {
		return false
	}

	name := strings.ToLower(item.Name)
	if strings.Contains(name, term) {
		return true
	}

	stem := strings.TrimSuffix(term, "s")
	if stem != term && len(stem) >= 3 {
		return strings.Contains(name, stem)
	}

	return false
}

// FilterAndScore applies the avoid filter, scores what survives, and
// returns the list sorted descending by score. The sort is stable, so
// ties keep original menu order.
func (c Config) FilterAndScore(
	items []menu.Item,
	q Question,
	popularity menu.Popularity,
) []ScoredItem {

	scored := []ScoredItem{}

	for _, item := range items {
		if Excluded(item, q.AvoidAnything) {
			continue
		}

		scored = append(scored, ScoredItem{
			Item:  item,
			Score: c.Score(item, q, popularity),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
