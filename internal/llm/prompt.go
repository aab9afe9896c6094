package llm

import (
	"fmt"
	"strings"

	"github.com/hasnainyaqub/Microservice-App/internal/menu"
)

// BuildRecommendPrompt serializes the branch menu, popularity counts, and
// the questionnaire into a prompt that demands strict JSON with exactly
// three suggestions.
func BuildRecommendPrompt(
	branch int,
	items []menu.Item,
	recent menu.Popularity,
	prefs Preferences,
) string {

	menuLines := make([]string, 0, len(items))
	for _, m := range items {
		menuLines = append(menuLines, fmt.Sprintf(
			"%s | %s | %s | price:%d",
			m.Name, m.Category, m.Portion, m.Price,
		))
	}

	recentParts := make([]string, 0, len(recent))
	for name, cnt := range recent {
		recentParts = append(recentParts, fmt.Sprintf("%s:%d", name, cnt))
	}

	return fmt.Sprintf(`You are a restaurant recommendation assistant.

Branch: %d
User preferences:
- people: %d
- mood: %s
- spice: %s
- avoid: %s
- budget: %s

Recent popular items: %s

Menu:
%s

Task:
Return ONLY valid JSON with exactly 3 suggestions:
{
  "branch": %d,
  "suggestions": [
    {
      "name": "<menu item name>",
      "category": "<category>",
      "portion": "<portion>",
      "price": <integer>,
      "reason": "<short reason>"
    }
  ]
}
`,
		branch,
		prefs.Peoples,
		prefs.Mood,
		prefs.Spice,
		prefs.Avoid,
		prefs.Budget,
		strings.Join(recentParts, ", "),
		strings.Join(menuLines, "\n"),
		branch,
	)
}
