package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

const maxSuggestions = 3

// extractJSON pulls the outermost JSON object out of the model output,
// which providers occasionally wrap in markdown fences or chatter.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}

// ParseSuggestions decodes the model's answer into at most three
// suggestions. Missing fields default to zero values; anything that is
// not the expected JSON shape is ErrBadResponse.
func ParseSuggestions(raw string) ([]Suggestion, error) {
	jsonText := extractJSON(raw)
	if jsonText == "" {
		return nil, fmt.Errorf("%w: no JSON object in output", ErrBadResponse)
	}

	var parsed struct {
		Suggestions []Suggestion `json:"suggestions"`
	}

	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	suggestions := parsed.Suggestions
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	if suggestions == nil {
		suggestions = []Suggestion{}
	}

	return suggestions, nil
}
