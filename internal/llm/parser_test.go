package llm

import (
	"errors"
	"testing"
)

func TestParseSuggestions_PlainJSON(t *testing.T) {
	raw := `{"branch": 1, "suggestions": [
		{"name": "Margherita Pizza", "category": "Pizza", "portion": "Medium", "price": 500, "reason": "Popular choice"}
	]}`

	suggestions, err := ParseSuggestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}
	if suggestions[0].Name != "Margherita Pizza" || suggestions[0].Price != 500 {
		t.Errorf("fields lost: %+v", suggestions[0])
	}
}

func TestParseSuggestions_StripsMarkdownFence(t *testing.T) {
	raw := "```json\n{\"suggestions\": [{\"name\": \"Veggie Burger\"}]}\n```"

	suggestions, err := ParseSuggestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(suggestions) != 1 || suggestions[0].Name != "Veggie Burger" {
		t.Errorf("expected fenced JSON to parse, got %+v", suggestions)
	}
}

func TestParseSuggestions_TruncatesToThree(t *testing.T) {
	raw := `{"suggestions": [
		{"name": "A"}, {"name": "B"}, {"name": "C"}, {"name": "D"}, {"name": "E"}
	]}`

	suggestions, err := ParseSuggestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(suggestions) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(suggestions))
	}
}

func TestParseSuggestions_DefaultsMissingFields(t *testing.T) {
	raw := `{"suggestions": [{"name": "Caesar Salad"}]}`

	suggestions, err := ParseSuggestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := suggestions[0]
	if s.Category != "" || s.Portion != "" || s.Price != 0 || s.Reason != "" {
		t.Errorf("missing fields must default to zero values: %+v", s)
	}
}

func TestParseSuggestions_NoSuggestionsKey(t *testing.T) {
	suggestions, err := ParseSuggestions(`{"branch": 1}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if suggestions == nil || len(suggestions) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", suggestions)
	}
}

func TestParseSuggestions_NotJSON(t *testing.T) {
	_, err := ParseSuggestions("sorry, I cannot help with that")
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse, got %v", err)
	}
}

func TestParseSuggestions_MalformedJSON(t *testing.T) {
	_, err := ParseSuggestions(`{"suggestions": [{"name": }]}`)
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse, got %v", err)
	}
}
