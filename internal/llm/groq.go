package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultGroqURL = "https://api.groq.com/openai/v1/chat/completions"

// GroqClient talks to Groq's OpenAI-compatible chat completions API.
// One attempt per request, bounded by the client timeout and the
// caller's context.
type GroqClient struct {
	apiKey string
	model  string
	apiURL string
	http   *http.Client
}

func NewGroqClient() *GroqClient {
	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = "llama-3.1-8b-instant"
	}

	apiURL := os.Getenv("GROQ_API_URL")
	if apiURL == "" {
		apiURL = defaultGroqURL
	}

	return &GroqClient{
		apiKey: os.Getenv("GROQ_API_KEY"),
		model:  model,
		apiURL: apiURL,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("%w: missing GROQ_API_KEY", ErrUpstream)
	}

	payload := map[string]any{
		"model": g.model,
		"messages": []map[string]string{
			{"role": "system", "content": "JSON only"},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.2,
		"max_tokens":  512,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.apiURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: groq api error: %s", ErrUpstream, string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty groq response", ErrUpstream)
	}

	return result.Choices[0].Message.Content, nil
}
