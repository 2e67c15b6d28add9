// Package llm is the client for the hosted LLM behind ZenithPM's three
// prompt flows. The endpoint speaks the OpenAI chat-completions format.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// maxResponseSize limits the LLM response body to prevent memory exhaustion.
const maxResponseSize = 4 * 1024 * 1024

type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(baseURL, apiKey, model string, breaker *gobreaker.CircuitBreaker) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		breaker:    breaker,
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// Complete šalje jedan zahtev i vraća sadržaj prvog izbora. Nema ponovnih
// pokušaja; breaker štiti od uzastopnih padova endpointa.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build LLM request: %v", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/chat/completions"

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("LLM request failed: %v", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		if err != nil {
			return nil, fmt.Errorf("failed to read LLM response: %v", err)
		}

		if resp.StatusCode != http.StatusOK {
			preview := string(respBody)
			if len(preview) > 200 {
				preview = preview[:200] + "..."
			}
			return nil, fmt.Errorf("LLM API error (status %d): %s", resp.StatusCode, preview)
		}

		var parsed chatResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return nil, fmt.Errorf("failed to decode LLM response: %v", err)
		}
		if len(parsed.Choices) == 0 {
			return nil, fmt.Errorf("LLM response contained no choices")
		}
		return parsed.Choices[0].Message.Content, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}
