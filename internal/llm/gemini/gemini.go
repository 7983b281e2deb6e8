// Package gemini implements llm.Client on top of the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-2.0-flash"

type Client struct {
	client      *genai.Client
	model       string
	temperature float32
}

func New(ctx context.Context, apiKey, model string, temperature float64) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client:      client,
		model:       model,
		temperature: float32(temperature),
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) Model() string { return c.model }

func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.newModel(system).GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	return responseText(resp)
}

// newModel builds a fresh GenerativeModel per call so concurrent requests
// never share a mutable SystemInstruction.
func (c *Client) newModel(system string) *genai.GenerativeModel {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}
	return model
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("Gemini API error: no candidates in response")
	}
	return extractText(resp), nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
