// Package gemini implements the inference client against the Google
// Generative Language API.
package gemini

import (
	"context"
	"fmt"

	"resty.dev/v3"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client calls the Gemini generateContent endpoint.
type Client struct {
	httpClient *resty.Client
	model      string
}

// NewClient creates a Gemini client for the given API key and model
// (for example "gemini-1.5-flash-latest").
func NewClient(apiKey, model string) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("x-goog-api-key", apiKey)

	return &Client{
		httpClient: client,
		model:      model,
	}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

// GenerateText implements the inference.Client interface. One request,
// no retry: a failed call surfaces to the caller, which owns the
// fallback behavior.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	requestBody := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&generateContentResponse{}).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*generateContentResponse)
	if responseBody == nil || len(responseBody.Candidates) == 0 {
		return "", fmt.Errorf("empty response body or candidates: %s", response.String())
	}

	parts := responseBody.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}

	return parts[0].Text, nil
}
