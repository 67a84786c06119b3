// Package gemini wraps every interaction with the Gemini generateContent API:
// prompt construction, the HTTP round-trip, and defensive response parsing.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Gemini v1 models endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1/models"
	// DefaultModel is the text model used for recipe generation.
	DefaultModel = "gemini-2.5-flash"

	callTimeout    = 45 * time.Second
	connectTimeout = 15 * time.Second
)

// scanInstruction is the fixed vision-path prompt. The response is plain
// comma-separated text, not JSON.
const scanInstruction = "What food ingredients are in this image? Provide a simple, comma-separated list."

// APIError is the tagged error for everything that goes wrong talking to
// Gemini: missing configuration, transport failures, non-2xx statuses, and
// unparseable envelopes. DebugBody carries the raw provider body for
// diagnostics; it is logged, never shown to end users.
type APIError struct {
	Message   string
	DebugBody string
}

func (e *APIError) Error() string { return e.Message }

// Client talks to the Gemini generateContent endpoint.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewClient creates a Gemini client. An empty apiKey is allowed: calls fail
// fast with an APIError instead of panicking, so a missing key is a handled
// configuration error rather than a startup crash.
func NewClient(apiKey, model, baseURL string) *Client {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: callTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		},
	}
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends a text-only prompt and returns the first candidate's
// text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, []part{{Text: prompt}})
}

// GenerateRecipe builds the prompt for a recipe request and sends it.
func (c *Client) GenerateRecipe(ctx context.Context, request RecipeRequest) (string, error) {
	return c.GenerateText(ctx, request.Prompt())
}

// ScanIngredients sends an image plus the fixed ingredient-listing
// instruction and returns the raw comma-separated text, possibly empty.
func (c *Client) ScanIngredients(ctx context.Context, image []byte, mimeType string) (string, error) {
	parts := []part{
		{InlineData: &inlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
		{Text: scanInstruction},
	}
	return c.generate(ctx, parts)
}

func (c *Client) generate(ctx context.Context, parts []part) (string, error) {
	if c.apiKey == "" {
		return "", &APIError{Message: "Gemini API key is missing. Set GEMINI_API_KEY or GEMINI_API_KEY_FILE."}
	}

	payload, err := json.Marshal(generateRequest{Contents: []content{{Parts: parts}}})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &APIError{Message: "network error talking to Gemini", DebugBody: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APIError{Message: "failed to read Gemini response body", DebugBody: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[gemini] HTTP %d -> %s", resp.StatusCode, string(body))
		return "", &APIError{
			Message:   fmt.Sprintf("Gemini request failed (%d)", resp.StatusCode),
			DebugBody: string(body),
		}
	}

	text, ok := extractText(body)
	if !ok {
		return "", &APIError{Message: "Unable to parse Gemini response", DebugBody: string(body)}
	}
	return text, nil
}

// extractText locates candidates[0].content.parts[0].text in the provider
// envelope. Any absent level or empty array means the envelope is unusable.
func extractText(body []byte) (string, bool) {
	var envelope generateResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", false
	}
	if len(envelope.Candidates) == 0 {
		return "", false
	}
	parts := envelope.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", false
	}
	return parts[0].Text, true
}
