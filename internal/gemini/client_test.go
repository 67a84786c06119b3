package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelope(text string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	})
	return string(body)
}

func TestGenerateTextMissingAPIKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient("", "gemini-2.5-flash", server.URL)
	_, err := client.GenerateText(context.Background(), "hello")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "API key is missing")
	assert.False(t, called, "no request should leave the process without a key")
}

func TestGenerateTextSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		contents := req["contents"].([]interface{})
		require.Len(t, contents, 1)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(envelope("a recipe")))
	}))
	defer server.Close()

	client := NewClient("test-key", "", server.URL)
	text, err := client.GenerateText(context.Background(), "make food")
	require.NoError(t, err)
	assert.Equal(t, "a recipe", text)
}

func TestGenerateTextNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "quota exceeded"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "", server.URL)
	_, err := client.GenerateText(context.Background(), "make food")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "429")
	assert.Contains(t, apiErr.DebugBody, "quota exceeded")
}

func TestGenerateTextUnusableEnvelope(t *testing.T) {
	cases := []string{
		`{}`,
		`{"candidates": []}`,
		`{"candidates": [{"content": {"parts": []}}]}`,
		`not json at all`,
	}
	for _, body := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		client := NewClient("test-key", "", server.URL)
		_, err := client.GenerateText(context.Background(), "make food")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr, "body %q", body)
		assert.Contains(t, apiErr.Message, "Unable to parse Gemini response")
		server.Close()
	}
}

func TestGenerateTextTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed before use

	client := NewClient("test-key", "", server.URL)
	_, err := client.GenerateText(context.Background(), "make food")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "network error")
}

func TestScanIngredientsSendsInlineData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text       string `json:"text"`
					InlineData *struct {
						MimeType string `json:"mime_type"`
						Data     string `json:"data"`
					} `json:"inline_data"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		parts := req.Contents[0].Parts
		require.Len(t, parts, 2)
		require.NotNil(t, parts[0].InlineData)
		assert.Equal(t, "image/png", parts[0].InlineData.MimeType)
		assert.NotEmpty(t, parts[0].InlineData.Data)
		assert.Contains(t, parts[1].Text, "comma-separated list")

		w.Write([]byte(envelope("eggs, milk")))
	}))
	defer server.Close()

	client := NewClient("test-key", "", server.URL)
	text, err := client.ScanIngredients(context.Background(), []byte{0x89, 0x50}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "eggs, milk", text)
}
