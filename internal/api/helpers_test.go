package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/gemini"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/service"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/store"
)

// stubGenerator returns canned Gemini responses and records what it was
// asked for.
type stubGenerator struct {
	textResponse string
	err          error

	lastPrompt  string
	lastRequest gemini.RecipeRequest
	lastImage   []byte
	lastMime    string
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.textResponse, s.err
}

func (s *stubGenerator) GenerateRecipe(ctx context.Context, request gemini.RecipeRequest) (string, error) {
	s.lastRequest = request
	return s.textResponse, s.err
}

func (s *stubGenerator) ScanIngredients(ctx context.Context, image []byte, mimeType string) (string, error) {
	s.lastImage = image
	s.lastMime = mimeType
	return s.textResponse, s.err
}

type testAPI struct {
	engine    *gin.Engine
	store     *store.MemoryStore
	auth      *service.AuthService
	generator *stubGenerator
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	st.SeedData()

	generator := &stubGenerator{}
	authService := service.NewAuthService(st, "test-secret")
	recipeService := service.NewRecipeService(st)
	pantryService := service.NewPantryService(st, 5)

	engine := gin.New()
	v1 := engine.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewProfileHandler(st, authService).RegisterRoutes(v1)
	NewRecipeHandler(recipeService, authService).RegisterRoutes(v1)
	NewGenerateHandler(generator, recipeService, st, authService, nil, 4.0).RegisterRoutes(v1)
	NewScannerHandler(generator, pantryService, authService).RegisterRoutes(v1)
	NewPantryHandler(pantryService, authService).RegisterRoutes(v1)
	NewFeedHandler(st, authService).RegisterRoutes(v1)

	return &testAPI{
		engine:    engine,
		store:     st,
		auth:      authService,
		generator: generator,
	}
}

// registerUser creates an account and returns a valid Bearer token.
func (a *testAPI) registerUser(t *testing.T, name, email string) string {
	t.Helper()
	token, err := a.auth.Register(name, email, "password123")
	require.NoError(t, err)
	return token
}

func (a *testAPI) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
