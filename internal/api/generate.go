package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/gemini"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/middleware"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/models"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/service"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/store"
)

// GenerateHandler handles AI recipe generation requests.
type GenerateHandler struct {
	generator     service.Generator
	recipeService *service.RecipeService
	store         *store.MemoryStore
	authService   middleware.TokenValidator
	rateLimiter   *middleware.RateLimiter
	defaultRating float32
}

// NewGenerateHandler creates a new GenerateHandler instance. rateLimiter may
// be nil when redis is not configured.
func NewGenerateHandler(generator service.Generator, recipeService *service.RecipeService, st *store.MemoryStore, authService middleware.TokenValidator, rateLimiter *middleware.RateLimiter, defaultRating float32) *GenerateHandler {
	return &GenerateHandler{
		generator:     generator,
		recipeService: recipeService,
		store:         st,
		authService:   authService,
		rateLimiter:   rateLimiter,
		defaultRating: defaultRating,
	}
}

// RegisterRoutes registers the generation routes.
func (h *GenerateHandler) RegisterRoutes(router *gin.RouterGroup) {
	generate := router.Group("/generate")
	generate.Use(middleware.AuthMiddleware(h.authService))
	if h.rateLimiter != nil {
		generate.Use(h.rateLimiter.RateLimitMiddleware())
	}
	{
		generate.POST("", h.Generate)
		generate.POST("/batch", h.GenerateBatch)
	}
}

type GenerateRequest struct {
	Ingredients   []string `json:"ingredients"`
	Supplies      []string `json:"supplies"`
	Allergies     []string `json:"allergies"`
	CustomAllergy string   `json:"custom_allergy"`
	CustomRequest string   `json:"custom_request"`
}

type GenerateBatchRequest struct {
	Requests []GenerateRequest `json:"requests" binding:"required,min=1"`
}

// Generate builds a prompt from the request plus the user's stored allergy
// preferences, calls Gemini, parses the result, and stores the recipe.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.buildRequest(c.GetString("user_id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw, err := h.generator.GenerateRecipe(c.Request.Context(), request)
	if err != nil {
		respondGeminiError(c, err)
		return
	}

	recipe, err := gemini.ParseRecipe(raw, h.defaultRating)
	if err != nil {
		log.Printf("[generate] unparseable recipe output: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Unable to parse recipe output.",
			"raw":   raw,
		})
		return
	}

	stored := h.recipeService.StoreRecipe(*recipe)
	c.JSON(http.StatusCreated, gin.H{"recipe": stored})
}

// GenerateBatch asks for several recipes in one call and stores every
// element that parses; unparseable elements are skipped, not fatal.
func (h *GenerateHandler) GenerateBatch(c *gin.Context) {
	var req GenerateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	requests := make([]gemini.RecipeRequest, 0, len(req.Requests))
	for _, r := range req.Requests {
		request, err := h.buildRequest(userID, r)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		requests = append(requests, request)
	}

	raw, err := h.generator.GenerateText(c.Request.Context(), gemini.BatchPrompt(requests))
	if err != nil {
		respondGeminiError(c, err)
		return
	}

	recipes, err := gemini.ParseRecipes(raw, h.defaultRating)
	if err != nil {
		log.Printf("[generate] unparseable batch output: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Unable to parse recipe output.",
			"raw":   raw,
		})
		return
	}

	for i, recipe := range recipes {
		recipes[i] = h.recipeService.StoreRecipe(recipe)
	}
	c.JSON(http.StatusCreated, gin.H{"recipes": recipes})
}

// buildRequest converts allergy enum names to display strings, appends the
// free-text custom allergy when OTHER is selected, and merges in the user's
// stored allergy preferences.
func (h *GenerateHandler) buildRequest(userID string, req GenerateRequest) (gemini.RecipeRequest, error) {
	var allergyList []string
	otherSelected := false
	for _, name := range req.Allergies {
		allergy, err := models.ParseAllergy(name)
		if err != nil {
			return gemini.RecipeRequest{}, err
		}
		if allergy == models.AllergyOther {
			otherSelected = true
			continue
		}
		allergyList = append(allergyList, allergy.DisplayName())
	}
	if otherSelected && strings.TrimSpace(req.CustomAllergy) != "" {
		allergyList = append(allergyList, strings.TrimSpace(req.CustomAllergy))
	}

	if user, ok := h.store.GetUser(userID); ok {
		for _, allergy := range user.Allergies {
			if allergy == models.AllergyOther {
				if user.CustomAllergy != "" {
					allergyList = appendUnique(allergyList, user.CustomAllergy)
				}
				continue
			}
			allergyList = appendUnique(allergyList, allergy.DisplayName())
		}
	}

	return gemini.RecipeRequest{
		Ingredients:   req.Ingredients,
		Supplies:      req.Supplies,
		Allergies:     allergyList,
		CustomRequest: req.CustomRequest,
	}, nil
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}

// respondGeminiError maps client errors to HTTP statuses. The diagnostic
// body is logged only; end users get the generic message.
func respondGeminiError(c *gin.Context, err error) {
	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		if apiErr.DebugBody != "" {
			log.Printf("[generate] gemini error: %s -> %s", apiErr.Message, apiErr.DebugBody)
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipe: " + err.Error()})
}
