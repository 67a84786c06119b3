package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/middleware"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/models"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/service"
)

// RecipeHandler handles recipe browsing, manual creation, and the
// saved-recipe list.
type RecipeHandler struct {
	recipeService *service.RecipeService
	authService   middleware.TokenValidator
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(recipeService *service.RecipeService, authService middleware.TokenValidator) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		authService:   authService,
	}
}

// RegisterRoutes registers the recipe routes.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", middleware.AuthMiddleware(h.authService), h.CreateRecipe)
		recipes.POST("/:id/save", middleware.AuthMiddleware(h.authService), h.SaveRecipe)
		recipes.DELETE("/:id/save", middleware.AuthMiddleware(h.authService), h.UnsaveRecipe)
	}
}

// ListRecipes returns every recipe, optionally filtered by the q keyword.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var recipes []models.Recipe
	if q := c.Query("q"); q != "" {
		recipes = h.recipeService.SearchRecipes(q)
	} else {
		recipes = h.recipeService.ListRecipes()
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipe returns a single recipe by id.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipeService.GetRecipe(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

type CreateRecipeRequest struct {
	ID               string   `json:"id"`
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Ingredients      []string `json:"ingredients" binding:"required"`
	Tools            []string `json:"tools"`
	Steps            []string `json:"steps" binding:"required"`
	ImageURLs        []string `json:"imageUrls"`
	TotalTimeMinutes int      `json:"totalTimeMinutes" binding:"required"`
	Rating           float32  `json:"rating"`
	Difficulty       string   `json:"difficulty" binding:"required"`
}

// CreateRecipe stores a manually entered recipe. Construction invariant
// violations on user input map to 400.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	difficulty, err := models.ParseDifficulty(req.Difficulty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	recipe, err := models.NewRecipe(id, req.Title, req.Description, req.Ingredients,
		req.Tools, req.Steps, req.ImageURLs, req.TotalTimeMinutes, req.Rating, difficulty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored := h.recipeService.StoreRecipe(recipe)
	c.JSON(http.StatusCreated, gin.H{"recipe": stored})
}

// SaveRecipe adds a recipe to the authenticated user's saved list.
func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := h.recipeService.SaveForUser(userID, c.Param("id")); err != nil {
		status := http.StatusNotFound
		if errors.Is(err, service.ErrUserNotFound) {
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe saved successfully", "id": c.Param("id")})
}

// UnsaveRecipe removes a recipe from the authenticated user's saved list.
func (h *RecipeHandler) UnsaveRecipe(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := h.recipeService.UnsaveForUser(userID, c.Param("id")); err != nil {
		status := http.StatusNotFound
		if errors.Is(err, service.ErrUserNotFound) {
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe removed from saved", "id": c.Param("id")})
}
