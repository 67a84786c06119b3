package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/middleware"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/models"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/store"
)

// FeedHandler serves the social feed of shared recipes.
type FeedHandler struct {
	store       *store.MemoryStore
	authService middleware.TokenValidator
}

// NewFeedHandler creates a new FeedHandler instance.
func NewFeedHandler(st *store.MemoryStore, authService middleware.TokenValidator) *FeedHandler {
	return &FeedHandler{store: st, authService: authService}
}

// RegisterRoutes registers the feed routes.
func (h *FeedHandler) RegisterRoutes(router *gin.RouterGroup) {
	feed := router.Group("/feed")
	{
		feed.GET("", h.GetFeed)
		feed.POST("/share", middleware.AuthMiddleware(h.authService), h.ShareRecipe)
	}
}

// GetFeed returns every shared post, newest first.
func (h *FeedHandler) GetFeed(c *gin.Context) {
	posts := h.store.GetPosts()
	if posts == nil {
		posts = []models.RecipePost{}
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

type ShareRecipeRequest struct {
	RecipeID string `json:"recipe_id" binding:"required"`
	Caption  string `json:"caption"`
}

// ShareRecipe posts a recipe to the feed under the authenticated user's name.
func (h *FeedHandler) ShareRecipe(c *gin.Context) {
	var req ShareRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := h.store.GetUser(c.GetString("user_id"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	recipe, ok := h.store.GetRecipe(req.RecipeID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	imageURL := ""
	if len(recipe.ImageURLs) > 0 {
		imageURL = recipe.ImageURLs[0]
	}

	post := models.RecipePost{
		ID:           uuid.New().String(),
		RecipeID:     recipe.ID,
		UserName:     user.Name,
		UserPhotoURL: user.ProfilePictureURL,
		ImageURL:     imageURL,
		Caption:      req.Caption,
		SharedAt:     time.Now(),
	}
	h.store.AddPost(post)

	c.JSON(http.StatusCreated, gin.H{"post": post})
}
