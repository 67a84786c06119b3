package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/middleware"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/service"
)

// PantryHandler handles the ingredient inventory routes.
type PantryHandler struct {
	pantryService *service.PantryService
	authService   middleware.TokenValidator
}

// NewPantryHandler creates a new PantryHandler instance.
func NewPantryHandler(pantryService *service.PantryService, authService middleware.TokenValidator) *PantryHandler {
	return &PantryHandler{
		pantryService: pantryService,
		authService:   authService,
	}
}

// RegisterRoutes registers the pantry routes.
func (h *PantryHandler) RegisterRoutes(router *gin.RouterGroup) {
	pantry := router.Group("/pantry")
	pantry.Use(middleware.AuthMiddleware(h.authService))
	{
		pantry.GET("", h.ListItems)
		pantry.POST("", h.AddItem)
		pantry.POST("/batch", h.AddItems)
		pantry.DELETE("/:item", h.RemoveItem)
		pantry.GET("/suggestions", h.Suggestions)
	}
}

type AddPantryItemRequest struct {
	Item string `json:"item" binding:"required"`
}

type AddPantryItemsRequest struct {
	Items []string `json:"items" binding:"required,min=1"`
}

// ListItems returns the pantry, most recently added first.
func (h *PantryHandler) ListItems(c *gin.Context) {
	items := h.pantryService.Items()
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddItem adds a single ingredient. Blanks and duplicates are silently
// ignored, so the response always reflects the resulting list.
func (h *PantryHandler) AddItem(c *gin.Context) {
	var req AddPantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.pantryService.AddItem(req.Item)
	c.JSON(http.StatusOK, gin.H{"items": h.pantryService.Items()})
}

// AddItems adds a batch of ingredients preserving their relative order at
// the front of the pantry.
func (h *PantryHandler) AddItems(c *gin.Context) {
	var req AddPantryItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.pantryService.AddItems(req.Items)
	c.JSON(http.StatusOK, gin.H{"items": h.pantryService.Items()})
}

// RemoveItem deletes an ingredient by exact value.
func (h *PantryHandler) RemoveItem(c *gin.Context) {
	item := c.Param("item")
	if !h.pantryService.RemoveItem(item) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found in pantry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": h.pantryService.Items()})
}

// Suggestions returns autocomplete matches for the q query parameter.
func (h *PantryHandler) Suggestions(c *gin.Context) {
	suggestions := h.pantryService.Suggest(c.Query("q"))
	if suggestions == nil {
		suggestions = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
