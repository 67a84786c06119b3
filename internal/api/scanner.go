package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/gemini"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/middleware"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/service"
)

// 10 MiB cap on uploaded images.
const maxImageBytes = 10 << 20

// ScannerHandler accepts an ingredient photo, has Gemini identify the food
// items in it, and adds them to the pantry.
type ScannerHandler struct {
	generator     service.Generator
	pantryService *service.PantryService
	authService   middleware.TokenValidator
}

// NewScannerHandler creates a new ScannerHandler instance.
func NewScannerHandler(generator service.Generator, pantryService *service.PantryService, authService middleware.TokenValidator) *ScannerHandler {
	return &ScannerHandler{
		generator:     generator,
		pantryService: pantryService,
		authService:   authService,
	}
}

// RegisterRoutes registers the scanner route.
func (h *ScannerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/scanner", middleware.AuthMiddleware(h.authService), h.ScanImage)
}

// ScanImage reads the multipart "image" field, asks Gemini for a
// comma-separated ingredient list, and front-inserts the parsed items into
// the pantry.
func (h *ScannerHandler) ScanImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	if len(data) > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds 10MB limit"})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	raw, err := h.generator.ScanIngredients(c.Request.Context(), data, mimeType)
	if err != nil {
		respondGeminiError(c, err)
		return
	}

	ingredients := gemini.ParseIngredientList(raw)
	h.pantryService.AddItems(ingredients)

	if ingredients == nil {
		ingredients = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}
