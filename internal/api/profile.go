package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/middleware"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/models"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/store"
)

// ProfileHandler exposes the authenticated user's profile and allergy
// preferences.
type ProfileHandler struct {
	store       *store.MemoryStore
	authService middleware.TokenValidator
}

// NewProfileHandler creates a new ProfileHandler instance.
func NewProfileHandler(st *store.MemoryStore, authService middleware.TokenValidator) *ProfileHandler {
	return &ProfileHandler{store: st, authService: authService}
}

// RegisterRoutes registers the profile routes.
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	profile.Use(middleware.AuthMiddleware(h.authService))
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, ok := h.store.GetUser(c.GetString("user_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

type UpdateProfileRequest struct {
	Name              *string  `json:"name"`
	ProfilePictureURL *string  `json:"profile_picture_url"`
	Allergies         []string `json:"allergies"`
	CustomAllergy     *string  `json:"custom_allergy"`
}

// UpdateProfile applies a partial update, revalidating the full user so the
// allergy invariants hold after the merge.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := h.store.GetUser(c.GetString("user_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	name := user.Name
	if req.Name != nil {
		name = *req.Name
	}
	pictureURL := user.ProfilePictureURL
	if req.ProfilePictureURL != nil {
		pictureURL = *req.ProfilePictureURL
	}
	allergies := user.Allergies
	if req.Allergies != nil {
		allergies = make([]models.Allergy, 0, len(req.Allergies))
		for _, raw := range req.Allergies {
			allergy, err := models.ParseAllergy(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			allergies = append(allergies, allergy)
		}
	}
	customAllergy := user.CustomAllergy
	if req.CustomAllergy != nil {
		customAllergy = *req.CustomAllergy
	}

	updated, err := models.NewUser(user.ID, name, user.Email, user.HashedPassword,
		pictureURL, allergies, customAllergy, user.SavedRecipes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.store.UpdateUser(updated) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
