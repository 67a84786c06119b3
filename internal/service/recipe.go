// Package service holds the application services wired between the HTTP
// handlers and the in-memory store.
package service

import (
	"errors"
	"strings"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/models"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/store"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrUserNotFound   = errors.New("user not found")
)

// RecipeService handles recipe operations over the in-memory store.
type RecipeService struct {
	store *store.MemoryStore
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(st *store.MemoryStore) *RecipeService {
	return &RecipeService{store: st}
}

// StoreRecipe upserts a recipe by id.
func (s *RecipeService) StoreRecipe(recipe models.Recipe) models.Recipe {
	return s.store.StoreRecipe(recipe)
}

// GetRecipe retrieves a recipe by id.
func (s *RecipeService) GetRecipe(id string) (models.Recipe, error) {
	recipe, ok := s.store.GetRecipe(id)
	if !ok {
		return models.Recipe{}, ErrRecipeNotFound
	}
	return recipe, nil
}

// ListRecipes returns every recipe in insertion order.
func (s *RecipeService) ListRecipes() []models.Recipe {
	return s.store.GetRecipes()
}

// SearchRecipes performs a lowercase keyword search over title, description,
// and ingredients.
func (s *RecipeService) SearchRecipes(query string) []models.Recipe {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.store.GetRecipes()
	}

	var out []models.Recipe
	for _, recipe := range s.store.GetRecipes() {
		if recipeMatches(recipe, query) {
			out = append(out, recipe)
		}
	}
	return out
}

func recipeMatches(recipe models.Recipe, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(recipe.Title), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(recipe.Description), loweredQuery) {
		return true
	}
	for _, ingredient := range recipe.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), loweredQuery) {
			return true
		}
	}
	return false
}

// SaveForUser appends a recipe to the user's saved list. Saving an already
// saved recipe is a no-op.
func (s *RecipeService) SaveForUser(userID, recipeID string) error {
	recipe, ok := s.store.GetRecipe(recipeID)
	if !ok {
		return ErrRecipeNotFound
	}
	user, ok := s.store.GetUser(userID)
	if !ok {
		return ErrUserNotFound
	}

	for _, saved := range user.SavedRecipes {
		if saved.ID == recipeID {
			return nil
		}
	}
	user.SavedRecipes = append(user.SavedRecipes, recipe)
	if !s.store.UpdateUser(user) {
		return ErrUserNotFound
	}
	return nil
}

// UnsaveForUser removes a recipe from the user's saved list.
func (s *RecipeService) UnsaveForUser(userID, recipeID string) error {
	user, ok := s.store.GetUser(userID)
	if !ok {
		return ErrUserNotFound
	}

	for i, saved := range user.SavedRecipes {
		if saved.ID == recipeID {
			user.SavedRecipes = append(user.SavedRecipes[:i], user.SavedRecipes[i+1:]...)
			if !s.store.UpdateUser(user) {
				return ErrUserNotFound
			}
			return nil
		}
	}
	return ErrRecipeNotFound
}
