package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/models"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/store"
)

func seededRecipeService(t *testing.T) (*RecipeService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	st.SeedData()
	return NewRecipeService(st), st
}

func TestSearchRecipes(t *testing.T) {
	svc, _ := seededRecipeService(t)

	results := svc.SearchRecipes("taco")
	require.Len(t, results, 1)
	assert.Equal(t, "Tacos", results[0].Title)

	// matches ingredient text too
	results = svc.SearchRecipes("ground beef")
	require.Len(t, results, 1)
	assert.Equal(t, "Tacos", results[0].Title)

	// blank query returns everything
	assert.Len(t, svc.SearchRecipes("   "), 3)

	assert.Empty(t, svc.SearchRecipes("sushi"))
}

func TestGetRecipeNotFound(t *testing.T) {
	svc, _ := seededRecipeService(t)
	_, err := svc.GetRecipe("nope")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestSaveForUser(t *testing.T) {
	svc, st := seededRecipeService(t)
	st.CreateUser(models.User{ID: "u1", Name: "Ada", Email: "a@b.com"})

	require.NoError(t, svc.SaveForUser("u1", "recipe_omelette"))
	// saving twice is a no-op
	require.NoError(t, svc.SaveForUser("u1", "recipe_omelette"))

	user, _ := st.GetUser("u1")
	require.Len(t, user.SavedRecipes, 1)
	assert.Equal(t, "recipe_omelette", user.SavedRecipes[0].ID)
}

func TestSaveForUserErrors(t *testing.T) {
	svc, st := seededRecipeService(t)
	st.CreateUser(models.User{ID: "u1"})

	assert.ErrorIs(t, svc.SaveForUser("u1", "missing-recipe"), ErrRecipeNotFound)
	assert.ErrorIs(t, svc.SaveForUser("ghost", "recipe_tacos"), ErrUserNotFound)
}

func TestUnsaveForUser(t *testing.T) {
	svc, st := seededRecipeService(t)
	st.CreateUser(models.User{ID: "u1"})
	require.NoError(t, svc.SaveForUser("u1", "recipe_tacos"))

	require.NoError(t, svc.UnsaveForUser("u1", "recipe_tacos"))
	user, _ := st.GetUser("u1")
	assert.Empty(t, user.SavedRecipes)

	assert.ErrorIs(t, svc.UnsaveForUser("u1", "recipe_tacos"), ErrRecipeNotFound)
	assert.ErrorIs(t, svc.UnsaveForUser("ghost", "recipe_tacos"), ErrUserNotFound)
}
