package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	for _, input := range []string{"EASY", "easy", " Easy "} {
		difficulty, err := ParseDifficulty(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, DifficultyEasy, difficulty)
	}

	_, err := ParseDifficulty("EXPERT")
	assert.Error(t, err)
	_, err = ParseDifficulty("")
	assert.Error(t, err)
}

func TestNewRecipeTotalTimeBoundary(t *testing.T) {
	_, err := NewRecipe("r1", "Toast", "Bread, but warm", []string{"Bread"}, nil,
		[]string{"Toast it"}, nil, 0, 4, DifficultyEasy)
	assert.Error(t, err)

	recipe, err := NewRecipe("r1", "Toast", "Bread, but warm", []string{"Bread"}, nil,
		[]string{"Toast it"}, nil, 1, 4, DifficultyEasy)
	require.NoError(t, err)
	assert.Equal(t, 1, recipe.TotalTimeMinutes)
}

func TestNewRecipeRatingBoundary(t *testing.T) {
	cases := []struct {
		rating float32
		ok     bool
	}{
		{-0.01, false},
		{0, true},
		{5, true},
		{5.01, false},
	}
	for _, tc := range cases {
		_, err := NewRecipe("r1", "Toast", "desc", []string{"Bread"}, nil,
			[]string{"Toast it"}, nil, 5, tc.rating, DifficultyEasy)
		if tc.ok {
			assert.NoError(t, err, "rating %v", tc.rating)
		} else {
			assert.Error(t, err, "rating %v", tc.rating)
		}
	}
}

func TestNewRecipeDefaultsOptionalLists(t *testing.T) {
	recipe, err := NewRecipe("r1", "Toast", "desc", []string{"Bread"}, nil,
		[]string{"Toast it"}, nil, 5, 4, DifficultyEasy)
	require.NoError(t, err)
	assert.NotNil(t, recipe.Tools)
	assert.Empty(t, recipe.Tools)
	assert.NotNil(t, recipe.ImageURLs)
	assert.Empty(t, recipe.ImageURLs)
}

func TestNewRecipeRejectsInvalidDifficulty(t *testing.T) {
	_, err := NewRecipe("r1", "Toast", "desc", []string{"Bread"}, nil,
		[]string{"Toast it"}, nil, 5, 4, Difficulty("TRIVIAL"))
	assert.Error(t, err)
}
