package models

import (
	"fmt"
	"strings"
)

// Difficulty is the closed set of recipe difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// ParseDifficulty matches a difficulty string case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToUpper(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("invalid difficulty %q", s)
	}
}

// Recipe is a structured cooking instruction set.
type Recipe struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Ingredients      []string   `json:"ingredients"`
	Tools            []string   `json:"tools"`
	Steps            []string   `json:"steps"`
	ImageURLs        []string   `json:"imageUrls"`
	TotalTimeMinutes int        `json:"totalTimeMinutes"`
	Rating           float32    `json:"rating"`
	Difficulty       Difficulty `json:"difficulty"`
}

// NewRecipe constructs a Recipe, enforcing the construction invariants:
// totalTimeMinutes must be positive and rating must be within [0, 5].
func NewRecipe(id, title, description string, ingredients, tools, steps, imageURLs []string, totalTimeMinutes int, rating float32, difficulty Difficulty) (Recipe, error) {
	if totalTimeMinutes <= 0 {
		return Recipe{}, fmt.Errorf("total time must be greater than 0 minutes, got %d", totalTimeMinutes)
	}
	if rating < 0 || rating > 5 {
		return Recipe{}, fmt.Errorf("rating must be between 0 and 5, got %v", rating)
	}
	if _, err := ParseDifficulty(string(difficulty)); err != nil {
		return Recipe{}, err
	}
	if tools == nil {
		tools = []string{}
	}
	if imageURLs == nil {
		imageURLs = []string{}
	}
	return Recipe{
		ID:               id,
		Title:            title,
		Description:      description,
		Ingredients:      ingredients,
		Tools:            tools,
		Steps:            steps,
		ImageURLs:        imageURLs,
		TotalTimeMinutes: totalTimeMinutes,
		Rating:           rating,
		Difficulty:       difficulty,
	}, nil
}
