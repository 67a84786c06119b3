package service

import (
	"context"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/gemini"
)

// Generator is the slice of the Gemini client the handlers depend on, so
// tests can substitute a stub.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateRecipe(ctx context.Context, request gemini.RecipeRequest) (string, error)
	ScanIngredients(ctx context.Context, image []byte, mimeType string) (string, error)
}
