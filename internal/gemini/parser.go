package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/models"
)

// Field-extraction failures are individually enumerable so each path can be
// tested on its own. Every one of them collapses the whole parse to "no
// recipe"; a partial recipe is never returned.
var (
	ErrNotJSONObject = errors.New("payload is not a JSON object")
	ErrMissingTitle  = errors.New("missing required field: title")
	ErrMissingDesc   = errors.New("missing required field: description")
	ErrMissingItems  = errors.New("missing required field: ingredients")
	ErrMissingSteps  = errors.New("missing required field: steps")
	ErrMissingTime   = errors.New("missing required field: totalTimeMinutes")
	ErrBadDifficulty = errors.New("missing or invalid field: difficulty")
	ErrNotJSONArray  = errors.New("payload is not a JSON array")
)

// recipePayload mirrors the schema the prompt demands. Pointers distinguish
// absent required fields from zero values; rating stays raw so a non-numeric
// value falls back to the default instead of failing the parse.
type recipePayload struct {
	ID          string          `json:"id"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Ingredients []string        `json:"ingredients"`
	Tools       []string        `json:"tools"`
	Steps       []string        `json:"steps"`
	ImageURLs   []string        `json:"imageUrls"`
	TotalTime   *json.Number    `json:"totalTimeMinutes"`
	Rating      json.RawMessage `json:"rating"`
	Difficulty  *string         `json:"difficulty"`
}

// ParseRecipe converts the inner text payload of a Gemini response into a
// Recipe. A missing or blank id is replaced with a fresh random one; tools
// and imageUrls default to empty lists; rating defaults to defaultRating when
// absent or non-numeric. Everything else is required, and a construction
// invariant violation fails the parse too.
func ParseRecipe(raw string, defaultRating float32) (*models.Recipe, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var payload recipePayload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJSONObject, err)
	}

	if payload.Title == nil {
		return nil, ErrMissingTitle
	}
	if payload.Description == nil {
		return nil, ErrMissingDesc
	}
	if payload.Ingredients == nil {
		return nil, ErrMissingItems
	}
	if payload.Steps == nil {
		return nil, ErrMissingSteps
	}
	if payload.TotalTime == nil {
		return nil, ErrMissingTime
	}
	if payload.Difficulty == nil {
		return nil, ErrBadDifficulty
	}

	totalTime, err := parseMinutes(*payload.TotalTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTime, err)
	}

	difficulty, err := models.ParseDifficulty(*payload.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDifficulty, err)
	}

	id := strings.TrimSpace(payload.ID)
	if id == "" {
		id = uuid.New().String()
	}

	rating := defaultRating
	if len(payload.Rating) > 0 && string(payload.Rating) != "null" {
		var value float32
		if err := json.Unmarshal(payload.Rating, &value); err == nil {
			rating = value
		}
	}

	recipe, err := models.NewRecipe(
		id,
		*payload.Title,
		*payload.Description,
		payload.Ingredients,
		payload.Tools,
		payload.Steps,
		payload.ImageURLs,
		totalTime,
		rating,
		difficulty,
	)
	if err != nil {
		return nil, fmt.Errorf("recipe construction failed: %w", err)
	}
	return &recipe, nil
}

// ParseRecipes applies the per-object rules across a JSON array, skipping
// elements that individually fail. It returns the successfully parsed
// recipes, possibly empty, and only errors when the payload is not an array
// at all.
func ParseRecipes(raw string, defaultRating float32) ([]models.Recipe, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJSONArray, err)
	}

	recipes := make([]models.Recipe, 0, len(elements))
	for i, element := range elements {
		recipe, err := ParseRecipe(string(element), defaultRating)
		if err != nil {
			log.Printf("[gemini] skipping unparseable recipe at index %d: %v", i, err)
			continue
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, nil
}

// ParseIngredientList splits the vision path's plain-text output on commas,
// trimming each token and dropping blanks.
func ParseIngredientList(raw string) []string {
	var out []string
	for _, token := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseMinutes(n json.Number) (int, error) {
	if v, err := n.Int64(); err == nil {
		return int(v), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
