package gemini

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptIncludesAllSections(t *testing.T) {
	request := RecipeRequest{
		Ingredients:   []string{"eggs", "cheese"},
		Supplies:      []string{"pan"},
		Allergies:     []string{"Tree Nuts", "shellfish-free please"},
		CustomRequest: "  make it spicy  ",
	}
	prompt := request.Prompt()

	assert.True(t, strings.HasPrefix(prompt, "You are an AI chef. Create a detailed recipe.\n"))
	assert.Contains(t, prompt, "Available ingredients: eggs, cheese\n")
	assert.Contains(t, prompt, "Available supplies/equipment: pan\n")
	assert.Contains(t, prompt, "Allergy considerations: Tree Nuts, shellfish-free please\n")
	assert.Contains(t, prompt, "Additional request: make it spicy\n")
	assert.True(t, strings.HasSuffix(prompt, "Return only the JSON object with no commentary."))
}

func TestPromptOmitsEmptySections(t *testing.T) {
	prompt := RecipeRequest{}.Prompt()

	assert.NotContains(t, prompt, "Available ingredients:")
	assert.NotContains(t, prompt, "Available supplies/equipment:")
	assert.NotContains(t, prompt, "Allergy considerations:")
	assert.NotContains(t, prompt, "Additional request:")

	// schema and rules are always present
	assert.Contains(t, prompt, `"totalTimeMinutes": 30`)
	assert.Contains(t, prompt, "Rules:\n")
	assert.Contains(t, prompt, "image.pollinations.ai/prompt/")
	assert.Contains(t, prompt, "difficulty must be exactly EASY, MEDIUM, or HARD")
}

func TestPromptBlankCustomRequestOmitted(t *testing.T) {
	prompt := RecipeRequest{CustomRequest: "   "}.Prompt()
	assert.NotContains(t, prompt, "Additional request:")
}

func TestPromptIsDeterministic(t *testing.T) {
	request := RecipeRequest{Ingredients: []string{"rice", "beans"}}
	assert.Equal(t, request.Prompt(), request.Prompt())
}

func TestBatchPromptNumbersRequests(t *testing.T) {
	prompt := BatchPrompt([]RecipeRequest{
		{Ingredients: []string{"rice"}},
		{Supplies: []string{"wok"}},
	})

	assert.Contains(t, prompt, "Request 1:\n")
	assert.Contains(t, prompt, "Request 2:\n")
	assert.Contains(t, prompt, "Available ingredients: rice\n")
	assert.Contains(t, prompt, "Available supplies/equipment: wok\n")
	assert.True(t, strings.HasSuffix(prompt, "Return only the JSON array with no commentary."))
}
