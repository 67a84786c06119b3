package gemini

import (
	"strconv"
	"strings"
)

// RecipeRequest is a pure value object describing what the user wants
// generated. It exists only to build a prompt string.
type RecipeRequest struct {
	Ingredients   []string
	Supplies      []string
	Allergies     []string
	CustomRequest string
}

// Prompt renders the request as a single Gemini prompt. Sections with empty
// source lists are omitted entirely. The output-schema contract and the
// formatting rules are part of the prompt so the model returns one bare JSON
// object. Deterministic for identical inputs.
func (r RecipeRequest) Prompt() string {
	var b strings.Builder

	b.WriteString("You are an AI chef. Create a detailed recipe.\n")
	if len(r.Ingredients) > 0 {
		b.WriteString("Available ingredients: " + strings.Join(r.Ingredients, ", ") + "\n")
	}
	if len(r.Supplies) > 0 {
		b.WriteString("Available supplies/equipment: " + strings.Join(r.Supplies, ", ") + "\n")
	}
	if len(r.Allergies) > 0 {
		b.WriteString("Allergy considerations: " + strings.Join(r.Allergies, ", ") + "\n")
	}
	if custom := strings.TrimSpace(r.CustomRequest); custom != "" {
		b.WriteString("Additional request: " + custom + "\n")
	}

	b.WriteString("Respond with a single JSON object EXACTLY matching this schema (no code fences, no prose, do not wrap the JSON in quotes):\n")
	b.WriteString(`{
  "id": "string",
  "title": "string",
  "description": "string",
  "ingredients": ["string", "string", "string"],
  "tools": ["string", "string"],
  "steps": ["string", "string", "string"],
  "imageUrls": ["https://example.com/photo.jpg"],
  "totalTimeMinutes": 30,
  "rating": 4.7,
  "difficulty": "EASY|MEDIUM|HARD"
}
`)
	b.WriteString("Rules:\n")
	b.WriteString("1. The first non-whitespace character MUST be '{' and the last MUST be '}'.\n")
	b.WriteString("2. Do not escape quotes inside the JSON (e.g., write \"title\": \"...\", not \"\\\"title\\\"\").\n")
	b.WriteString("3. ingredients and steps must each contain at least 3 entries; tools may be empty but prefer at least 1 item.\n")
	b.WriteString("4. imageUrls must contain at least one https URL. Use this EXACT format: 'https://image.pollinations.ai/prompt/{description}', where {description} is a short visual description of the dish with spaces replaced by '%20' (e.g., 'delicious%20lemon%20pasta%20on%20plate'). Do not use generic placeholders.\n")
	b.WriteString("5. totalTimeMinutes must be a positive integer; rating must be between 0 and 5; difficulty must be exactly EASY, MEDIUM, or HARD.\n")
	b.WriteString("Return only the JSON object with no commentary.")

	return b.String()
}

// BatchPrompt wraps several requests into one prompt asking for a JSON array
// of recipe objects following the same schema and rules.
func BatchPrompt(requests []RecipeRequest) string {
	var b strings.Builder
	b.WriteString("You are an AI chef. Create one detailed recipe per request below.\n")
	for i, req := range requests {
		b.WriteString("Request " + strconv.Itoa(i+1) + ":\n")
		if len(req.Ingredients) > 0 {
			b.WriteString("Available ingredients: " + strings.Join(req.Ingredients, ", ") + "\n")
		}
		if len(req.Supplies) > 0 {
			b.WriteString("Available supplies/equipment: " + strings.Join(req.Supplies, ", ") + "\n")
		}
		if len(req.Allergies) > 0 {
			b.WriteString("Allergy considerations: " + strings.Join(req.Allergies, ", ") + "\n")
		}
		if custom := strings.TrimSpace(req.CustomRequest); custom != "" {
			b.WriteString("Additional request: " + custom + "\n")
		}
	}
	b.WriteString("Respond with a single JSON array of recipe objects, one per request, each EXACTLY matching this schema (no code fences, no prose):\n")
	b.WriteString(`[{"id": "string", "title": "string", "description": "string", "ingredients": ["string"], "tools": ["string"], "steps": ["string"], "imageUrls": ["https://..."], "totalTimeMinutes": 30, "rating": 4.7, "difficulty": "EASY|MEDIUM|HARD"}]` + "\n")
	b.WriteString("Return only the JSON array with no commentary.")
	return b.String()
}
