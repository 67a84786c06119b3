package models

import (
	"errors"
	"fmt"
	"strings"
)

// Allergy is the closed set of allergy categories, plus OTHER as an escape
// hatch that requires free-text elaboration.
type Allergy string

const (
	AllergySoy       Allergy = "SOY"
	AllergyShellfish Allergy = "SHELLFISH"
	AllergyEggs      Allergy = "EGGS"
	AllergyTreeNuts  Allergy = "TREE_NUTS"
	AllergyPeanuts   Allergy = "PEANUTS"
	AllergyMilk      Allergy = "MILK"
	AllergyFish      Allergy = "FISH"
	AllergyWheat     Allergy = "WHEAT"
	AllergyGluten    Allergy = "GLUTEN"
	AllergySesame    Allergy = "SESAME"
	AllergyOther     Allergy = "OTHER"
)

// Allergies lists every allergy category in declaration order.
func Allergies() []Allergy {
	return []Allergy{
		AllergySoy, AllergyShellfish, AllergyEggs, AllergyTreeNuts,
		AllergyPeanuts, AllergyMilk, AllergyFish, AllergyWheat,
		AllergyGluten, AllergySesame, AllergyOther,
	}
}

// ParseAllergy matches an allergy name case-insensitively.
func ParseAllergy(s string) (Allergy, error) {
	candidate := Allergy(strings.ToUpper(strings.TrimSpace(s)))
	for _, a := range Allergies() {
		if a == candidate {
			return a, nil
		}
	}
	return "", fmt.Errorf("invalid allergy %q", s)
}

// DisplayName renders the enum name for prompts and UI text,
// e.g. TREE_NUTS -> "Tree Nuts".
func (a Allergy) DisplayName() string {
	words := strings.Split(strings.ToLower(string(a)), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// User is an account holder with allergy preferences and a saved-recipe list.
// The password is stored as a hash, never plaintext.
type User struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	HashedPassword    string    `json:"-"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty"`
	Allergies         []Allergy `json:"allergies"`
	CustomAllergy     string    `json:"custom_allergy,omitempty"`
	SavedRecipes      []Recipe  `json:"saved_recipes"`
}

// NewUser constructs a User, enforcing the construction invariants. The
// custom allergy text must be non-blank exactly when OTHER is selected;
// duplicate allergies collapse.
func NewUser(id, name, email, hashedPassword, profilePictureURL string, allergies []Allergy, customAllergy string, savedRecipes []Recipe) (User, error) {
	if strings.TrimSpace(name) == "" {
		return User{}, errors.New("name cannot be blank")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return User{}, fmt.Errorf("email %q must be valid", email)
	}
	if strings.TrimSpace(hashedPassword) == "" {
		return User{}, errors.New("password hash cannot be empty")
	}

	deduped := make([]Allergy, 0, len(allergies))
	seen := make(map[Allergy]bool, len(allergies))
	hasOther := false
	for _, a := range allergies {
		if _, err := ParseAllergy(string(a)); err != nil {
			return User{}, err
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		deduped = append(deduped, a)
		if a == AllergyOther {
			hasOther = true
		}
	}

	if hasOther {
		if strings.TrimSpace(customAllergy) == "" {
			return User{}, errors.New("custom allergy must be provided when OTHER is selected")
		}
	} else if customAllergy != "" {
		return User{}, errors.New("custom allergy must be empty unless OTHER is selected")
	}

	if savedRecipes == nil {
		savedRecipes = []Recipe{}
	}
	return User{
		ID:                id,
		Name:              name,
		Email:             email,
		HashedPassword:    hashedPassword,
		ProfilePictureURL: profilePictureURL,
		Allergies:         deduped,
		CustomAllergy:     customAllergy,
		SavedRecipes:      savedRecipes,
	}, nil
}
