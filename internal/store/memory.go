// Package store provides the process-lifetime in-memory database.
package store

import (
	"sync"
	"time"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/models"
)

// MemoryStore holds recipes, users, pantry items, and feed posts for the
// lifetime of the process. One mutex serializes every read and write across
// all collections; callers must never hold it across a network call.
// Iteration order is insertion order.
type MemoryStore struct {
	mu sync.Mutex

	recipes   map[string]models.Recipe
	recipeIDs []string

	users   map[string]models.User
	userIDs []string

	pantry []string

	posts []models.RecipePost
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		recipes: make(map[string]models.Recipe),
		users:   make(map[string]models.User),
	}
}

// StoreRecipe upserts a recipe by id and returns the stored value.
func (s *MemoryStore) StoreRecipe(recipe models.Recipe) models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[recipe.ID]; !ok {
		s.recipeIDs = append(s.recipeIDs, recipe.ID)
	}
	s.recipes[recipe.ID] = recipe
	return recipe
}

// GetRecipe looks up a recipe by id.
func (s *MemoryStore) GetRecipe(id string) (models.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe, ok := s.recipes[id]
	return recipe, ok
}

// GetRecipes returns every recipe in insertion order.
func (s *MemoryStore) GetRecipes() []models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Recipe, 0, len(s.recipeIDs))
	for _, id := range s.recipeIDs {
		out = append(out, s.recipes[id])
	}
	return out
}

// CreateUser inserts a user. It returns false without mutation when the id
// already exists; the first write wins.
func (s *MemoryStore) CreateUser(user models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return false
	}
	s.users[user.ID] = user
	s.userIDs = append(s.userIDs, user.ID)
	return true
}

// GetUser looks up a user by id.
func (s *MemoryStore) GetUser(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	return user, ok
}

// GetUserByEmail scans for a user with the given email.
func (s *MemoryStore) GetUserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.userIDs {
		if s.users[id].Email == email {
			return s.users[id], true
		}
	}
	return models.User{}, false
}

// UpdateUser replaces an existing user. It returns false without mutation
// when the id is absent; update never inserts.
func (s *MemoryStore) UpdateUser(user models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return false
	}
	s.users[user.ID] = user
	return true
}

// DeleteUser removes a user by id, reporting whether a removal occurred.
func (s *MemoryStore) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	for i, uid := range s.userIDs {
		if uid == id {
			s.userIDs = append(s.userIDs[:i], s.userIDs[i+1:]...)
			break
		}
	}
	return true
}

// GetUsers returns every user in insertion order.
func (s *MemoryStore) GetUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.userIDs))
	for _, id := range s.userIDs {
		out = append(out, s.users[id])
	}
	return out
}

// AddPantryItem appends an item to the pantry backing list if not present.
func (s *MemoryStore) AddPantryItem(item string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.pantry {
		if existing == item {
			return
		}
	}
	s.pantry = append(s.pantry, item)
}

// RemovePantryItem removes an item by exact value match.
func (s *MemoryStore) RemovePantryItem(item string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.pantry {
		if existing == item {
			s.pantry = append(s.pantry[:i], s.pantry[i+1:]...)
			return
		}
	}
}

// GetPantryItems returns a copy of the pantry backing list.
func (s *MemoryStore) GetPantryItems() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.pantry))
	copy(out, s.pantry)
	return out
}

// AddPost appends a feed post.
func (s *MemoryStore) AddPost(post models.RecipePost) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append(s.posts, post)
}

// GetPosts returns every feed post, newest first.
func (s *MemoryStore) GetPosts() []models.RecipePost {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.RecipePost, len(s.posts))
	for i, p := range s.posts {
		out[len(s.posts)-1-i] = p
	}
	return out
}

// ClearAll empties every collection. Intended for tests.
func (s *MemoryStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recipes = make(map[string]models.Recipe)
	s.recipeIDs = nil
	s.users = make(map[string]models.User)
	s.userIDs = nil
	s.pantry = nil
	s.posts = nil
}

// SeedData populates the store with example content. It is idempotent: a
// no-op when any recipe already exists. A demo user referencing the first
// two seed recipes is inserted only when no user exists yet.
func (s *MemoryStore) SeedData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.recipeIDs) > 0 {
		return
	}

	seeds := []models.Recipe{
		{
			ID:          "recipe_pbj",
			Title:       "Peanut Butter & Jelly",
			Description: "A classic school lunch",
			Ingredients: []string{"Peanut Butter", "Jelly", "Bread"},
			Tools:       []string{"Toaster", "Knife"},
			Steps: []string{
				"Lightly toast the bread slices for crunch.",
				"Spread peanut butter evenly on one slice using the knife.",
				"Add jelly to the second slice, press together, and slice diagonally.",
			},
			ImageURLs:        []string{"https://static01.nyt.com/images/2024/09/27/multimedia/AS-Griddled-PBJ-qljg/AS-Griddled-PBJ-qljg-googleFourByThree.jpg"},
			TotalTimeMinutes: 5,
			Rating:           4.6,
			Difficulty:       models.DifficultyEasy,
		},
		{
			ID:          "recipe_tacos",
			Title:       "Tacos",
			Description: "A popular Mexican dish",
			Ingredients: []string{"Tortillas", "Ground Beef", "Lettuce", "Salsa", "Sour Cream"},
			Tools:       []string{"Skillet", "Oven"},
			Steps: []string{
				"Brown the ground beef in a skillet and season generously.",
				"Warm the tortillas in the oven until pliable.",
				"Assemble tacos with beef, lettuce, salsa, and sour cream.",
			},
			ImageURLs:        []string{"https://marleyspoon.com/media/recipes/252043/main_photos/large/20-9fc2acc022a5fe4dbdb05419f01eca41.jpeg"},
			TotalTimeMinutes: 30,
			Rating:           4.8,
			Difficulty:       models.DifficultyMedium,
		},
		{
			ID:          "recipe_omelette",
			Title:       "Omelette",
			Description: "A simple breakfast",
			Ingredients: []string{"Eggs", "Cheese", "Breadcrumbs"},
			Tools:       []string{"Mixing Bowl", "Pan", "Spatula"},
			Steps: []string{
				"Whisk eggs with a pinch of salt in the bowl.",
				"Melt butter in a hot pan and pour in the eggs.",
				"When nearly set, add cheese and breadcrumbs, fold, and serve.",
			},
			ImageURLs:        []string{"https://www.healthyfood.com/wp-content/uploads/2018/02/Basic-omelette.jpg"},
			TotalTimeMinutes: 10,
			Rating:           4.4,
			Difficulty:       models.DifficultyEasy,
		},
	}

	for _, recipe := range seeds {
		s.recipes[recipe.ID] = recipe
		s.recipeIDs = append(s.recipeIDs, recipe.ID)
	}

	if len(s.userIDs) == 0 {
		demo := models.User{
			ID:                "f996ece8-009f-4454-b7de-91dee1c8f218",
			Name:              "John Fulkerson",
			Email:             "jtfulky@udel.edu",
			HashedPassword:    "hashed_password",
			ProfilePictureURL: "https://i.pravatar.cc/150?img=12",
			Allergies:         []models.Allergy{},
			SavedRecipes:      seeds[:2],
		}
		s.users[demo.ID] = demo
		s.userIDs = append(s.userIDs, demo.ID)

		for i, recipe := range seeds[:2] {
			s.posts = append(s.posts, models.RecipePost{
				ID:           recipe.ID + "_post",
				RecipeID:     recipe.ID,
				UserName:     demo.Name,
				UserPhotoURL: demo.ProfilePictureURL,
				ImageURL:     recipe.ImageURLs[0],
				Caption:      seedCaptions[i],
				SharedAt:     time.Now(),
			})
		}
	}
}

var seedCaptions = []string{
	"Just made this classic! Simple and always a hit. #recipe",
	"Taco night, the perfect end to the day. Who wants some?",
}
