package service

import (
	"strings"
	"sync"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/store"
)

// PantryService keeps the user's current ingredient inventory: an ordered,
// trimmed, case-sensitively deduplicated list with most-recent-first
// ordering. Additions and removals are mirrored into the backing store so a
// new service instance can restore the pantry within a process session.
type PantryService struct {
	mu              sync.Mutex
	items           []string
	store           *store.MemoryStore
	suggestionLimit int
}

// NewPantryService creates a pantry initialized from whatever the backing
// store currently holds.
func NewPantryService(st *store.MemoryStore, suggestionLimit int) *PantryService {
	return &PantryService{
		items:           st.GetPantryItems(),
		store:           st,
		suggestionLimit: suggestionLimit,
	}
}

// AddItem trims the item, ignores blanks and exact duplicates, and inserts
// at the front.
func (p *PantryService) AddItem(item string) {
	normalized := strings.TrimSpace(item)
	if normalized == "" {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, existing := range p.items {
		if existing == normalized {
			return
		}
	}

	p.items = append([]string{normalized}, p.items...)
	p.store.AddPantryItem(normalized)
}

// AddItems applies AddItem to each element. Items are processed in reverse
// so the input list's relative order survives at the front of the pantry.
func (p *PantryService) AddItems(items []string) {
	for i := len(items) - 1; i >= 0; i-- {
		p.AddItem(items[i])
	}
}

// RemoveItem removes by exact value match and mirrors the removal.
func (p *PantryService) RemoveItem(item string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, existing := range p.items {
		if existing == item {
			p.items = append(p.items[:i], p.items[i+1:]...)
			p.store.RemovePantryItem(item)
			return true
		}
	}
	return false
}

// Items returns a copy of the pantry, most recent first.
func (p *PantryService) Items() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, len(p.items))
	copy(out, p.items)
	return out
}

// Suggest returns up to the configured limit of pantry items containing the
// query, case-insensitively. A blank query yields nothing.
func (p *PantryService) Suggest(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	lowered := strings.ToLower(query)

	p.mu.Lock()
	defer p.mu.Unlock()

	var out []string
	for _, item := range p.items {
		if strings.Contains(strings.ToLower(item), lowered) {
			out = append(out, item)
			if len(out) == p.suggestionLimit {
				break
			}
		}
	}
	return out
}
