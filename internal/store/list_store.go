// Package store owns the in-memory shopping list. The interpreter core only
// reads snapshots of it or returns instructions to mutate it; all mutation
// happens here, behind a single lock.
package store

import (
	"sync"

	"github.com/foxxcyber/voice-cart/internal/models"
)

// ListStore is a mutex-guarded in-memory shopping list.
type ListStore struct {
	mu    sync.RWMutex
	items []models.ShoppingItem
}

// NewListStore creates an empty list.
func NewListStore() *ListStore {
	return &ListStore{}
}

// Items returns a snapshot copy of the list in insertion order.
func (s *ListStore) Items() []models.ShoppingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ShoppingItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items.
func (s *ListStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Add appends an item. Duplicate names are allowed; ids are unique.
func (s *ListStore) Add(item models.ShoppingItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Remove deletes the item with the given id, reporting whether it existed.
func (s *ListStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Update applies a partial update to the item with the given id and returns
// the updated item, or nil when the id is unknown.
func (s *ListStore) Update(id string, req models.UpdateItemRequest) *models.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		item := &s.items[i]
		if req.Name != nil {
			item.Name = *req.Name
		}
		if req.Quantity != nil && *req.Quantity > 0 {
			item.Quantity = *req.Quantity
		}
		if req.Unit != nil {
			item.Unit = *req.Unit
		}
		if req.Category != nil {
			item.Category = *req.Category
		}
		if req.IsCompleted != nil {
			item.IsCompleted = *req.IsCompleted
		}
		if req.Notes != nil {
			item.Notes = req.Notes
		}
		if req.Price != nil {
			item.Price = req.Price
		}
		if req.Brand != nil {
			item.Brand = req.Brand
		}
		updated := *item
		return &updated
	}
	return nil
}

// Toggle flips an item's completed flag and returns the updated item, or nil
// when the id is unknown.
func (s *ListStore) Toggle(id string) *models.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].IsCompleted = !s.items[i].IsCompleted
			updated := s.items[i]
			return &updated
		}
	}
	return nil
}

// Clear empties the list and returns how many items were removed.
func (s *ListStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.items)
	s.items = nil
	return n
}
