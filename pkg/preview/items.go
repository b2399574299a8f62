package preview

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vango-dev/hxattr/internal/errors"
)

// Item is one entry of the demo list.
type Item struct {
	ID   string
	Text string
}

// itemStore keeps the demo list in memory, in insertion order.
type itemStore struct {
	mu    sync.RWMutex
	items []Item
}

func (s *itemStore) add(text string) Item {
	item := Item{ID: uuid.NewString(), Text: text}
	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
	return item
}

// remove deletes the item with id. It returns false when no item matched.
func (s *itemStore) remove(id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, errors.New(errors.ErrInvalidItemID).
			WithDetail("Item ids are UUIDs, got " + id + ".").
			Wrap(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *itemStore) list() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}
