package cart

import "sync"

// Entry is one cart line: a product reference and how many units of it.
type Entry struct {
	ProductID uint
	Quantity  int
}

// Store holds the current cart as a quantity per product, preserving the
// order in which products were first added. It knows nothing about the
// catalog or pricing; callers re-resolve and re-price after every mutation.
//
// The pricing path itself is single-session, but the store sits behind
// concurrently served HTTP handlers, hence the mutex.
type Store struct {
	mu      sync.Mutex
	entries []Entry
	index   map[uint]int // productID -> position in entries
}

func NewStore() *Store {
	return &Store{
		index: make(map[uint]int),
	}
}

// AddOne increments the quantity for a product, inserting a new entry at
// quantity 1 if absent. It never fails: unknown product IDs are accepted here
// and dropped later during resolution against the catalog.
func (s *Store) AddOne(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pos, ok := s.index[productID]; ok {
		s.entries[pos].Quantity++
		return
	}
	s.index[productID] = len(s.entries)
	s.entries = append(s.entries, Entry{ProductID: productID, Quantity: 1})
}

// RemoveOne decrements the quantity for a product, deleting the entry once it
// reaches zero. Removing an absent product is a no-op.
func (s *Store) RemoveOne(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[productID]
	if !ok {
		return
	}
	s.entries[pos].Quantity--
	if s.entries[pos].Quantity > 0 {
		return
	}

	s.entries = append(s.entries[:pos], s.entries[pos+1:]...)
	delete(s.index, productID)
	for i := pos; i < len(s.entries); i++ {
		s.index[s.entries[i].ProductID] = i
	}
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.index = make(map[uint]int)
}

// Entries returns a copy of the current entries in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ItemCount returns the sum of quantities across all entries.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, e := range s.entries {
		total += e.Quantity
	}
	return total
}
