package goals

import "sync"

// Store holds the current goal. It is safe for concurrent use; every reader
// sees one complete value and the last Set wins.
type Store struct {
	mu   sync.RWMutex
	goal string
}

func NewStore(initial string) *Store {
	return &Store{goal: initial}
}

func (s *Store) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.goal
}

// Set replaces the goal and returns the previous value.
func (s *Store) Set(goal string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.goal
	s.goal = goal
	return prev
}
