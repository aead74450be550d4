package profile

import "sync"

// Store holds the current in-memory Profile, the single source of
// truth for every view, and notifies a listener after each change so
// persistence can be scheduled. Updates are functional (previous value
// to next value), which rules out lost updates from overlapping
// in-flight changes.
type Store struct {
	mu       sync.Mutex
	current  Profile
	listener func(Profile)
}

// NewStore creates a Store seeded with the given Profile.
func NewStore(initial Profile) *Store {
	return &Store{current: initial}
}

// Get returns the current Profile value.
func (s *Store) Get() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set applies fn to the current value and installs the result. The
// listener, when set, observes the new value after the swap.
func (s *Store) Set(fn func(Profile) Profile) Profile {
	s.mu.Lock()
	next := fn(s.current)
	s.current = next
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener(next)
	}
	return next
}

// Replace installs a whole replacement value.
func (s *Store) Replace(p Profile) Profile {
	return s.Set(func(Profile) Profile { return p })
}

// OnChange registers the change listener. Only one listener is
// supported; the persistence watcher owns it.
func (s *Store) OnChange(fn func(Profile)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = fn
}
