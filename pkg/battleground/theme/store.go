package theme

import (
	"log/slog"
	"sync"
)

// ChangeFunc is notified after the active theme changes.
type ChangeFunc func(previous, current string)

// Store is the single authoritative theme selector. Select is the only
// writer; everything else reads.
type Store struct {
	mu        sync.RWMutex
	registry  *Registry
	active    string
	version   uint64
	listeners []ChangeFunc
	logger    *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets the logger used for selection changes.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a store selecting initial. An empty initial selects
// DefaultKey, or the first registered key when DefaultKey is absent.
func NewStore(registry *Registry, initial string, opts ...StoreOption) (*Store, error) {
	if initial == "" {
		initial = DefaultKey
		if !registry.Has(initial) {
			initial = registry.keys[0]
		}
	}
	if !registry.Has(initial) {
		return nil, &UnknownThemeError{Key: initial}
	}

	s := &Store{
		registry: registry,
		active:   initial,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Registry returns the registry the store validates against.
func (s *Store) Registry() *Registry {
	return s.registry
}

// Active returns the active theme key.
func (s *Store) Active() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Definition returns the active theme definition.
func (s *Store) Definition() Definition {
	d, _ := s.registry.Get(s.Active())
	return d
}

// Version increments on every effective change.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Select makes key the active theme. Unknown keys are rejected with an
// *UnknownThemeError and leave the state unchanged. Selecting the active
// key is a no-op.
func (s *Store) Select(key string) error {
	if !s.registry.Has(key) {
		s.logger.Warn("Rejected theme selection", "key", key)
		return &UnknownThemeError{Key: key}
	}

	s.mu.Lock()
	previous := s.active
	if previous == key {
		s.mu.Unlock()
		return nil
	}
	s.active = key
	s.version++
	listeners := make([]ChangeFunc, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	s.logger.Debug("Theme selected", "previous", previous, "current", key)

	for _, fn := range listeners {
		fn(previous, key)
	}
	return nil
}

// SelectIndex selects the theme at registration position i.
func (s *Store) SelectIndex(i int) error {
	if i < 0 || i >= len(s.registry.keys) {
		return &UnknownThemeError{Key: ""}
	}
	return s.Select(s.registry.keys[i])
}

// Cycle selects the theme delta positions away from the active one,
// wrapping around the registration order.
func (s *Store) Cycle(delta int) error {
	n := s.registry.Len()
	i := s.registry.Index(s.Active())
	next := ((i+delta)%n + n) % n
	return s.Select(s.registry.keys[next])
}

// OnChange registers fn to run after every effective change.
func (s *Store) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
