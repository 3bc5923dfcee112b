package store

import (
	"context"
	"sync"

	model "auction-board/internal/models"
	"auction-board/utils"
)

// MemoryStore is a process-local Store. Its operations never fail.
type MemoryStore struct {
	// dispatchMu serializes mutate+notify so listeners see versions in order
	dispatchMu sync.Mutex

	mu      sync.RWMutex
	counter int64
	users   []model.User
	version uint64

	origin    string
	listeners *listenerSet
}

// Option configures a store at construction
type Option func(*options)

type options struct {
	origin       string
	initialUsers []model.User
}

// WithOrigin sets the identifier stamped on events issued by this store instance
func WithOrigin(origin string) Option {
	return func(o *options) { o.origin = origin }
}

// WithInitialUsers replaces the registry content a fresh store starts with
func WithInitialUsers(users ...model.User) Option {
	return func(o *options) { o.initialUsers = copyUsers(users) }
}

func buildOptions(opts []Option) options {
	o := options{
		origin:       utils.GenerateID(),
		initialUsers: DefaultInitialUsers(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewMemoryStore creates a store with a zero counter and the initial user records
func NewMemoryStore(opts ...Option) *MemoryStore {
	o := buildOptions(opts)
	return &MemoryStore{
		users:     o.initialUsers,
		origin:    o.origin,
		listeners: newListenerSet(),
	}
}

// Origin returns the identifier stamped on this store's events
func (s *MemoryStore) Origin() string {
	return s.origin
}

// Increment raises the counter by exactly one
func (s *MemoryStore) Increment(ctx context.Context) (model.CounterState, error) {
	state := s.apply(model.ActionIncrement, func() { s.counter++ })
	return state.Counter, nil
}

// Decrement lowers the counter by exactly one. There is no floor.
func (s *MemoryStore) Decrement(ctx context.Context) (model.CounterState, error) {
	state := s.apply(model.ActionDecrement, func() { s.counter-- })
	return state.Counter, nil
}

// Reset sets the counter to zero
func (s *MemoryStore) Reset(ctx context.Context) (model.CounterState, error) {
	state := s.apply(model.ActionReset, func() { s.counter = 0 })
	return state.Counter, nil
}

// Counter returns the current counter value
func (s *MemoryStore) Counter(ctx context.Context) (model.CounterState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CounterState{Value: s.counter}, nil
}

// AddUser appends user to the registry. Uniqueness of the id is not checked.
func (s *MemoryStore) AddUser(ctx context.Context, user model.User) (model.UsersState, error) {
	state := s.apply(model.ActionAddUser, func() { s.users = append(s.users, user) })
	return state.Users, nil
}

// Users returns the registry records in append order
func (s *MemoryStore) Users(ctx context.Context) (model.UsersState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersLocked(), nil
}

// State returns a snapshot of the whole store
func (s *MemoryStore) State(ctx context.Context) (model.StoreState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked(), nil
}

// Subscribe registers l for every subsequent mutation
func (s *MemoryStore) Subscribe(l Listener) func() {
	return s.listeners.add(l)
}

func (s *MemoryStore) apply(action model.StoreAction, mutate func()) model.StoreState {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	mutate()
	s.version++
	state := s.stateLocked()
	s.mu.Unlock()

	utils.Debug("store: mutation applied", map[string]any{
		"action":  string(action),
		"version": state.Version,
	})

	s.listeners.notify(model.StoreEvent{Action: action, State: state, Origin: s.origin})
	return state
}

func (s *MemoryStore) usersLocked() model.UsersState {
	return model.UsersState{TotalCount: len(s.users), Records: copyUsers(s.users)}
}

func (s *MemoryStore) stateLocked() model.StoreState {
	return model.StoreState{
		Counter: model.CounterState{Value: s.counter},
		Users:   s.usersLocked(),
		Version: s.version,
	}
}
