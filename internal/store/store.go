// Package store holds the shared counter and user registry observed by every
// dashboard module.
//
// A Store is an explicit, injectable state container. Mutations are applied in
// the order they are issued and each applied mutation is delivered to every
// subscribed Listener, synchronously and in order, before the mutating call
// returns. Two increments always net +2; nothing is coalesced.
package store

import (
	"context"
	"fmt"
	"sync"

	model "auction-board/internal/models"
)

// Listener receives one event per applied mutation.
// A listener must not mutate the store that is calling it.
type Listener func(event model.StoreEvent)

// Store is the shared cross-module state contract
type Store interface {
	Increment(ctx context.Context) (model.CounterState, error)
	Decrement(ctx context.Context) (model.CounterState, error)
	Reset(ctx context.Context) (model.CounterState, error)
	Counter(ctx context.Context) (model.CounterState, error)
	AddUser(ctx context.Context, user model.User) (model.UsersState, error)
	Users(ctx context.Context) (model.UsersState, error)
	State(ctx context.Context) (model.StoreState, error)
	Subscribe(l Listener) (unsubscribe func())
}

// DefaultInitialUsers is the registry content a fresh store starts with
func DefaultInitialUsers() []model.User {
	return InitialUsers(1)
}

// InitialUsers returns n seed records: the administrator first, then customs officers
func InitialUsers(n int) []model.User {
	users := make([]model.User, 0, n)
	for i := 0; i < n; i++ {
		if i == 0 {
			users = append(users, model.User{ID: "admin-001", Name: "System Administrator", Email: "admin@customs.gov", Role: "Admin"})
			continue
		}
		users = append(users, model.User{
			ID:    fmt.Sprintf("officer-%03d", i),
			Name:  fmt.Sprintf("Customs Officer %d", i),
			Email: fmt.Sprintf("officer%03d@customs.gov", i),
			Role:  "Officer",
		})
	}
	return users
}

// listenerSet keeps listeners in subscription order
type listenerSet struct {
	mu     sync.RWMutex
	nextID uint64
	order  []uint64
	fns    map[uint64]Listener
}

func newListenerSet() *listenerSet {
	return &listenerSet{fns: make(map[uint64]Listener)}
}

func (s *listenerSet) add(l Listener) func() {
	if l == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.order = append(s.order, id)
	s.fns[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *listenerSet) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.fns, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func (s *listenerSet) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// notify copies the listeners before calling them so a listener may unsubscribe itself
func (s *listenerSet) notify(ev model.StoreEvent) {
	s.mu.RLock()
	fns := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		fns = append(fns, s.fns[id])
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func copyUsers(users []model.User) []model.User {
	return append(make([]model.User, 0, len(users)), users...)
}
