package board

import (
	"auction-board/internal/boarderrors"
	"auction-board/internal/catalog"
	"auction-board/internal/dashboard"
	"auction-board/internal/models"
	"auction-board/internal/store"
	"auction-board/utils"
	"context"
	"fmt"
	"strings"
	"time"
)

// AuctioneerRole is the role given to users created by AddAuctioneer
const AuctioneerRole = "Auctioneer"

// maxIDAttempts bounds regeneration when a generated ID is already registered
const maxIDAttempts = 3

// BoardService defines the business logic behind the auction board
type BoardService struct {
	catalog catalog.AuctionCatalog
	store   store.Store
	now     func() time.Time
	newID   func() string
}

// NewBoardService creates a new BoardService instance
func NewBoardService(c catalog.AuctionCatalog, s store.Store) *BoardService {
	return &BoardService{
		catalog: c,
		store:   s,
		now:     time.Now,
		newID:   utils.GenerateID,
	}
}

// WithClock replaces the clock used for relative times
func (s *BoardService) WithClock(now func() time.Time) *BoardService {
	s.now = now
	return s
}

// WithIDGenerator replaces the generator used for missing user IDs
func (s *BoardService) WithIDGenerator(newID func() string) *BoardService {
	s.newID = newID
	return s
}

// Dashboard builds the full board view from the catalog and the shared store
func (s *BoardService) Dashboard(ctx context.Context) (dashboard.View, error) {
	state, err := s.store.State(ctx)
	if err != nil {
		return dashboard.View{}, fmt.Errorf("service: failed to read shared state: %w", err)
	}
	return dashboard.BuildView(s.catalog.ListAuctions(), s.catalog.ListActivities(), state, s.now()), nil
}

// Auctions returns every auction, or only those with the given status when it is not empty
func (s *BoardService) Auctions(ctx context.Context, status string) ([]models.Auction, error) {
	if status == "" {
		return s.catalog.ListAuctions(), nil
	}

	auctions, err := s.catalog.ListAuctionsByStatus(models.AuctionStatus(status))
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// Auction returns a single auction
func (s *BoardService) Auction(ctx context.Context, auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", boarderrors.ErrAuctionNotFound)
	}

	auction, err := s.catalog.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// Activities returns the activity feed
func (s *BoardService) Activities(ctx context.Context) ([]models.AuctionActivity, error) {
	return s.catalog.ListActivities(), nil
}

// Counter returns the shared counter
func (s *BoardService) Counter(ctx context.Context) (models.CounterState, error) {
	counter, err := s.store.Counter(ctx)
	if err != nil {
		return models.CounterState{}, fmt.Errorf("service: failed to read counter: %w", err)
	}
	return counter, nil
}

// IncrementCounter raises the shared counter by one
func (s *BoardService) IncrementCounter(ctx context.Context) (models.CounterState, error) {
	counter, err := s.store.Increment(ctx)
	if err != nil {
		return models.CounterState{}, fmt.Errorf("service: failed to increment counter: %w", err)
	}
	return counter, nil
}

// DecrementCounter lowers the shared counter by one
func (s *BoardService) DecrementCounter(ctx context.Context) (models.CounterState, error) {
	counter, err := s.store.Decrement(ctx)
	if err != nil {
		return models.CounterState{}, fmt.Errorf("service: failed to decrement counter: %w", err)
	}
	return counter, nil
}

// ResetCounter sets the shared counter to zero
func (s *BoardService) ResetCounter(ctx context.Context) (models.CounterState, error) {
	counter, err := s.store.Reset(ctx)
	if err != nil {
		return models.CounterState{}, fmt.Errorf("service: failed to reset counter: %w", err)
	}
	return counter, nil
}

// Users returns the shared user registry
func (s *BoardService) Users(ctx context.Context) (models.UsersState, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return models.UsersState{}, fmt.Errorf("service: failed to read users: %w", err)
	}
	return users, nil
}

// AddUser validates and appends a user to the shared registry.
// A missing ID is generated; the returned user carries the stored values.
func (s *BoardService) AddUser(ctx context.Context, user models.User) (models.User, models.UsersState, error) {
	user = normalizeUser(user)
	if err := validateUser(user); err != nil {
		return models.User{}, models.UsersState{}, err
	}
	if user.ID == "" {
		id, err := s.freshID(ctx)
		if err != nil {
			return models.User{}, models.UsersState{}, err
		}
		user.ID = id
	}

	users, err := s.store.AddUser(ctx, user)
	if err != nil {
		return models.User{}, models.UsersState{}, fmt.Errorf("service: failed to add user %s: %w", user.ID, err)
	}
	return user, users, nil
}

// AddAuctioneer appends a generated auctioneer to the shared registry
func (s *BoardService) AddAuctioneer(ctx context.Context) (models.User, models.UsersState, error) {
	id, err := s.freshID(ctx)
	if err != nil {
		return models.User{}, models.UsersState{}, err
	}
	return s.AddUser(ctx, NewAuctioneer(id))
}

// freshID generates an ID that no registered user carries yet.
// Explicit IDs supplied by callers are stored as given.
func (s *BoardService) freshID(ctx context.Context) (string, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return "", fmt.Errorf("service: failed to read users: %w", err)
	}

	taken := make(map[string]struct{}, len(users.Records))
	for _, u := range users.Records {
		taken[u.ID] = struct{}{}
	}

	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		id := s.newID()
		if _, ok := taken[id]; !ok {
			return id, nil
		}
		utils.Warn("service: generated user ID already registered", map[string]any{"id": id, "attempt": attempt})
	}
	return "", fmt.Errorf("service: %w - no free ID after %d attempts", boarderrors.ErrIDCollision, maxIDAttempts)
}

// NewAuctioneer builds the auctioneer record for id
func NewAuctioneer(id string) models.User {
	short := utils.ShortID(id, 9)
	return models.User{
		ID:    id,
		Name:  "Auctioneer " + short,
		Email: "auctioneer" + short + "@customs.gov",
		Role:  AuctioneerRole,
	}
}

func normalizeUser(u models.User) models.User {
	return models.User{
		ID:    strings.TrimSpace(u.ID),
		Name:  strings.TrimSpace(u.Name),
		Email: strings.TrimSpace(u.Email),
		Role:  strings.TrimSpace(u.Role),
	}
}

// validateUser checks that the record is fully formed
func validateUser(u models.User) error {
	if u.Name == "" || u.Email == "" || u.Role == "" {
		return fmt.Errorf("service: %w - name, email and role are required", boarderrors.ErrInvalidUser)
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("service: %w - malformed email %q", boarderrors.ErrInvalidUser, u.Email)
	}
	return nil
}
