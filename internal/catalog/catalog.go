package catalog

import (
	"auction-board/internal/boarderrors"
	model "auction-board/internal/models"
	"auction-board/utils"
	"fmt"
	"sync"
)

// AuctionCatalog defines the read-only data source of auctions and activities
type AuctionCatalog interface {
	ListAuctions() []model.Auction
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctionsByStatus(status model.AuctionStatus) ([]model.Auction, error)
	ListActivities() []model.AuctionActivity
}

// MemoryCatalog is a concurrency-safe in-memory implementation of AuctionCatalog
type MemoryCatalog struct {
	mu         sync.RWMutex
	auctions   []model.Auction          // load order
	byID       map[string]int           // key: auctionID -> index into auctions
	activities []model.AuctionActivity // newest first
}

// NewMemoryCatalog creates an empty catalog
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		byID: make(map[string]int),
	}
}

// ListAuctions returns every auction in load order
func (c *MemoryCatalog) ListAuctions() []model.Auction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Auction(nil), c.auctions...)
}

// GetAuction returns one auction by id
func (c *MemoryCatalog) GetAuction(auctionID string) (model.Auction, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.byID[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, boarderrors.ErrAuctionNotFound)
	}
	return c.auctions[idx], nil
}

// ListAuctionsByStatus returns the auctions whose status equals status, in load order
func (c *MemoryCatalog) ListAuctionsByStatus(status model.AuctionStatus) ([]model.Auction, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("list auctions with status %q: %w", status, boarderrors.ErrUnknownStatus)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Auction, 0, len(c.auctions))
	for _, a := range c.auctions {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListActivities returns the activity feed
func (c *MemoryCatalog) ListActivities() []model.AuctionActivity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.AuctionActivity(nil), c.activities...)
}

// AddAuction loads an auction. A record reusing an existing id replaces it in place.
// Inconsistent bids or dates are logged and kept; they are display-only fields.
func (c *MemoryCatalog) AddAuction(a model.Auction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if a.CurrentBid < a.StartingBid {
		utils.Warn("catalog: current bid below starting bid", map[string]any{
			"auction_id":   a.ID,
			"starting_bid": a.StartingBid,
			"current_bid":  a.CurrentBid,
		})
	}
	// ISO dates compare correctly as strings
	if a.StartDate > a.EndDate {
		utils.Warn("catalog: auction ends before it starts", map[string]any{
			"auction_id": a.ID,
			"start_date": a.StartDate,
			"end_date":   a.EndDate,
		})
	}

	if idx, ok := c.byID[a.ID]; ok {
		c.auctions[idx] = a
		return
	}
	c.byID[a.ID] = len(c.auctions)
	c.auctions = append(c.auctions, a)
}

// AddActivity appends an entry to the activity feed
func (c *MemoryCatalog) AddActivity(a model.AuctionActivity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activities = append(c.activities, a)
}
