package models

import "time"

// AuctionStatus is the lifecycle state of an auction lot
type AuctionStatus string

const (
	StatusUpcoming  AuctionStatus = "Upcoming"
	StatusLive      AuctionStatus = "Live"
	StatusClosed    AuctionStatus = "Closed"
	StatusCancelled AuctionStatus = "Cancelled"
)

// AuctionStatuses lists every known status in display order
var AuctionStatuses = []AuctionStatus{StatusUpcoming, StatusLive, StatusClosed, StatusCancelled}

// Valid reports whether s is one of the known statuses
func (s AuctionStatus) Valid() bool {
	for _, known := range AuctionStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Auction represents one auction lot
type Auction struct {
	ID              string        `json:"id"`
	AuctionNumber   string        `json:"auction_number"`
	ItemDescription string        `json:"item_description"`
	Category        string        `json:"category"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	Status          AuctionStatus `json:"status"`
	StartingBid     int64         `json:"starting_bid"`
	CurrentBid      int64         `json:"current_bid"`
	TotalBids       int           `json:"total_bids"`
	HighestBidder   string        `json:"highest_bidder,omitempty"`
}

// ActivityType classifies an entry of the activity feed
type ActivityType string

const (
	ActivityBid    ActivityType = "bid"
	ActivityStart  ActivityType = "start"
	ActivityEnd    ActivityType = "end"
	ActivityWinner ActivityType = "winner"
)

// AuctionActivity is one historical auction event
type AuctionActivity struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	Type        ActivityType `json:"type"`
}

// User is a record of the shared user registry
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CounterState is the observable value of the shared counter
type CounterState struct {
	Value int64 `json:"value"`
}

// UsersState is the observable value of the shared user registry
type UsersState struct {
	TotalCount int    `json:"total_count"`
	Records    []User `json:"records"`
}

// StoreState is an immutable snapshot of the whole shared store.
// Version grows by one for every applied mutation.
type StoreState struct {
	Counter CounterState `json:"counter"`
	Users   UsersState   `json:"users"`
	Version uint64       `json:"version"`
}

// StoreAction names a mutation of the shared store
type StoreAction string

const (
	ActionIncrement StoreAction = "counter/increment"
	ActionDecrement StoreAction = "counter/decrement"
	ActionReset     StoreAction = "counter/reset"
	ActionAddUser   StoreAction = "users/addUser"
)

// StoreEvent is delivered to subscribers after a mutation has been applied.
// Resync marks an event whose version is not above the previous one because
// the backing store lost its data; subscribers take it as the new baseline.
type StoreEvent struct {
	Action StoreAction `json:"action"`
	State  StoreState  `json:"state"`
	Origin string      `json:"origin"`
	Resync bool        `json:"resync,omitempty"`
}
