// Package dashboard maps auctions, activities and shared store state to the
// values shown on the auction board.
package dashboard

import (
	"strconv"
	"time"

	"auction-board/internal/format"
	model "auction-board/internal/models"
)

// Style classes per auction status
const (
	ClassLive      = "text-green-600 bg-green-100"
	ClassUpcoming  = "text-blue-600 bg-blue-100"
	ClassClosed    = "text-gray-600 bg-gray-100"
	ClassCancelled = "text-red-600 bg-red-100"
	ClassDefault   = "text-gray-600 bg-gray-100"
)

// Summary aggregates the auction list for the stat cards
type Summary struct {
	LiveCount     int `json:"live_count"`
	UpcomingCount int `json:"upcoming_count"`
	TotalBids     int `json:"total_bids"`
}

// StatCard is one card of the header row. Live names the store value the page
// keeps current from store events; empty for static cards.
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Live  string `json:"live,omitempty"`
}

// AuctionRow is one formatted row of the listings table
type AuctionRow struct {
	ID              string `json:"id"`
	AuctionNumber   string `json:"auction_number"`
	ItemDescription string `json:"item_description"`
	Category        string `json:"category"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Status          string `json:"status"`
	StatusClass     string `json:"status_class"`
	CurrentBid      string `json:"current_bid"`
	TotalBids       int    `json:"total_bids"`
	HighestBidder   string `json:"highest_bidder,omitempty"`
}

// ActivityItem is one formatted entry of the activity feed
type ActivityItem struct {
	ID           string `json:"id"`
	Icon         string `json:"icon"`
	Description  string `json:"description"`
	RelativeTime string `json:"relative_time"`
}

// View is everything the board page renders
type View struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Summary      Summary        `json:"summary"`
	Cards        []StatCard     `json:"cards"`
	Counter      int64          `json:"counter"`
	TotalUsers   int            `json:"total_users"`
	StoreVersion uint64         `json:"store_version"`
	Auctions     []AuctionRow   `json:"auctions"`
	Activities   []ActivityItem `json:"activities"`
	RenderedAt   time.Time      `json:"rendered_at"`
}

// Summarize counts live and upcoming auctions and sums their bids
func Summarize(auctions []model.Auction) Summary {
	var s Summary
	for _, a := range auctions {
		switch a.Status {
		case model.StatusLive:
			s.LiveCount++
		case model.StatusUpcoming:
			s.UpcomingCount++
		}
		s.TotalBids += a.TotalBids
	}
	return s
}

// StatusClass maps a status to its display class; unknown statuses get ClassDefault
func StatusClass(status string) string {
	switch model.AuctionStatus(status) {
	case model.StatusLive:
		return ClassLive
	case model.StatusUpcoming:
		return ClassUpcoming
	case model.StatusClosed:
		return ClassClosed
	case model.StatusCancelled:
		return ClassCancelled
	default:
		return ClassDefault
	}
}

// ActivityIcon returns the feed icon of an activity type
func ActivityIcon(t model.ActivityType) string {
	switch t {
	case model.ActivityBid:
		return "💰"
	case model.ActivityStart:
		return "🚀"
	case model.ActivityEnd:
		return "⏱️"
	default:
		return "🏆"
	}
}

// BuildView assembles the page; relative times are computed against now
func BuildView(auctions []model.Auction, activities []model.AuctionActivity, state model.StoreState, now time.Time) View {
	summary := Summarize(auctions)

	rows := make([]AuctionRow, 0, len(auctions))
	for _, a := range auctions {
		rows = append(rows, AuctionRow{
			ID:              a.ID,
			AuctionNumber:   a.AuctionNumber,
			ItemDescription: a.ItemDescription,
			Category:        a.Category,
			StartDate:       format.FormatDate(a.StartDate),
			EndDate:         format.FormatDate(a.EndDate),
			Status:          string(a.Status),
			StatusClass:     StatusClass(string(a.Status)),
			CurrentBid:      format.FormatCurrency(a.CurrentBid),
			TotalBids:       a.TotalBids,
			HighestBidder:   a.HighestBidder,
		})
	}

	items := make([]ActivityItem, 0, len(activities))
	for _, act := range activities {
		items = append(items, ActivityItem{
			ID:           act.ID,
			Icon:         ActivityIcon(act.Type),
			Description:  act.Description,
			RelativeTime: format.FormatRelativeTime(act.Timestamp, now),
		})
	}

	return View{
		Title:        "E-Auction Management Module",
		Description:  "Manage customs auctions and bidding with real-time state synchronization",
		Summary:      summary,
		Cards:        statCards(summary, state.Counter.Value),
		Counter:      state.Counter.Value,
		TotalUsers:   state.Users.TotalCount,
		StoreVersion: state.Version,
		Auctions:     rows,
		Activities:   items,
		RenderedAt:   now,
	}
}

func statCards(s Summary, counter int64) []StatCard {
	return []StatCard{
		{Title: "Live Auctions", Value: strconv.Itoa(s.LiveCount), Icon: "🔨", Color: "emerald"},
		{Title: "Upcoming", Value: strconv.Itoa(s.UpcomingCount), Icon: "📅", Color: "blue"},
		{Title: "Total Bids", Value: strconv.Itoa(s.TotalBids), Icon: "💰", Color: "orange"},
		{Title: "Counter (Shared)", Value: strconv.FormatInt(counter, 10), Icon: "🔢", Color: "purple", Live: "counter"},
	}
}
