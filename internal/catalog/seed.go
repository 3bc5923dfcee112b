package catalog

import (
	model "auction-board/internal/models"
	"time"
)

// DefaultAuctions is the fixed auction data set shown on the board
func DefaultAuctions() []model.Auction {
	return []model.Auction{
		{
			ID: "1", AuctionNumber: "AUC-2024-001",
			ItemDescription: "Confiscated Electronics (Laptops, Phones)", Category: "Electronics",
			StartDate: "2024-12-20", EndDate: "2024-12-27", Status: model.StatusLive,
			StartingBid: 50000, CurrentBid: 125000, TotalBids: 15, HighestBidder: "TechBuy Corp.",
		},
		{
			ID: "2", AuctionNumber: "AUC-2024-002",
			ItemDescription: "Seized Luxury Vehicles (2 Cars)", Category: "Vehicles",
			StartDate: "2024-12-22", EndDate: "2024-12-29", Status: model.StatusLive,
			StartingBid: 500000, CurrentBid: 750000, TotalBids: 8, HighestBidder: "AutoDealer Ltd.",
		},
		{
			ID: "3", AuctionNumber: "AUC-2024-003",
			ItemDescription: "Industrial Machinery Parts", Category: "Industrial",
			StartDate: "2024-12-25", EndDate: "2025-01-02", Status: model.StatusUpcoming,
			StartingBid: 100000, CurrentBid: 100000, TotalBids: 0,
		},
		{
			ID: "4", AuctionNumber: "AUC-2023-045",
			ItemDescription: "Confiscated Jewelry and Watches", Category: "Jewelry",
			StartDate: "2023-12-10", EndDate: "2023-12-17", Status: model.StatusClosed,
			StartingBid: 200000, CurrentBid: 450000, TotalBids: 23, HighestBidder: "Luxury Gems Inc.",
		},
		{
			ID: "5", AuctionNumber: "AUC-2024-004",
			ItemDescription: "Furniture and Household Items", Category: "Household",
			StartDate: "2024-12-15", EndDate: "2024-12-22", Status: model.StatusClosed,
			StartingBid: 25000, CurrentBid: 35000, TotalBids: 5, HighestBidder: "HomeMart",
		},
		{
			ID: "6", AuctionNumber: "AUC-2024-005",
			ItemDescription: "Textile and Fabric Materials", Category: "Textiles",
			StartDate: "2024-12-18", EndDate: "2024-12-20", Status: model.StatusCancelled,
			StartingBid: 75000, CurrentBid: 75000, TotalBids: 0,
		},
	}
}

// DefaultActivities is the fixed activity feed, timestamped relative to loadedAt
func DefaultActivities(loadedAt time.Time) []model.AuctionActivity {
	return []model.AuctionActivity{
		{ID: "1", Description: "New bid placed on AUC-2024-001 - ₹125,000", Timestamp: loadedAt.Add(-30 * time.Minute), Type: model.ActivityBid},
		{ID: "2", Description: "Auction started: AUC-2024-002", Timestamp: loadedAt.Add(-2 * time.Hour), Type: model.ActivityStart},
		{ID: "3", Description: "New bid placed on AUC-2024-002 - ₹750,000", Timestamp: loadedAt.Add(-3 * time.Hour), Type: model.ActivityBid},
		{ID: "4", Description: "Auction ended: AUC-2024-004 - Winner: HomeMart", Timestamp: loadedAt.Add(-24 * time.Hour), Type: model.ActivityWinner},
	}
}

// NewSeededCatalog returns a catalog loaded with the default data set
func NewSeededCatalog(loadedAt time.Time) *MemoryCatalog {
	c := NewMemoryCatalog()
	for _, a := range DefaultAuctions() {
		c.AddAuction(a)
	}
	for _, a := range DefaultActivities(loadedAt) {
		c.AddActivity(a)
	}
	return c
}
