package models

import (
	"strings"

	"github.com/google/uuid"
)

// Category is the closed set of vehicle categories that can be auctioned.
type Category string

const (
	CategorySedan     Category = "Sedan"
	CategoryHatchback Category = "Hatchback"
	CategorySUV       Category = "SUV"
	CategoryTruck     Category = "Truck"
)

// Categories lists every valid vehicle category.
func Categories() []Category {
	return []Category{CategorySedan, CategoryHatchback, CategorySUV, CategoryTruck}
}

// ParseCategory maps request input to a Category, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// Vehicle represents a vehicle held in the catalog. Exactly one of the
// category attribute fields is meaningful, selected by Category.
type Vehicle struct {
	VIN           string   `json:"vin"`
	Manufacturer  string   `json:"manufacturer"`
	Model         string   `json:"model"`
	Year          int      `json:"year"`
	Category      Category `json:"category"`
	NumberOfDoors int      `json:"number_of_doors,omitempty"` // Sedan, Hatchback
	NumberOfSeats int      `json:"number_of_seats,omitempty"` // SUV
	LoadCapacity  float64  `json:"load_capacity,omitempty"`   // Truck
}

// Bidder represents a registered auction participant.
type Bidder struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AuctionState is the lifecycle state of an auction.
type AuctionState string

const (
	AuctionCreated AuctionState = "CREATED"
	AuctionActive  AuctionState = "ACTIVE"
	AuctionEnded   AuctionState = "ENDED"
)

// Auction represents a single vehicle auction. The eligible bidder set is
// fixed at creation; CurrentBid never decreases while the auction is active.
type Auction struct {
	ID              uuid.UUID    `json:"id"`
	Name            string       `json:"name"`
	VehicleVIN      string       `json:"vehicle_vin"`
	StartingBid     float64      `json:"starting_bid"`
	CurrentBid      float64      `json:"current_bid"`
	HighestBidder   *uuid.UUID   `json:"highest_bidder,omitempty"`
	EligibleBidders []uuid.UUID  `json:"eligible_bidders"`
	State           AuctionState `json:"state"`
	HammerPrice     float64      `json:"hammer_price,omitempty"`
	Sold            bool         `json:"sold"`
}

// IsActive reports whether the auction is accepting bids.
func (a *Auction) IsActive() bool {
	return a.State == AuctionActive
}

// IsEligible reports whether bidderID belongs to the auction's closed bidder set.
func (a *Auction) IsEligible(bidderID uuid.UUID) bool {
	for _, id := range a.EligibleBidders {
		if id == bidderID {
			return true
		}
	}
	return false
}
