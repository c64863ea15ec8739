package helpers

import "car-auction-manager/internal/models"

// Request/Response DTOs
type AddVehicleRequest struct {
	VIN           string  `json:"vin" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Manufacturer  string  `json:"manufacturer" binding:"required"`
	Model         string  `json:"model" binding:"required"`
	Year          int     `json:"year" binding:"required"`
	NumberOfDoors int     `json:"number_of_doors,omitempty"`
	NumberOfSeats int     `json:"number_of_seats,omitempty"`
	LoadCapacity  float64 `json:"load_capacity,omitempty"`
}

type CreateVehicleResponse struct {
	VIN string `json:"vin"`
}

type CreateBidderRequest struct {
	Name string `json:"name" binding:"required"`
}

type BidderResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateAuctionRequest struct {
	VIN     string   `json:"vin" binding:"required"`
	Bidders []string `json:"bidders" binding:"required"`
}

type PlaceBidRequest struct {
	AuctionID string  `json:"auction_id" binding:"required"`
	BidderID  string  `json:"bidder_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type AuctionResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	VehicleVIN      string   `json:"vehicle_vin"`
	StartingBid     float64  `json:"starting_bid"`
	CurrentBid      float64  `json:"current_bid"`
	HighestBidder   string   `json:"highest_bidder,omitempty"`
	EligibleBidders []string `json:"eligible_bidders"`
	State           string   `json:"state"`
	HammerPrice     float64  `json:"hammer_price,omitempty"`
	Sold            bool     `json:"sold"`
}

// ToAuctionResponse maps a domain auction to its transport representation
func ToAuctionResponse(a models.Auction) AuctionResponse {
	resp := AuctionResponse{
		ID:              a.ID.String(),
		Name:            a.Name,
		VehicleVIN:      a.VehicleVIN,
		StartingBid:     a.StartingBid,
		CurrentBid:      a.CurrentBid,
		EligibleBidders: make([]string, 0, len(a.EligibleBidders)),
		State:           string(a.State),
		HammerPrice:     a.HammerPrice,
		Sold:            a.Sold,
	}
	for _, id := range a.EligibleBidders {
		resp.EligibleBidders = append(resp.EligibleBidders, id.String())
	}
	if a.HighestBidder != nil {
		resp.HighestBidder = a.HighestBidder.String()
	}
	return resp
}
