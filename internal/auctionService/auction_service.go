package auction

import (
	"fmt"

	"car-auction-manager/internal/auctionerrors"
	"car-auction-manager/internal/models"
	"car-auction-manager/internal/repository"
	"car-auction-manager/internal/search"
	"car-auction-manager/utils"

	"github.com/google/uuid"
)

// AuctionService owns the auction lifecycle: it resolves the entities an
// operation references, then delegates the state transition to the auction
// store, whose methods are atomic with respect to the invariants they protect.
type AuctionService struct {
	auctions repository.AuctionDB
	vehicles repository.VehicleDB
	bidders  repository.BidderDB
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(auctions repository.AuctionDB, vehicles repository.VehicleDB, bidders repository.BidderDB) *AuctionService {
	return &AuctionService{
		auctions: auctions,
		vehicles: vehicles,
		bidders:  bidders,
	}
}

// CreateAuction registers a new auction for the vehicle in the Created state
// with a closed set of eligible bidders. The whole list is validated for empty
// ids before any registry lookup; after that resolution is fail-fast, the
// first unknown bidder aborts the operation before anything is inserted.
func (s *AuctionService) CreateAuction(vin string, bidderIDs []uuid.UUID) (models.Auction, error) {
	if len(bidderIDs) == 0 {
		return models.Auction{}, fmt.Errorf("service: %w", auctionerrors.ErrNoBidders)
	}
	for _, id := range bidderIDs {
		if id == uuid.Nil {
			return models.Auction{}, fmt.Errorf("service: %w - bidder id cannot be empty", auctionerrors.ErrInvalidBidder)
		}
	}
	for _, id := range bidderIDs {
		if _, err := s.bidders.GetBidderByID(id); err != nil {
			return models.Auction{}, fmt.Errorf("service: bidder %s does not exist: %w", id, err)
		}
	}

	vehicle, err := s.vehicles.GetVehicleByVIN(vin)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}

	auction, err := s.auctions.CreateAuction(utils.GenerateID(), vehicle, bidderIDs)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}

	utils.Info("auction created", map[string]any{
		"auction_id":   auction.ID.String(),
		"vehicle_vin":  auction.VehicleVIN,
		"starting_bid": auction.StartingBid,
		"bidders":      len(auction.EligibleBidders),
	})
	return auction, nil
}

// StartAuction transitions an auction to Active
func (s *AuctionService) StartAuction(auctionID uuid.UUID) error {
	if auctionID == uuid.Nil {
		return fmt.Errorf("service: %w - auction id cannot be empty", auctionerrors.ErrAuctionNotFound)
	}
	if err := s.auctions.StartAuction(auctionID); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}

// EndAuction transitions an auction to Ended and returns it with the hammer
// price set
func (s *AuctionService) EndAuction(auctionID uuid.UUID) (models.Auction, error) {
	if auctionID == uuid.Nil {
		return models.Auction{}, fmt.Errorf("service: %w - auction id cannot be empty", auctionerrors.ErrAuctionNotFound)
	}
	auction, err := s.auctions.EndAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}

	utils.Info("auction ended", map[string]any{
		"auction_id":   auction.ID.String(),
		"vehicle_vin":  auction.VehicleVIN,
		"hammer_price": auction.HammerPrice,
		"sold":         auction.Sold,
	})
	return auction, nil
}

// PlaceBid validates and records a bid on an active auction
func (s *AuctionService) PlaceBid(auctionID, bidderID uuid.UUID, amount float64) (models.Auction, error) {
	if bidderID == uuid.Nil {
		return models.Auction{}, fmt.Errorf("service: %w - bidder id cannot be empty", auctionerrors.ErrInvalidBidder)
	}
	if amount <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrBidTooLow)
	}
	if _, err := s.bidders.GetBidderByID(bidderID); err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}

	auction, err := s.auctions.RecordBid(auctionID, bidderID, amount)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}
	return auction, nil
}

// Search returns all auctions matching the given optional criteria. With no
// criteria every auction is returned.
func (s *AuctionService) Search(auctionID uuid.UUID, vin string) []models.Auction {
	preds := make([]search.Predicate[models.Auction], 0, 2)
	if auctionID != uuid.Nil {
		preds = append(preds, search.AuctionWithID(auctionID))
	}
	if vin != "" {
		preds = append(preds, search.AuctionForVehicle(vin))
	}
	return s.auctions.SearchAuctions(search.All(preds...))
}
