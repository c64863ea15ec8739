package bidder

import (
	"fmt"
	"strings"

	"car-auction-manager/internal/auctionerrors"
	"car-auction-manager/internal/models"
	"car-auction-manager/internal/repository"
	"car-auction-manager/utils"

	"github.com/google/uuid"
)

// BidderService defines the business logic for the bidder registry
type BidderService struct {
	repo repository.BidderDB
}

// NewBidderService creates a new BidderService instance
func NewBidderService(repo repository.BidderDB) *BidderService {
	return &BidderService{repo: repo}
}

// CreateBidder registers a new bidder with a generated id
func (s *BidderService) CreateBidder(name string) (models.Bidder, error) {
	if strings.TrimSpace(name) == "" {
		return models.Bidder{}, fmt.Errorf("service: %w - name cannot be empty", auctionerrors.ErrInvalidBidder)
	}

	bidder := models.Bidder{
		ID:   utils.GenerateID(),
		Name: name,
	}
	if err := s.repo.CreateBidder(bidder); err != nil {
		return models.Bidder{}, fmt.Errorf("service: %w", err)
	}
	return bidder, nil
}

// GetBidderByID returns the bidder with the given id
func (s *BidderService) GetBidderByID(id uuid.UUID) (models.Bidder, error) {
	if id == uuid.Nil {
		return models.Bidder{}, fmt.Errorf("service: %w - bidder id cannot be empty", auctionerrors.ErrInvalidBidder)
	}

	bidder, err := s.repo.GetBidderByID(id)
	if err != nil {
		return models.Bidder{}, fmt.Errorf("service: %w", err)
	}
	return bidder, nil
}

// GetAllBidders returns every registered bidder; an empty registry is not an
// error
func (s *BidderService) GetAllBidders() []models.Bidder {
	return s.repo.GetAllBidders()
}
