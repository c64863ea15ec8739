package pricing

import (
	"fmt"

	"car-auction-manager/internal/auctionerrors"
	"car-auction-manager/internal/models"
)

// BidPolicy holds the per-category starting bids and the fixed increment
// that is added to every accepted bid to form the new current-bid floor.
type BidPolicy struct {
	startingBids map[models.Category]float64
	increment    float64
}

// NewBidPolicy builds a policy from the configured starting-bid table.
// An empty table is a deployment defect and is rejected outright.
func NewBidPolicy(startingBids map[models.Category]float64, increment float64) (*BidPolicy, error) {
	if len(startingBids) == 0 {
		return nil, fmt.Errorf("%w - starting bids configuration is missing or empty", auctionerrors.ErrStartingBidNotConfigured)
	}
	bids := make(map[models.Category]float64, len(startingBids))
	for cat, amount := range startingBids {
		bids[cat] = amount
	}
	return &BidPolicy{startingBids: bids, increment: increment}, nil
}

// StartingBidFor returns the configured starting bid for a vehicle category.
// A category without an entry is a configuration error, not a user error.
func (p *BidPolicy) StartingBidFor(category models.Category) (float64, error) {
	bid, ok := p.startingBids[category]
	if !ok {
		return 0, fmt.Errorf("%w: %s", auctionerrors.ErrStartingBidNotConfigured, category)
	}
	return bid, nil
}

// Increment returns the fixed bid increment.
func (p *BidPolicy) Increment() float64 {
	return p.increment
}
