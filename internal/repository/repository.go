package repository

import (
	"fmt"
	"sync"

	"car-auction-manager/internal/auctionerrors"
	"car-auction-manager/internal/models"
	"car-auction-manager/internal/pricing"
	"car-auction-manager/internal/search"

	"github.com/google/uuid"
)

// VehicleDB defines the vehicle catalog storage interface
type VehicleDB interface {
	AddVehicle(vehicle models.Vehicle) error
	GetVehicleByVIN(vin string) (models.Vehicle, error)
	GetAllVehicles() []models.Vehicle
	SearchVehicles(pred search.Predicate[models.Vehicle]) []models.Vehicle
}

// BidderDB defines the bidder registry storage interface
type BidderDB interface {
	CreateBidder(bidder models.Bidder) error
	GetBidderByID(id uuid.UUID) (models.Bidder, error)
	GetAllBidders() []models.Bidder
}

// AuctionDB defines the auction collection storage interface. Every mutating
// method performs its invariant checks and the corresponding write as one
// atomic step; callers never do an unsynchronized read-then-write.
type AuctionDB interface {
	CreateAuction(id uuid.UUID, vehicle models.Vehicle, bidderIDs []uuid.UUID) (models.Auction, error)
	GetAuctionByID(id uuid.UUID) (models.Auction, error)
	StartAuction(id uuid.UUID) error
	EndAuction(id uuid.UUID) (models.Auction, error)
	RecordBid(auctionID, bidderID uuid.UUID, amount float64) (models.Auction, error)
	HasActiveAuctionForVehicle(vin string) bool
	SearchAuctions(pred search.Predicate[models.Auction]) []models.Auction
}

// MemoryVehicleRepo is a concurrency-safe in-memory implementation of VehicleDB
type MemoryVehicleRepo struct {
	mu       sync.RWMutex
	vehicles map[string]models.Vehicle // key: VIN
}

// NewMemoryVehicleRepo creates a new in-memory vehicle catalog
func NewMemoryVehicleRepo() *MemoryVehicleRepo {
	return &MemoryVehicleRepo{vehicles: make(map[string]models.Vehicle)}
}

// AddVehicle inserts a vehicle, rejecting duplicate references
func (r *MemoryVehicleRepo) AddVehicle(vehicle models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vehicles[vehicle.VIN]; ok {
		return fmt.Errorf("add vehicle %s: %w", vehicle.VIN, auctionerrors.ErrVehicleExists)
	}
	r.vehicles[vehicle.VIN] = vehicle
	return nil
}

// GetVehicleByVIN returns the vehicle with the given reference
func (r *MemoryVehicleRepo) GetVehicleByVIN(vin string) (models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vehicle, ok := r.vehicles[vin]
	if !ok {
		return models.Vehicle{}, fmt.Errorf("get vehicle %s: %w", vin, auctionerrors.ErrVehicleNotFound)
	}
	return vehicle, nil
}

// GetAllVehicles returns every vehicle in the catalog
func (r *MemoryVehicleRepo) GetAllVehicles() []models.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vehicles := make([]models.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		vehicles = append(vehicles, v)
	}
	return vehicles
}

// SearchVehicles returns all vehicles satisfying the predicate
func (r *MemoryVehicleRepo) SearchVehicles(pred search.Predicate[models.Vehicle]) []models.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Vehicle, 0)
	for _, v := range r.vehicles {
		if pred(v) {
			matches = append(matches, v)
		}
	}
	return matches
}

// MemoryBidderRepo is a concurrency-safe in-memory implementation of BidderDB
type MemoryBidderRepo struct {
	mu      sync.RWMutex
	bidders map[uuid.UUID]models.Bidder
}

// NewMemoryBidderRepo creates a new in-memory bidder registry
func NewMemoryBidderRepo() *MemoryBidderRepo {
	return &MemoryBidderRepo{bidders: make(map[uuid.UUID]models.Bidder)}
}

// CreateBidder stores a new bidder
func (r *MemoryBidderRepo) CreateBidder(bidder models.Bidder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bidders[bidder.ID]; ok {
		return fmt.Errorf("create bidder %s: %w - id already registered", bidder.ID, auctionerrors.ErrInvalidBidder)
	}
	r.bidders[bidder.ID] = bidder
	return nil
}

// GetBidderByID returns the bidder with the given id
func (r *MemoryBidderRepo) GetBidderByID(id uuid.UUID) (models.Bidder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bidder, ok := r.bidders[id]
	if !ok {
		return models.Bidder{}, fmt.Errorf("get bidder %s: %w", id, auctionerrors.ErrBidderNotFound)
	}
	return bidder, nil
}

// GetAllBidders returns every registered bidder. An empty registry yields an
// empty slice, not an error.
func (r *MemoryBidderRepo) GetAllBidders() []models.Bidder {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bidders := make([]models.Bidder, 0, len(r.bidders))
	for _, b := range r.bidders {
		bidders = append(bidders, b)
	}
	return bidders
}

// MemoryAuctionRepo is a concurrency-safe in-memory implementation of
// AuctionDB. A single RWMutex guards the auction map and the active-VIN
// index together, so the "at most one active auction per vehicle" check and
// the write it protects can never interleave.
type MemoryAuctionRepo struct {
	mu          sync.RWMutex
	auctions    map[uuid.UUID]models.Auction
	activeByVIN map[string]uuid.UUID // VIN -> id of the auction currently active for it
	policy      *pricing.BidPolicy
}

// NewMemoryAuctionRepo creates a new in-memory auction collection governed by
// the given bid policy
func NewMemoryAuctionRepo(policy *pricing.BidPolicy) *MemoryAuctionRepo {
	return &MemoryAuctionRepo{
		auctions:    make(map[uuid.UUID]models.Auction),
		activeByVIN: make(map[string]uuid.UUID),
		policy:      policy,
	}
}

// CreateAuction builds and inserts an auction for the vehicle in the Created
// state. The starting bid comes from the bid policy by vehicle category; the
// current bid starts at the starting bid. Fails if the vehicle is already in
// an active auction. Nothing is inserted on failure.
func (r *MemoryAuctionRepo) CreateAuction(id uuid.UUID, vehicle models.Vehicle, bidderIDs []uuid.UUID) (models.Auction, error) {
	startingBid, err := r.policy.StartingBidFor(vehicle.Category)
	if err != nil {
		return models.Auction{}, fmt.Errorf("create auction for vehicle %s: %w", vehicle.VIN, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, active := r.activeByVIN[vehicle.VIN]; active {
		return models.Auction{}, fmt.Errorf("create auction for vehicle %s: %w", vehicle.VIN, auctionerrors.ErrVehicleInAuction)
	}

	auction := models.Auction{
		ID:              id,
		Name:            fmt.Sprintf("Auction for %s %s", vehicle.Manufacturer, vehicle.Model),
		VehicleVIN:      vehicle.VIN,
		StartingBid:     startingBid,
		CurrentBid:      startingBid,
		EligibleBidders: append([]uuid.UUID(nil), bidderIDs...),
		State:           models.AuctionCreated,
	}
	r.auctions[id] = auction
	return auction, nil
}

// GetAuctionByID returns a copy of the auction with the given id
func (r *MemoryAuctionRepo) GetAuctionByID(id uuid.UUID) (models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[id]
	if !ok {
		return models.Auction{}, fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// StartAuction transitions Created -> Active. The vehicle conflict is
// re-checked here because an auction can sit in Created long after another
// auction for the same vehicle was created and started.
func (r *MemoryAuctionRepo) StartAuction(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[id]
	if !ok {
		return fmt.Errorf("start auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	if auction.IsActive() {
		return fmt.Errorf("start auction %s: %w", id, auctionerrors.ErrAuctionAlreadyActive)
	}
	if auction.State == models.AuctionEnded {
		return fmt.Errorf("start auction %s: %w - auction has ended", id, auctionerrors.ErrAuctionNotActive)
	}
	if activeID, active := r.activeByVIN[auction.VehicleVIN]; active && activeID != id {
		return fmt.Errorf("start auction %s: %w", id, auctionerrors.ErrVehicleInAuction)
	}

	auction.State = models.AuctionActive
	r.auctions[id] = auction
	r.activeByVIN[auction.VehicleVIN] = id
	return nil
}

// EndAuction transitions Active -> Ended and records the hammer price. With
// at least one accepted bid the hammer price is the current bid minus one
// increment, which is the amount the winning bidder actually offered. An
// auction that never received a bid closes unsold at its starting bid.
func (r *MemoryAuctionRepo) EndAuction(id uuid.UUID) (models.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[id]
	if !ok {
		return models.Auction{}, fmt.Errorf("end auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	if !auction.IsActive() {
		return models.Auction{}, fmt.Errorf("end auction %s: %w", id, auctionerrors.ErrAuctionNotActive)
	}

	if auction.HighestBidder != nil {
		auction.HammerPrice = auction.CurrentBid - r.policy.Increment()
		auction.Sold = true
	} else {
		auction.HammerPrice = auction.StartingBid
		auction.Sold = false
	}
	auction.State = models.AuctionEnded
	r.auctions[id] = auction
	delete(r.activeByVIN, auction.VehicleVIN)
	return auction, nil
}

// RecordBid validates and applies a bid in one atomic step. The amount must
// strictly exceed both the starting bid and the current bid; the accepted
// amount plus the configured increment becomes the new current-bid floor.
// Of two concurrent bids the loser observes the updated floor and fails.
func (r *MemoryAuctionRepo) RecordBid(auctionID, bidderID uuid.UUID, amount float64) (models.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return models.Auction{}, fmt.Errorf("record bid on auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if !auction.IsActive() {
		return models.Auction{}, fmt.Errorf("record bid on auction %s: %w", auctionID, auctionerrors.ErrAuctionNotActive)
	}
	if !auction.IsEligible(bidderID) {
		return models.Auction{}, fmt.Errorf("record bid on auction %s: %w", auctionID, auctionerrors.ErrBidderNotEligible)
	}
	if amount <= auction.StartingBid || amount <= auction.CurrentBid {
		return models.Auction{}, fmt.Errorf("record bid on auction %s: %w - current bid is %.2f", auctionID, auctionerrors.ErrBidTooLow, auction.CurrentBid)
	}

	auction.CurrentBid = amount + r.policy.Increment()
	bidder := bidderID
	auction.HighestBidder = &bidder
	r.auctions[auctionID] = auction
	return auction, nil
}

// HasActiveAuctionForVehicle reports whether the vehicle is referenced by an
// active auction
func (r *MemoryAuctionRepo) HasActiveAuctionForVehicle(vin string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, active := r.activeByVIN[vin]
	return active
}

// SearchAuctions returns copies of all auctions satisfying the predicate.
// Reads happen under the read lock, so a bid's currentBid/highestBidder pair
// is never observed half-updated.
func (r *MemoryAuctionRepo) SearchAuctions(pred search.Predicate[models.Auction]) []models.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Auction, 0)
	for _, a := range r.auctions {
		if pred(a) {
			matches = append(matches, a)
		}
	}
	return matches
}
