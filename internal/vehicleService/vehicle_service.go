package vehicle

import (
	"fmt"
	"strings"

	"car-auction-manager/internal/auctionerrors"
	"car-auction-manager/internal/models"
	"car-auction-manager/internal/repository"
	"car-auction-manager/internal/search"
)

// ActiveAuctionIndex is the slice of the auction engine the catalog needs:
// the "is this vehicle currently being auctioned" query.
type ActiveAuctionIndex interface {
	HasActiveAuctionForVehicle(vin string) bool
}

// VehicleService defines the business logic for the vehicle catalog
type VehicleService struct {
	repo     repository.VehicleDB
	auctions ActiveAuctionIndex
}

// NewVehicleService creates a new VehicleService instance
func NewVehicleService(repo repository.VehicleDB, auctions ActiveAuctionIndex) *VehicleService {
	return &VehicleService{
		repo:     repo,
		auctions: auctions,
	}
}

// AddVehicle constructs a vehicle of the requested category and inserts it
// into the catalog. Duplicate references are rejected.
func (s *VehicleService) AddVehicle(vin string, category models.Category, manufacturer, model string, year int, attr models.VehicleAttribute) (models.Vehicle, error) {
	vehicle, err := models.NewVehicle(vin, category, manufacturer, model, year, attr)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("service: %w", err)
	}

	if err := s.repo.AddVehicle(vehicle); err != nil {
		return models.Vehicle{}, fmt.Errorf("service: %w", err)
	}
	return vehicle, nil
}

// GetVehicleByVIN returns the vehicle with the given reference
func (s *VehicleService) GetVehicleByVIN(vin string) (models.Vehicle, error) {
	if strings.TrimSpace(vin) == "" {
		return models.Vehicle{}, fmt.Errorf("service: %w - VIN cannot be empty", auctionerrors.ErrInvalidVehicle)
	}

	vehicle, err := s.repo.GetVehicleByVIN(vin)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("service: %w", err)
	}
	return vehicle, nil
}

// GetAllVehicles returns every vehicle in the catalog
func (s *VehicleService) GetAllVehicles() []models.Vehicle {
	return s.repo.GetAllVehicles()
}

// Search returns vehicles matching the conjunction of the supplied criteria.
// At least one criterion must be provided; a year, when present, must be a
// 4-digit number.
func (s *VehicleService) Search(model, manufacturer string, year int) ([]models.Vehicle, error) {
	if strings.TrimSpace(model) == "" && strings.TrimSpace(manufacturer) == "" && year == 0 {
		return nil, fmt.Errorf("service: %w", auctionerrors.ErrNoSearchCriteria)
	}
	if year != 0 && (year < 1000 || year > 9999) {
		return nil, fmt.Errorf("service: %w", auctionerrors.ErrInvalidYear)
	}

	preds := make([]search.Predicate[models.Vehicle], 0, 3)
	if strings.TrimSpace(model) != "" {
		preds = append(preds, search.VehicleModelContains(model))
	}
	if strings.TrimSpace(manufacturer) != "" {
		preds = append(preds, search.VehicleManufacturerContains(manufacturer))
	}
	if year != 0 {
		preds = append(preds, search.VehicleYear(year))
	}

	return s.repo.SearchVehicles(search.All(preds...)), nil
}

// ExistsInActiveAuction reports whether the vehicle is currently referenced
// by an active auction
func (s *VehicleService) ExistsInActiveAuction(vin string) bool {
	return s.auctions.HasActiveAuctionForVehicle(vin)
}
