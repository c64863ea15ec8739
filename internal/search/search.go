package search

import (
	"strings"

	"car-auction-manager/internal/models"

	"github.com/google/uuid"
)

// Predicate is a single search criterion over T.
type Predicate[T any] func(T) bool

// All combines predicates into a conjunction. With no predicates it matches
// everything.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range preds {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// VehicleModelContains matches vehicles whose model contains the given
// substring, case-insensitively.
func VehicleModelContains(model string) Predicate[models.Vehicle] {
	return func(v models.Vehicle) bool {
		return containsFold(v.Model, model)
	}
}

// VehicleManufacturerContains matches vehicles whose manufacturer contains
// the given substring, case-insensitively.
func VehicleManufacturerContains(manufacturer string) Predicate[models.Vehicle] {
	return func(v models.Vehicle) bool {
		return containsFold(v.Manufacturer, manufacturer)
	}
}

// VehicleYear matches vehicles built in the given year.
func VehicleYear(year int) Predicate[models.Vehicle] {
	return func(v models.Vehicle) bool {
		return v.Year == year
	}
}

// AuctionWithID matches the auction with the given id.
func AuctionWithID(id uuid.UUID) Predicate[models.Auction] {
	return func(a models.Auction) bool {
		return a.ID == id
	}
}

// AuctionForVehicle matches auctions referencing the given VIN,
// case-insensitively.
func AuctionForVehicle(vin string) Predicate[models.Auction] {
	return func(a models.Auction) bool {
		return strings.EqualFold(a.VehicleVIN, vin)
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
