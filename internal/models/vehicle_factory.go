package models

import (
	"fmt"
	"strings"

	"car-auction-manager/internal/auctionerrors"
)

// VehicleAttribute carries the category-specific value supplied when a
// vehicle is created: door count for sedans and hatchbacks, seat count for
// SUVs, load capacity in kilograms for trucks.
type VehicleAttribute struct {
	NumberOfDoors int
	NumberOfSeats int
	LoadCapacity  float64
}

// NewVehicle constructs a vehicle of the given category, keeping only the
// attribute field that category defines.
func NewVehicle(vin string, category Category, manufacturer, model string, year int, attr VehicleAttribute) (Vehicle, error) {
	if strings.TrimSpace(vin) == "" {
		return Vehicle{}, fmt.Errorf("%w - VIN cannot be empty", auctionerrors.ErrInvalidVehicle)
	}
	if strings.TrimSpace(manufacturer) == "" || strings.TrimSpace(model) == "" {
		return Vehicle{}, fmt.Errorf("%w - manufacturer and model are required", auctionerrors.ErrInvalidVehicle)
	}

	v := Vehicle{
		VIN:          vin,
		Manufacturer: manufacturer,
		Model:        model,
		Year:         year,
		Category:     category,
	}

	switch category {
	case CategorySedan, CategoryHatchback:
		if attr.NumberOfDoors <= 0 {
			return Vehicle{}, fmt.Errorf("%w - %s requires a positive number of doors", auctionerrors.ErrInvalidVehicle, category)
		}
		v.NumberOfDoors = attr.NumberOfDoors
	case CategorySUV:
		if attr.NumberOfSeats <= 0 {
			return Vehicle{}, fmt.Errorf("%w - SUV requires a positive number of seats", auctionerrors.ErrInvalidVehicle)
		}
		v.NumberOfSeats = attr.NumberOfSeats
	case CategoryTruck:
		if attr.LoadCapacity <= 0 {
			return Vehicle{}, fmt.Errorf("%w - truck requires a positive load capacity", auctionerrors.ErrInvalidVehicle)
		}
		v.LoadCapacity = attr.LoadCapacity
	default:
		return Vehicle{}, fmt.Errorf("%w - unknown vehicle category %q", auctionerrors.ErrInvalidVehicle, category)
	}

	return v, nil
}
