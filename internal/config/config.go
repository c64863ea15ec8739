package config

import (
	"car-auction-manager/internal/models"
	"car-auction-manager/utils"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HttpServerPort uint16 `env:"HTTP_SERVER_PORT" envDefault:"8080" validate:"min=1000,max=65535"`

	BidIncrement float64 `env:"BID_INCREMENT" envDefault:"100" validate:"min=0"`

	StartingBidSedan     float64 `env:"STARTING_BID_SEDAN"     envDefault:"5000"  validate:"gt=0"`
	StartingBidHatchback float64 `env:"STARTING_BID_HATCHBACK" envDefault:"4000"  validate:"gt=0"`
	StartingBidSuv       float64 `env:"STARTING_BID_SUV"       envDefault:"8000"  validate:"gt=0"`
	StartingBidTruck     float64 `env:"STARTING_BID_TRUCK"     envDefault:"10000" validate:"gt=0"`
}

func LoadConfig() (*Config, error) {
	// Load environment variables from .env file, if present
	if err := godotenv.Load(".env"); err != nil {
		utils.Info(".env file not found, using environment defaults", nil)
	}

	cfg := &Config{}
	// Parse config from environment variables
	if err := env.Parse(cfg); err != nil {
		utils.Error("config_load_failed", map[string]any{"error": err.Error()})
		return nil, err
	}

	// Validate the config
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		utils.Error("config_validation_failed", map[string]any{"error": err.Error()})
		return nil, err
	}
	return cfg, nil
}

// StartingBids returns the per-category starting bid table consumed by the
// bid policy.
func (c *Config) StartingBids() map[models.Category]float64 {
	return map[models.Category]float64{
		models.CategorySedan:     c.StartingBidSedan,
		models.CategoryHatchback: c.StartingBidHatchback,
		models.CategorySUV:       c.StartingBidSuv,
		models.CategoryTruck:     c.StartingBidTruck,
	}
}
