package main

import (
	auction "car-auction-manager/internal/auctionService"
	bidder "car-auction-manager/internal/bidderService"
	"car-auction-manager/internal/config"
	"car-auction-manager/internal/pricing"
	"car-auction-manager/internal/repository"
	"car-auction-manager/internal/server"
	vehicle "car-auction-manager/internal/vehicleService"
	"car-auction-manager/utils"
	"fmt"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}

	policy, err := pricing.NewBidPolicy(cfg.StartingBids(), cfg.BidIncrement)
	if err != nil {
		// a broken starting-bid table is a deployment defect
		utils.Fatal("failed to build bid policy", map[string]any{"error": err.Error()})
	}

	vehicleRepo := repository.NewMemoryVehicleRepo()
	bidderRepo := repository.NewMemoryBidderRepo()
	auctionRepo := repository.NewMemoryAuctionRepo(policy)

	auctionSvc := auction.NewAuctionService(auctionRepo, vehicleRepo, bidderRepo)
	vehicleSvc := vehicle.NewVehicleService(vehicleRepo, auctionRepo)
	bidderSvc := bidder.NewBidderService(bidderRepo)

	router := server.SetupRouter(auctionSvc, vehicleSvc, bidderSvc)

	addr := fmt.Sprintf(":%d", cfg.HttpServerPort)
	utils.Info("starting auction server", map[string]any{"addr": addr})
	if err := router.Run(addr); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}
