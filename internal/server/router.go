package server

import (
	auction "car-auction-manager/internal/auctionService"
	bidder "car-auction-manager/internal/bidderService"
	vehicle "car-auction-manager/internal/vehicleService"
	handler "car-auction-manager/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService, vehicleService *vehicle.VehicleService, bidderService *bidder.BidderService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	bidderHandler := handler.NewBidderHandler(bidderService)
	auctionHandler := handler.NewAuctionHandler(auctionService)

	vehicles := router.Group("/vehicles")
	{
		vehicles.POST("", vehicleHandler.AddVehicleHandler)
		vehicles.GET("", vehicleHandler.GetAllVehiclesHandler)
		vehicles.GET("/search", vehicleHandler.SearchVehiclesHandler)
	}

	bidders := router.Group("/bidders")
	{
		bidders.POST("", bidderHandler.CreateBidderHandler)
		bidders.GET("", bidderHandler.GetAllBiddersHandler)
		bidders.GET("/:bidder_id", bidderHandler.GetBidderHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.SearchAuctionsHandler)
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.PUT("/start/:auction_id", auctionHandler.StartAuctionHandler)
		auctions.PUT("/end/:auction_id", auctionHandler.EndAuctionHandler)
		auctions.POST("/place-bid", auctionHandler.PlaceBidHandler)
	}

	return router
}
