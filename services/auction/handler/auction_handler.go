package handler

import (
	"fmt"
	"net/http"

	model "car-auction-manager/internal/models"
	"car-auction-manager/services/auction/helpers"
	"car-auction-manager/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuctionServiceInterface interface {
	CreateAuction(vin string, bidderIDs []uuid.UUID) (model.Auction, error)
	StartAuction(auctionID uuid.UUID) error
	EndAuction(auctionID uuid.UUID) (model.Auction, error)
	PlaceBid(auctionID, bidderID uuid.UUID, amount float64) (model.Auction, error)
	Search(auctionID uuid.UUID, vin string) []model.Auction
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	bidderIDs := make([]uuid.UUID, 0, len(req.Bidders))
	for _, raw := range req.Bidders {
		id, ok := utils.ParseID(raw)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid bidder id %q", raw), "invalid bidder id")
			utils.Warn("CreateAuctionHandler: invalid bidder id", map[string]any{"bidder_id": raw})
			return
		}
		bidderIDs = append(bidderIDs, id)
	}

	auction, err := h.service.CreateAuction(req.VIN, bidderIDs)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"handler": "CreateAuctionHandler",
			"vin":     req.VIN,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(auction), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":   auction.ID.String(),
		"vin":          auction.VehicleVIN,
		"starting_bid": auction.StartingBid,
	})
}

// StartAuctionHandler handles PUT /auctions/start/:auction_id
func (h *AuctionHandler) StartAuctionHandler(c *gin.Context) {
	raw := c.Param("auction_id")
	id, ok := utils.ParseID(raw)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid auction id %q", raw), "invalid auction id")
		utils.Warn("StartAuctionHandler: invalid auction id", map[string]any{"auction_id": raw})
		return
	}

	if err := h.service.StartAuction(id); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("StartAuctionHandler: failed to start auction", map[string]any{"auction_id": raw, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction started successfully")
	helpers.LogSuccess("StartAuctionHandler", "auction started successfully", map[string]any{
		"auction_id": raw,
	})
}

// EndAuctionHandler handles PUT /auctions/end/:auction_id
func (h *AuctionHandler) EndAuctionHandler(c *gin.Context) {
	raw := c.Param("auction_id")
	id, ok := utils.ParseID(raw)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid auction id %q", raw), "invalid auction id")
		utils.Warn("EndAuctionHandler: invalid auction id", map[string]any{"auction_id": raw})
		return
	}

	auction, err := h.service.EndAuction(id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("EndAuctionHandler: failed to end auction", map[string]any{"auction_id": raw, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction ended successfully")
	helpers.LogSuccess("EndAuctionHandler", "auction ended successfully", map[string]any{
		"auction_id":   raw,
		"hammer_price": auction.HammerPrice,
		"sold":         auction.Sold,
	})
}

// PlaceBidHandler handles POST /auctions/place-bid
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	auctionID, ok := utils.ParseID(req.AuctionID)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid auction id %q", req.AuctionID), "invalid auction id")
		utils.Warn("PlaceBidHandler: invalid auction id", map[string]any{"auction_id": req.AuctionID})
		return
	}
	bidderID, ok := utils.ParseID(req.BidderID)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid bidder id %q", req.BidderID), "invalid bidder id")
		utils.Warn("PlaceBidHandler: invalid bidder id", map[string]any{"bidder_id": req.BidderID})
		return
	}

	auction, err := h.service.PlaceBid(auctionID, bidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": req.AuctionID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id":  req.AuctionID,
		"bidder_id":   req.BidderID,
		"amount":      req.Amount,
		"current_bid": auction.CurrentBid,
	})
}

// SearchAuctionsHandler handles GET /auctions
func (h *AuctionHandler) SearchAuctionsHandler(c *gin.Context) {
	var auctionID uuid.UUID
	if raw := c.Query("auction_id"); raw != "" {
		id, ok := utils.ParseID(raw)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid auction id %q", raw), "invalid auction id")
			utils.Warn("SearchAuctionsHandler: invalid auction id", map[string]any{"auction_id": raw})
			return
		}
		auctionID = id
	}
	vin := c.Query("vin")

	auctions := h.service.Search(auctionID, vin)

	resp := make([]helpers.AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		resp = append(resp, helpers.ToAuctionResponse(a))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auctions retrieved successfully")
	helpers.LogSuccess("SearchAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(resp),
	})
}
