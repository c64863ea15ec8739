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

type BidderServiceInterface interface {
	CreateBidder(name string) (model.Bidder, error)
	GetBidderByID(id uuid.UUID) (model.Bidder, error)
	GetAllBidders() []model.Bidder
}

type BidderHandler struct {
	service BidderServiceInterface
}

func NewBidderHandler(service BidderServiceInterface) *BidderHandler {
	return &BidderHandler{service: service}
}

// CreateBidderHandler handles POST /bidders
func (h *BidderHandler) CreateBidderHandler(c *gin.Context) {
	var req helpers.CreateBidderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBidderHandler", err)
		return
	}

	bidder, err := h.service.CreateBidder(req.Name)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateBidderHandler: failed to create bidder", map[string]any{
			"handler": "CreateBidderHandler",
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.BidderResponse{
		ID:   bidder.ID.String(),
		Name: bidder.Name,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bidder created successfully")
	helpers.LogSuccess("CreateBidderHandler", "bidder created successfully", map[string]any{
		"bidder_id": bidder.ID.String(),
		"name":      bidder.Name,
	})
}

// GetBidderHandler handles GET /bidders/:bidder_id
func (h *BidderHandler) GetBidderHandler(c *gin.Context) {
	raw := c.Param("bidder_id")
	id, ok := utils.ParseID(raw)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid bidder id %q", raw), "invalid bidder id")
		utils.Warn("GetBidderHandler: invalid bidder id", map[string]any{"bidder_id": raw})
		return
	}

	bidder, err := h.service.GetBidderByID(id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidderHandler: bidder lookup failed", map[string]any{"bidder_id": raw, "error": err.Error()})
		return
	}

	resp := helpers.BidderResponse{
		ID:   bidder.ID.String(),
		Name: bidder.Name,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bidder retrieved successfully")
	helpers.LogSuccess("GetBidderHandler", "bidder retrieved successfully", map[string]any{
		"bidder_id": bidder.ID.String(),
	})
}

// GetAllBiddersHandler handles GET /bidders
func (h *BidderHandler) GetAllBiddersHandler(c *gin.Context) {
	bidders := h.service.GetAllBidders()

	resp := make([]helpers.BidderResponse, 0, len(bidders))
	for _, b := range bidders {
		resp = append(resp, helpers.BidderResponse{ID: b.ID.String(), Name: b.Name})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bidders retrieved successfully")
	helpers.LogSuccess("GetAllBiddersHandler", "bidders retrieved successfully", map[string]any{
		"count": len(resp),
	})
}
