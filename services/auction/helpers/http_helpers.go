package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"car-auction-manager/internal/auctionerrors"
	"car-auction-manager/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Validation errors map to 400, missing entities to 404, invariant violations
// to 409 and configuration defects to 500.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrInvalidVehicle),
		errors.Is(err, auctionerrors.ErrInvalidBidder),
		errors.Is(err, auctionerrors.ErrNoBidders),
		errors.Is(err, auctionerrors.ErrNoSearchCriteria),
		errors.Is(err, auctionerrors.ErrInvalidYear):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrVehicleNotFound):
		return http.StatusNotFound, "vehicle not found"
	case errors.Is(err, auctionerrors.ErrBidderNotFound):
		return http.StatusNotFound, "bidder not found"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrVehicleExists):
		return http.StatusConflict, "vehicle already exists"
	case errors.Is(err, auctionerrors.ErrVehicleInAuction):
		return http.StatusConflict, "vehicle is already in an active auction"
	case errors.Is(err, auctionerrors.ErrAuctionAlreadyActive):
		return http.StatusConflict, "auction is already active"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, auctionerrors.ErrBidderNotEligible):
		return http.StatusConflict, "bidder is not registered for this auction"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrStartingBidNotConfigured):
		return http.StatusInternalServerError, "starting bid configuration missing"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
