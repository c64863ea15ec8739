package auctionerrors

import "errors"

// Validation errors (malformed or missing input)
var (
	ErrInvalidVehicle   = errors.New("invalid vehicle details")
	ErrInvalidBidder    = errors.New("invalid bidder details")
	ErrNoBidders        = errors.New("auction requires at least one bidder")
	ErrNoSearchCriteria = errors.New("at least one search criterion must be provided")
	ErrInvalidYear      = errors.New("year must be a valid 4-digit number")
)

// Not-found errors (referenced entity absent)
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrBidderNotFound  = errors.New("bidder not found")
	ErrAuctionNotFound = errors.New("auction not found")
)

// Conflict errors (invariant violations)
var (
	ErrVehicleExists        = errors.New("vehicle already exists")
	ErrVehicleInAuction     = errors.New("vehicle is already in an active auction")
	ErrAuctionAlreadyActive = errors.New("auction is already active")
	ErrAuctionNotActive     = errors.New("auction is not active")
	ErrBidderNotEligible    = errors.New("bidder is not registered for this auction")
	ErrBidTooLow            = errors.New("bid amount must be greater than the starting bid and current bid")
)

// Configuration errors (deployment defects, never user errors)
var (
	ErrStartingBidNotConfigured = errors.New("no starting bid configured for vehicle category")
)
