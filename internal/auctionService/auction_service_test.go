package auction

import (
	"testing"

	"car-auction-manager/internal/auctionerrors"
	model "car-auction-manager/internal/models"
	"car-auction-manager/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*AuctionService, *repository.MockAuctionDB, *repository.MockVehicleDB, *repository.MockBidderDB) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	auctions := repository.NewMockAuctionDB(ctrl)
	vehicles := repository.NewMockVehicleDB(ctrl)
	bidders := repository.NewMockBidderDB(ctrl)
	return NewAuctionService(auctions, vehicles, bidders), auctions, vehicles, bidders
}

// Tests CreateAuction
func TestAuctionService_CreateAuction(t *testing.T) {
	vin := "VIN1"
	vehicle := model.Vehicle{VIN: vin, Manufacturer: "Toyota", Model: "Corolla", Year: 2020, Category: model.CategorySedan, NumberOfDoors: 4}
	b1 := uuid.New()
	b2 := uuid.New()

	tests := []struct {
		name          string
		vin           string
		bidderIDs     []uuid.UUID
		mockSetup     func(a *repository.MockAuctionDB, v *repository.MockVehicleDB, b *repository.MockBidderDB)
		expectedError error
	}{
		{
			name:      "valid_auction",
			vin:       vin,
			bidderIDs: []uuid.UUID{b1, b2},
			mockSetup: func(a *repository.MockAuctionDB, v *repository.MockVehicleDB, b *repository.MockBidderDB) {
				b.EXPECT().GetBidderByID(b1).Return(model.Bidder{ID: b1, Name: "Alice"}, nil)
				b.EXPECT().GetBidderByID(b2).Return(model.Bidder{ID: b2, Name: "Bob"}, nil)
				v.EXPECT().GetVehicleByVIN(vin).Return(vehicle, nil)
				a.EXPECT().CreateAuction(gomock.Any(), vehicle, []uuid.UUID{b1, b2}).
					Return(model.Auction{ID: uuid.New(), VehicleVIN: vin, StartingBid: 5000, CurrentBid: 5000, State: model.AuctionCreated}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "empty_bidder_list",
			vin:           vin,
			bidderIDs:     nil,
			mockSetup:     func(a *repository.MockAuctionDB, v *repository.MockVehicleDB, b *repository.MockBidderDB) {},
			expectedError: auctionerrors.ErrNoBidders,
		},
		{
			name:          "nil_bidder_id",
			vin:           vin,
			bidderIDs:     []uuid.UUID{b1, uuid.Nil},
			mockSetup:     func(a *repository.MockAuctionDB, v *repository.MockVehicleDB, b *repository.MockBidderDB) {},
			expectedError: auctionerrors.ErrInvalidBidder,
		},
		{
			// the empty-id check runs over the whole list before any registry
			// lookup, so no GetBidderByID call is expected here
			name:          "nil_bidder_id_checked_before_resolution",
			vin:           vin,
			bidderIDs:     []uuid.UUID{uuid.New(), uuid.Nil},
			mockSetup:     func(a *repository.MockAuctionDB, v *repository.MockVehicleDB, b *repository.MockBidderDB) {},
			expectedError: auctionerrors.ErrInvalidBidder,
		},
		{
			name:      "unknown_bidder_fails_fast",
			vin:       vin,
			bidderIDs: []uuid.UUID{b1, b2},
			mockSetup: func(a *repository.MockAuctionDB, v *repository.MockVehicleDB, b *repository.MockBidderDB) {
				// no vehicle lookup and no insert once the first miss happens
				b.EXPECT().GetBidderByID(b1).Return(model.Bidder{}, auctionerrors.ErrBidderNotFound)
			},
			expectedError: auctionerrors.ErrBidderNotFound,
		},
		{
			name:      "unknown_vehicle",
			vin:       "missing",
			bidderIDs: []uuid.UUID{b1},
			mockSetup: func(a *repository.MockAuctionDB, v *repository.MockVehicleDB, b *repository.MockBidderDB) {
				b.EXPECT().GetBidderByID(b1).Return(model.Bidder{ID: b1, Name: "Alice"}, nil)
				v.EXPECT().GetVehicleByVIN("missing").Return(model.Vehicle{}, auctionerrors.ErrVehicleNotFound)
			},
			expectedError: auctionerrors.ErrVehicleNotFound,
		},
		{
			name:      "vehicle_already_in_active_auction",
			vin:       vin,
			bidderIDs: []uuid.UUID{b1},
			mockSetup: func(a *repository.MockAuctionDB, v *repository.MockVehicleDB, b *repository.MockBidderDB) {
				b.EXPECT().GetBidderByID(b1).Return(model.Bidder{ID: b1, Name: "Alice"}, nil)
				v.EXPECT().GetVehicleByVIN(vin).Return(vehicle, nil)
				a.EXPECT().CreateAuction(gomock.Any(), vehicle, []uuid.UUID{b1}).
					Return(model.Auction{}, auctionerrors.ErrVehicleInAuction)
			},
			expectedError: auctionerrors.ErrVehicleInAuction,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, auctions, vehicles, bidders := newService(t)
			tc.mockSetup(auctions, vehicles, bidders)

			auction, err := service.CreateAuction(tc.vin, tc.bidderIDs)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.vin, auction.VehicleVIN)
			}
		})
	}
}

// Tests StartAuction
func TestAuctionService_StartAuction(t *testing.T) {
	id := uuid.New()

	t.Run("nil_id", func(t *testing.T) {
		service, _, _, _ := newService(t)
		require.ErrorIs(t, service.StartAuction(uuid.Nil), auctionerrors.ErrAuctionNotFound)
	})

	t.Run("delegates_to_store", func(t *testing.T) {
		service, auctions, _, _ := newService(t)
		auctions.EXPECT().StartAuction(id).Return(nil)
		require.NoError(t, service.StartAuction(id))
	})

	t.Run("already_active", func(t *testing.T) {
		service, auctions, _, _ := newService(t)
		auctions.EXPECT().StartAuction(id).Return(auctionerrors.ErrAuctionAlreadyActive)
		require.ErrorIs(t, service.StartAuction(id), auctionerrors.ErrAuctionAlreadyActive)
	})
}

// Tests EndAuction
func TestAuctionService_EndAuction(t *testing.T) {
	id := uuid.New()

	t.Run("nil_id", func(t *testing.T) {
		service, _, _, _ := newService(t)
		_, err := service.EndAuction(uuid.Nil)
		require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
	})

	t.Run("returns_ended_auction", func(t *testing.T) {
		service, auctions, _, _ := newService(t)
		auctions.EXPECT().EndAuction(id).
			Return(model.Auction{ID: id, State: model.AuctionEnded, HammerPrice: 5200, Sold: true}, nil)

		auction, err := service.EndAuction(id)
		require.NoError(t, err)
		require.Equal(t, 5200.0, auction.HammerPrice)
		require.True(t, auction.Sold)
	})

	t.Run("not_active", func(t *testing.T) {
		service, auctions, _, _ := newService(t)
		auctions.EXPECT().EndAuction(id).Return(model.Auction{}, auctionerrors.ErrAuctionNotActive)
		_, err := service.EndAuction(id)
		require.ErrorIs(t, err, auctionerrors.ErrAuctionNotActive)
	})
}

// Tests PlaceBid
func TestAuctionService_PlaceBid(t *testing.T) {
	auctionID := uuid.New()
	bidderID := uuid.New()

	tests := []struct {
		name          string
		bidderID      uuid.UUID
		amount        float64
		mockSetup     func(a *repository.MockAuctionDB, b *repository.MockBidderDB)
		expectedError error
	}{
		{
			name:     "valid_bid",
			bidderID: bidderID,
			amount:   5200,
			mockSetup: func(a *repository.MockAuctionDB, b *repository.MockBidderDB) {
				b.EXPECT().GetBidderByID(bidderID).Return(model.Bidder{ID: bidderID, Name: "Alice"}, nil)
				a.EXPECT().RecordBid(auctionID, bidderID, 5200.0).
					Return(model.Auction{ID: auctionID, CurrentBid: 5300, HighestBidder: &bidderID}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "nil_bidder_id",
			bidderID:      uuid.Nil,
			amount:        5200,
			mockSetup:     func(a *repository.MockAuctionDB, b *repository.MockBidderDB) {},
			expectedError: auctionerrors.ErrInvalidBidder,
		},
		{
			name:          "non_positive_amount",
			bidderID:      bidderID,
			amount:        0,
			mockSetup:     func(a *repository.MockAuctionDB, b *repository.MockBidderDB) {},
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:     "unknown_bidder",
			bidderID: bidderID,
			amount:   5200,
			mockSetup: func(a *repository.MockAuctionDB, b *repository.MockBidderDB) {
				b.EXPECT().GetBidderByID(bidderID).Return(model.Bidder{}, auctionerrors.ErrBidderNotFound)
			},
			expectedError: auctionerrors.ErrBidderNotFound,
		},
		{
			name:     "not_eligible",
			bidderID: bidderID,
			amount:   5200,
			mockSetup: func(a *repository.MockAuctionDB, b *repository.MockBidderDB) {
				b.EXPECT().GetBidderByID(bidderID).Return(model.Bidder{ID: bidderID, Name: "Alice"}, nil)
				a.EXPECT().RecordBid(auctionID, bidderID, 5200.0).
					Return(model.Auction{}, auctionerrors.ErrBidderNotEligible)
			},
			expectedError: auctionerrors.ErrBidderNotEligible,
		},
		{
			name:     "bid_too_low",
			bidderID: bidderID,
			amount:   5000,
			mockSetup: func(a *repository.MockAuctionDB, b *repository.MockBidderDB) {
				b.EXPECT().GetBidderByID(bidderID).Return(model.Bidder{ID: bidderID, Name: "Alice"}, nil)
				a.EXPECT().RecordBid(auctionID, bidderID, 5000.0).
					Return(model.Auction{}, auctionerrors.ErrBidTooLow)
			},
			expectedError: auctionerrors.ErrBidTooLow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, auctions, _, bidders := newService(t)
			tc.mockSetup(auctions, bidders)

			auction, err := service.PlaceBid(auctionID, tc.bidderID, tc.amount)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.amount+100, auction.CurrentBid)
			}
		})
	}
}

// Tests Search criteria assembly
func TestAuctionService_Search(t *testing.T) {
	service, auctions, _, _ := newService(t)

	id := uuid.New()
	stored := []model.Auction{{ID: id, VehicleVIN: "VIN1"}}
	auctions.EXPECT().SearchAuctions(gomock.Any()).Return(stored).Times(3)

	require.Equal(t, stored, service.Search(uuid.Nil, ""))
	require.Equal(t, stored, service.Search(id, ""))
	require.Equal(t, stored, service.Search(id, "VIN1"))
}
