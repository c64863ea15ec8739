package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"car-auction-manager/internal/auctionerrors"
	model "car-auction-manager/internal/models"
	"car-auction-manager/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test AddVehicleHandler
func TestAddVehicleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockVehicleServiceInterface(ctrl)
	handler := NewVehicleHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/vehicles", handler.AddVehicleHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "success_truck",
			requestBody: helpers.AddVehicleRequest{
				VIN: "VIN1", Category: "Truck", Manufacturer: "Volvo", Model: "FH16", Year: 2019, LoadCapacity: 3500,
			},
			mockSetup: func() {
				mockService.EXPECT().
					AddVehicle("VIN1", model.CategoryTruck, "Volvo", "FH16", 2019, model.VehicleAttribute{LoadCapacity: 3500}).
					Return(model.Vehicle{VIN: "VIN1", Category: model.CategoryTruck}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown_category",
			requestBody: helpers.AddVehicleRequest{
				VIN: "VIN1", Category: "Motorcycle", Manufacturer: "Honda", Model: "CB500", Year: 2020,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_required_fields",
			requestBody:    map[string]any{"vin": "VIN1"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate_vin",
			requestBody: helpers.AddVehicleRequest{
				VIN: "VIN1", Category: "Sedan", Manufacturer: "Toyota", Model: "Corolla", Year: 2020, NumberOfDoors: 4,
			},
			mockSetup: func() {
				mockService.EXPECT().
					AddVehicle("VIN1", model.CategorySedan, "Toyota", "Corolla", 2020, model.VehicleAttribute{NumberOfDoors: 4}).
					Return(model.Vehicle{}, auctionerrors.ErrVehicleExists)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w := performJSON(t, router, http.MethodPost, "/vehicles", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test SearchVehiclesHandler
func TestSearchVehiclesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockVehicleServiceInterface(ctrl)
	handler := NewVehicleHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/vehicles/search", handler.SearchVehiclesHandler)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().Search("corolla", "", 2020).
			Return([]model.Vehicle{{VIN: "VIN1", Model: "Corolla", Year: 2020}}, nil)
		w := performJSON(t, router, http.MethodGet, "/vehicles/search?model=corolla&year=2020", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp["data"].([]any), 1)
	})

	t.Run("no_criteria", func(t *testing.T) {
		mockService.EXPECT().Search("", "", 0).
			Return(nil, auctionerrors.ErrNoSearchCriteria)
		w := performJSON(t, router, http.MethodGet, "/vehicles/search", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unparseable_year", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/vehicles/search?year=twenty", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Test CreateBidderHandler and GetBidderHandler
func TestBidderHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBidderServiceInterface(ctrl)
	handler := NewBidderHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bidders", handler.CreateBidderHandler)
	router.GET("/bidders/:bidder_id", handler.GetBidderHandler)
	router.GET("/bidders", handler.GetAllBiddersHandler)

	t.Run("create_success", func(t *testing.T) {
		created := model.Bidder{ID: uuid.New(), Name: "Alice"}
		mockService.EXPECT().CreateBidder("Alice").Return(created, nil)
		w := performJSON(t, router, http.MethodPost, "/bidders", helpers.CreateBidderRequest{Name: "Alice"})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, created.ID.String(), data["id"])
		require.Equal(t, "Alice", data["name"])
	})

	t.Run("create_missing_name", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPost, "/bidders", map[string]any{})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create_blank_name", func(t *testing.T) {
		mockService.EXPECT().CreateBidder("   ").Return(model.Bidder{}, auctionerrors.ErrInvalidBidder)
		w := performJSON(t, router, http.MethodPost, "/bidders", helpers.CreateBidderRequest{Name: "   "})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get_not_found", func(t *testing.T) {
		id := uuid.New()
		mockService.EXPECT().GetBidderByID(id).Return(model.Bidder{}, auctionerrors.ErrBidderNotFound)
		w := performJSON(t, router, http.MethodGet, "/bidders/"+id.String(), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("get_invalid_id", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/bidders/not-a-uuid", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list_empty", func(t *testing.T) {
		mockService.EXPECT().GetAllBidders().Return(nil)
		w := performJSON(t, router, http.MethodGet, "/bidders", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Empty(t, resp["data"].([]any))
	})
}
