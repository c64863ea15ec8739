package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	auction "car-auction-manager/internal/auctionService"
	bidder "car-auction-manager/internal/bidderService"
	model "car-auction-manager/internal/models"
	"car-auction-manager/internal/pricing"
	"car-auction-manager/internal/repository"
	"car-auction-manager/internal/server"
	vehicle "car-auction-manager/internal/vehicleService"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	startingBidSedan = 5000.0
	startingBidSUV   = 8000.0
	bidIncrement     = 100.0
)

// SetupTestRouter wires the full application against fresh in-memory stores.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	policy, err := pricing.NewBidPolicy(map[model.Category]float64{
		model.CategorySedan:     startingBidSedan,
		model.CategoryHatchback: 4000,
		model.CategorySUV:       startingBidSUV,
		model.CategoryTruck:     10000,
	}, bidIncrement)
	require.NoError(t, err)

	vehicleRepo := repository.NewMemoryVehicleRepo()
	bidderRepo := repository.NewMemoryBidderRepo()
	auctionRepo := repository.NewMemoryAuctionRepo(policy)

	auctionSvc := auction.NewAuctionService(auctionRepo, vehicleRepo, bidderRepo)
	vehicleSvc := vehicle.NewVehicleService(vehicleRepo, auctionRepo)
	bidderSvc := bidder.NewBidderService(bidderRepo)

	return server.SetupRouter(auctionSvc, vehicleSvc, bidderSvc)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope, returning its data payload.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp["data"], w
}

// CreateVehicle seeds a vehicle through the API and asserts success.
func CreateVehicle(t *testing.T, router *gin.Engine, vin, category string) {
	t.Helper()
	body := map[string]any{
		"vin":          vin,
		"category":     category,
		"manufacturer": "Toyota",
		"model":        "Corolla",
		"year":         2020,
	}
	switch category {
	case "Sedan", "Hatchback":
		body["number_of_doors"] = 4
	case "SUV":
		body["number_of_seats"] = 7
	case "Truck":
		body["load_capacity"] = 3500
	}
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/vehicles", body)
	require.Equal(t, http.StatusCreated, w.Code)
}

// CreateBidder seeds a bidder through the API and returns its id.
func CreateBidder(t *testing.T, router *gin.Engine, name string) string {
	t.Helper()
	data, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bidders", map[string]any{"name": name})
	require.Equal(t, http.StatusCreated, w.Code)
	return data.(map[string]any)["id"].(string)
}

// CreateAuction seeds an auction through the API and returns its id.
func CreateAuction(t *testing.T, router *gin.Engine, vin string, bidderIDs ...string) string {
	t.Helper()
	data, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions", map[string]any{
		"vin":     vin,
		"bidders": bidderIDs,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return data.(map[string]any)["id"].(string)
}

// StartAuction starts an auction through the API and asserts success.
func StartAuction(t *testing.T, router *gin.Engine, auctionID string) {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, router, http.MethodPut, "/auctions/start/"+auctionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

// PlaceBid places a bid through the API and returns the response recorder.
func PlaceBid(t *testing.T, router *gin.Engine, auctionID, bidderID string, amount float64) (any, *httptest.ResponseRecorder) {
	t.Helper()
	return ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/place-bid", map[string]any{
		"auction_id": auctionID,
		"bidder_id":  bidderID,
		"amount":     amount,
	})
}
