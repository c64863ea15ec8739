package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"car-auction-manager/internal/auctionerrors"
	model "car-auction-manager/internal/models"
	"car-auction-manager/services/auction/helpers"
	"car-auction-manager/utils"

	"github.com/gin-gonic/gin"
)

type VehicleServiceInterface interface {
	AddVehicle(vin string, category model.Category, manufacturer, modelName string, year int, attr model.VehicleAttribute) (model.Vehicle, error)
	GetVehicleByVIN(vin string) (model.Vehicle, error)
	GetAllVehicles() []model.Vehicle
	Search(modelName, manufacturer string, year int) ([]model.Vehicle, error)
}

type VehicleHandler struct {
	service VehicleServiceInterface
}

func NewVehicleHandler(service VehicleServiceInterface) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// AddVehicleHandler handles POST /vehicles
func (h *VehicleHandler) AddVehicleHandler(c *gin.Context) {
	var req helpers.AddVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddVehicleHandler", err)
		return
	}

	category, ok := model.ParseCategory(req.Category)
	if !ok {
		err := fmt.Errorf("%w - unknown category %q", auctionerrors.ErrInvalidVehicle, req.Category)
		utils.JSONError(c, http.StatusBadRequest, err, "unknown vehicle category")
		utils.Warn("AddVehicleHandler: unknown category", map[string]any{"category": req.Category})
		return
	}

	vehicle, err := h.service.AddVehicle(req.VIN, category, req.Manufacturer, req.Model, req.Year, model.VehicleAttribute{
		NumberOfDoors: req.NumberOfDoors,
		NumberOfSeats: req.NumberOfSeats,
		LoadCapacity:  req.LoadCapacity,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AddVehicleHandler: failed to add vehicle", map[string]any{
			"handler": "AddVehicleHandler",
			"vin":     req.VIN,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.CreateVehicleResponse{VIN: vehicle.VIN}, "vehicle added successfully")
	helpers.LogSuccess("AddVehicleHandler", "vehicle added successfully", map[string]any{
		"vin":      vehicle.VIN,
		"category": vehicle.Category,
	})
}

// GetAllVehiclesHandler handles GET /vehicles
func (h *VehicleHandler) GetAllVehiclesHandler(c *gin.Context) {
	vehicles := h.service.GetAllVehicles()

	utils.JSONResponse(c, http.StatusOK, vehicles, "vehicles retrieved successfully")
	helpers.LogSuccess("GetAllVehiclesHandler", "vehicles retrieved successfully", map[string]any{
		"count": len(vehicles),
	})
}

// SearchVehiclesHandler handles GET /vehicles/search
func (h *VehicleHandler) SearchVehiclesHandler(c *gin.Context) {
	modelName := c.Query("model")
	manufacturer := c.Query("manufacturer")

	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid year: %w", err), "invalid year")
			utils.Warn("SearchVehiclesHandler: invalid year", map[string]any{"year": raw})
			return
		}
		year = parsed
	}

	vehicles, err := h.service.Search(modelName, manufacturer, year)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SearchVehiclesHandler: search failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, vehicles, "vehicles retrieved successfully")
	helpers.LogSuccess("SearchVehiclesHandler", "vehicles retrieved successfully", map[string]any{
		"count": len(vehicles),
	})
}
