package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omxqn/api-application/domain"
	"github.com/omxqn/api-application/internal/http/middleware"
)

// FleetHandlers handles bus, trip and location requests
type FleetHandlers struct {
	fleetSvc domain.FleetService
}

// NewFleetHandlers creates new fleet handlers
func NewFleetHandlers(fleetSvc domain.FleetService) *FleetHandlers {
	return &FleetHandlers{fleetSvc: fleetSvc}
}

// RegisterBusRequest carries the vehicle details an owner registers.
type RegisterBusRequest struct {
	BusNumber            int    `json:"bus_number" binding:"required"`
	BoardSymbol          string `json:"board_symbol" binding:"required"`
	DrivingLicenseNumber int    `json:"driving_license_number" binding:"required"`
	Specification        string `json:"specification"`
	AirConditioner       bool   `json:"air_conditioner"`
}

// CreateTripRequest schedules a journey for a bus and its driver.
type CreateTripRequest struct {
	BusID            uint   `json:"bus_id" binding:"required"`
	DriverID         uint   `json:"driver_id" binding:"required"`
	Date             string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime        string `json:"start_time" binding:"required"`
	EndTime          string `json:"end_time" binding:"required"`
	PassengerType    string `json:"passenger_type"`
	SubscriptionType string `json:"subscription_type"`
	StartAddress     string `json:"start_address" binding:"required"`
	EndAddress       string `json:"end_address" binding:"required"`
}

// AddStopRequest places a named stop on a trip's route.
type AddStopRequest struct {
	Name      string  `json:"name" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required,latitude"`
	Longitude float64 `json:"longitude" binding:"required,longitude"`
}

// ReportLocationRequest is a driver's position update for a bus.
type ReportLocationRequest struct {
	BusID     uint    `json:"bus_id" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required,latitude"`
	Longitude float64 `json:"longitude" binding:"required,longitude"`
}

// RegisterBus handles bus registration by an owner.
func (h *FleetHandlers) RegisterBus(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
		return
	}

	var req RegisterBusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	bus, err := h.fleetSvc.RegisterBus(c.Request.Context(), &domain.Bus{
		OwnerID:              account.ID,
		BusNumber:            req.BusNumber,
		BoardSymbol:          req.BoardSymbol,
		DrivingLicenseNumber: req.DrivingLicenseNumber,
		Specification:        req.Specification,
		AirConditioner:       req.AirConditioner,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "Bus registered.",
			"bus_id":  bus.ID,
		},
	})
}

// ListBuses handles listing the caller's registered buses.
func (h *FleetHandlers) ListBuses(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
		return
	}

	buses, err := h.fleetSvc.ListOwnerBuses(c.Request.Context(), account.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"buses": buses}})
}

// CreateTrip handles trip scheduling.
func (h *FleetHandlers) CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	trip, err := h.fleetSvc.CreateTrip(c.Request.Context(), &domain.Trip{
		BusID:            req.BusID,
		DriverID:         req.DriverID,
		Date:             req.Date,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		PassengerType:    req.PassengerType,
		SubscriptionType: req.SubscriptionType,
		StartAddress:     req.StartAddress,
		EndAddress:       req.EndAddress,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "Trip created.",
			"trip_id": trip.ID,
		},
	})
}

// PreviousTrips handles listing the caller's completed trips.
func (h *FleetHandlers) PreviousTrips(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
		return
	}

	trips, err := h.fleetSvc.PreviousTrips(c.Request.Context(), account.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"trips": trips}})
}

// UpcomingTrips handles listing the caller's scheduled trips.
func (h *FleetHandlers) UpcomingTrips(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
		return
	}

	trips, err := h.fleetSvc.UpcomingTrips(c.Request.Context(), account.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"trips": trips}})
}

// AddStop handles adding a stop point to a trip.
func (h *FleetHandlers) AddStop(c *gin.Context) {
	tripID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip ID"})
		return
	}

	var req AddStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	stop, err := h.fleetSvc.AddStop(c.Request.Context(), &domain.StopPoint{
		TripID:    uint(tripID),
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "Stop point added.",
			"stop_id": stop.ID,
		},
	})
}

// TripStops handles listing the stop points of a trip.
func (h *FleetHandlers) TripStops(c *gin.Context) {
	tripID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip ID"})
		return
	}

	stops, err := h.fleetSvc.TripStops(c.Request.Context(), uint(tripID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"stop_points": stops}})
}

// ReportLocation handles a driver's position update for an assigned bus.
func (h *FleetHandlers) ReportLocation(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
		return
	}

	var req ReportLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	err := h.fleetSvc.ReportLocation(c.Request.Context(), account.ID, &domain.BusLocation{
		BusID:      req.BusID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		ReportedAt: time.Now(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Location updated."}})
}

// BusDrivers lists the captains assigned to one of the caller's buses.
func (h *FleetHandlers) BusDrivers(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
		return
	}

	busID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bus ID"})
		return
	}

	drivers, err := h.fleetSvc.AssignedDrivers(c.Request.Context(), account.ID, uint(busID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"bus_id": uint(busID), "driver_ids": drivers}})
}

// Location handles reading the latest reported position of a bus.
func (h *FleetHandlers) Location(c *gin.Context) {
	busID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bus ID"})
		return
	}

	loc, err := h.fleetSvc.Location(c.Request.Context(), uint(busID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"location": loc}})
}
