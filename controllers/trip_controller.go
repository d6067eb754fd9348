package controllers

import (
	"net/http"
	"strconv"

	"hoteldash-backend/models"
	"hoteldash-backend/services"
	"hoteldash-backend/utils"

	"github.com/gin-gonic/gin"
)

type TripController struct {
	Service *services.TripService
}

func NewTripController(service *services.TripService) *TripController {
	return &TripController{Service: service}
}

func (tc *TripController) GetPackages(c *gin.Context) {
	filter := services.TripPackageFilter{Search: c.Query("search")}
	if raw := c.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.Active = &active
		}
	}
	utils.JSONSuccess(c, http.StatusOK, tc.Service.ListPackages(filter))
}

func (tc *TripController) GetStats(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, tc.Service.Stats())
}

func (tc *TripController) CreatePackage(c *gin.Context) {
	var pkg models.TripPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	created, err := tc.Service.CreatePackage(pkg)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (tc *TripController) UpdatePackage(c *gin.Context) {
	var pkg models.TripPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	updated, err := tc.Service.UpdatePackage(c.Param("id"), pkg)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (tc *TripController) DeletePackage(c *gin.Context) {
	if err := tc.Service.DeletePackage(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (tc *TripController) TogglePackage(c *gin.Context) {
	pkg, err := tc.Service.ToggleActive(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, pkg)
}

func (tc *TripController) GetBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, tc.Service.ListBookings())
}

func (tc *TripController) CreateBooking(c *gin.Context) {
	var booking models.TripBooking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	created, err := tc.Service.CreateBooking(booking)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

type tripStatusPayload struct {
	Status models.TripBookingStatus `json:"status"`
}

func (tc *TripController) TransitionBooking(c *gin.Context) {
	var payload tripStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	booking, err := tc.Service.TransitionBooking(c.Param("id"), payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
