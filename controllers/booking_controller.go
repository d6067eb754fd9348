package controllers

import (
	"net/http"
	"time"

	"hoteldash-backend/models"
	"hoteldash-backend/services"
	"hoteldash-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	filter := services.BookingFilter{
		Search: c.Query("search"),
		Status: models.BookingStatus(c.Query("status")),
		Source: models.BookingSource(c.Query("source")),
	}
	utils.JSONSuccess(c, http.StatusOK, bc.Service.List(filter))
}

func (bc *BookingController) GetBookingStats(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, bc.Service.Stats(time.Now()))
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	created, err := bc.Service.Create(booking)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	if err := bc.Service.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}

type bookingStatusPayload struct {
	Status models.BookingStatus `json:"status"`
}

// TransitionBooking changes the booking status only. The front desk calls
// the room status endpoint separately when checking guests in or out.
func (bc *BookingController) TransitionBooking(c *gin.Context) {
	var payload bookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	booking, err := bc.Service.Transition(c.Param("id"), payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
