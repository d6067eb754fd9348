package controllers

import (
	"net/http"

	"hoteldash-backend/models"
	"hoteldash-backend/services"
	"hoteldash-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{Service: service}
}

// GetRooms returns the filtered room list. Unset query params mean "all".
func (rc *RoomController) GetRooms(c *gin.Context) {
	filter := services.RoomFilter{
		Search: c.Query("search"),
		Status: models.RoomStatus(c.Query("status")),
		Type:   models.RoomType(c.Query("type")),
		Floor:  c.Query("floor"),
	}
	utils.JSONSuccess(c, http.StatusOK, rc.Service.List(filter))
}

func (rc *RoomController) GetRoomStats(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Service.Stats())
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	created, err := rc.Service.Create(room)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	updated, err := rc.Service.Update(c.Param("id"), room)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	if err := rc.Service.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}

type roomStatusPayload struct {
	Status models.RoomStatus `json:"status"`
}

// UpdateRoomStatus forces the room into the requested state. Check-in and
// check-out flows call this alongside the booking transition endpoint.
func (rc *RoomController) UpdateRoomStatus(c *gin.Context) {
	var payload roomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	room, err := rc.Service.SetStatus(c.Param("id"), payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
