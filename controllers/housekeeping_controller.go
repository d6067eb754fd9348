package controllers

import (
	"net/http"

	"hoteldash-backend/models"
	"hoteldash-backend/services"
	"hoteldash-backend/utils"

	"github.com/gin-gonic/gin"
)

type HousekeepingController struct {
	Service *services.HousekeepingService
}

func NewHousekeepingController(service *services.HousekeepingService) *HousekeepingController {
	return &HousekeepingController{Service: service}
}

func (hc *HousekeepingController) GetTasks(c *gin.Context) {
	filter := services.TaskFilter{
		Status:   models.TaskStatus(c.Query("status")),
		Priority: models.TaskPriority(c.Query("priority")),
		Type:     models.TaskType(c.Query("type")),
	}
	utils.JSONSuccess(c, http.StatusOK, hc.Service.List(filter))
}

func (hc *HousekeepingController) GetTaskStats(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, hc.Service.Stats())
}

func (hc *HousekeepingController) GetStaffBreakdown(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, hc.Service.StaffBreakdown())
}

func (hc *HousekeepingController) CreateTask(c *gin.Context) {
	var task models.HousekeepingTask
	if err := c.ShouldBindJSON(&task); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	created, err := hc.Service.Create(task)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (hc *HousekeepingController) DeleteTask(c *gin.Context) {
	if err := hc.Service.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}

type taskStatusPayload struct {
	Status models.TaskStatus `json:"status"`
}

func (hc *HousekeepingController) TransitionTask(c *gin.Context) {
	var payload taskStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	task, err := hc.Service.Transition(c.Param("id"), payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, task)
}
