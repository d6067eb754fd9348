package controllers

import (
	"net/http"
	"time"

	"hoteldash-backend/services"
	"hoteldash-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{Service: service}
}

func (rc *ReportController) GetDashboard(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Service.Dashboard(time.Now()))
}

func (rc *ReportController) GetRoomBreakdown(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Service.RoomStatusBreakdown())
}
