package controllers

import (
	"net/http"
	"time"

	"hoteldash-backend/models"
	"hoteldash-backend/services"
	"hoteldash-backend/utils"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	Service *services.BillingService
}

func NewBillingController(service *services.BillingService) *BillingController {
	return &BillingController{Service: service}
}

func (bc *BillingController) GetBills(c *gin.Context) {
	filter := services.BillFilter{
		Search: c.Query("search"),
		Status: models.BillStatus(c.Query("status")),
		Range:  services.DateRange(c.Query("range")),
	}
	utils.JSONSuccess(c, http.StatusOK, bc.Service.List(filter, time.Now()))
}

func (bc *BillingController) GetStats(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, bc.Service.Stats())
}

func (bc *BillingController) CreateBill(c *gin.Context) {
	var bill models.Bill
	if err := c.ShouldBindJSON(&bill); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	created, err := bc.Service.Create(bill)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (bc *BillingController) MarkPaid(c *gin.Context) {
	bill, err := bc.Service.MarkPaid(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

func (bc *BillingController) CancelBill(c *gin.Context) {
	bill, err := bc.Service.Cancel(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}
