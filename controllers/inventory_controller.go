package controllers

import (
	"net/http"

	"hoteldash-backend/models"
	"hoteldash-backend/services"
	"hoteldash-backend/utils"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	Service *services.InventoryService
}

func NewInventoryController(service *services.InventoryService) *InventoryController {
	return &InventoryController{Service: service}
}

func (ic *InventoryController) GetItems(c *gin.Context) {
	filter := services.InventoryFilter{
		Search:   c.Query("search"),
		Category: models.InventoryCategory(c.Query("category")),
		Band:     models.StockBand(c.Query("band")),
	}
	utils.JSONSuccess(c, http.StatusOK, ic.Service.List(filter))
}

func (ic *InventoryController) GetStats(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ic.Service.Stats())
}

func (ic *InventoryController) CreateItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	created, err := ic.Service.Create(item)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (ic *InventoryController) UpdateItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	updated, err := ic.Service.Update(c.Param("id"), item)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (ic *InventoryController) DeleteItem(c *gin.Context) {
	if err := ic.Service.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}

type stockAdjustPayload struct {
	Delta int `json:"delta"`
}

// AdjustStock applies a signed delta to the current stock, floored at zero.
func (ic *InventoryController) AdjustStock(c *gin.Context) {
	var payload stockAdjustPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	item, err := ic.Service.AdjustStock(c.Param("id"), payload.Delta)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

func (ic *InventoryController) Restock(c *gin.Context) {
	item, err := ic.Service.Restock(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}
