package controllers

import (
	"net/http"
	"strconv"

	"hoteldash-backend/models"
	"hoteldash-backend/services"
	"hoteldash-backend/utils"

	"github.com/gin-gonic/gin"
)

type DiningController struct {
	Service *services.DiningService
}

func NewDiningController(service *services.DiningService) *DiningController {
	return &DiningController{Service: service}
}

func (dc *DiningController) GetMenu(c *gin.Context) {
	filter := services.MenuFilter{
		Search:   c.Query("search"),
		Category: models.MenuCategory(c.Query("category")),
	}
	if raw := c.Query("available"); raw != "" {
		if available, err := strconv.ParseBool(raw); err == nil {
			filter.Available = &available
		}
	}
	utils.JSONSuccess(c, http.StatusOK, dc.Service.ListMenu(filter))
}

func (dc *DiningController) GetMenuStats(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, dc.Service.MenuStats())
}

func (dc *DiningController) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	created, err := dc.Service.CreateMenuItem(item)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (dc *DiningController) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	updated, err := dc.Service.UpdateMenuItem(c.Param("id"), item)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (dc *DiningController) DeleteMenuItem(c *gin.Context) {
	if err := dc.Service.DeleteMenuItem(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (dc *DiningController) ToggleMenuItem(c *gin.Context) {
	item, err := dc.Service.ToggleMenuItemAvailability(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

func (dc *DiningController) GetOrders(c *gin.Context) {
	filter := services.OrderFilter{
		Status: models.OrderStatus(c.Query("status")),
	}
	utils.JSONSuccess(c, http.StatusOK, dc.Service.ListOrders(filter))
}

func (dc *DiningController) GetOrderStats(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, dc.Service.OrderStats())
}

func (dc *DiningController) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	created, err := dc.Service.CreateOrder(order)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// AdvanceOrder moves the order one step along the kitchen chain.
func (dc *DiningController) AdvanceOrder(c *gin.Context) {
	order, err := dc.Service.AdvanceOrder(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

type orderStatusPayload struct {
	Status models.OrderStatus `json:"status"`
}

func (dc *DiningController) SetOrderStatus(c *gin.Context) {
	var payload orderStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	order, err := dc.Service.SetOrderStatus(c.Param("id"), payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

func (dc *DiningController) CancelOrder(c *gin.Context) {
	order, err := dc.Service.CancelOrder(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}
