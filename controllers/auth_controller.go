package controllers

import (
	"net/http"

	"hoteldash-backend/services"
	"hoteldash-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	user, token, err := ac.Service.Login(payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user, "token": token})
}

type registerPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_PAYLOAD", "Invalid request payload")
		return
	}

	user, token, err := ac.Service.Register(payload.Name, payload.Email, payload.Password, payload.Phone)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"user": user, "token": token})
}

// Me returns the account behind the bearer token.
func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := c.Get("userId")
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing authentication")
		return
	}

	user, err := ac.Service.GetUser(userID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
