package controllers

import (
	"errors"
	"net/http"

	"hoteldash-backend/services"
	"hoteldash-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates the domain error taxonomy to HTTP. Rejected
// mutations leave the collections untouched, so plain status codes suffice.
func respondServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION", ve.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}
