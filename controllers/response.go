package controllers

import (
	"errors"
	"net/http"

	"github.com/MyLifeUa/rest-api/models"
	"github.com/MyLifeUa/rest-api/services"

	"github.com/gin-gonic/gin"
)

// Every response uses the same envelope; message carries either a
// human-readable string or a structured payload.
func respond(c *gin.Context, status int, state string, message interface{}) {
	c.JSON(status, gin.H{
		"role":    c.GetString("role"),
		"state":   state,
		"message": message,
		"token":   c.GetString("token"),
	})
}

func respondSuccess(c *gin.Context, status int, message interface{}) {
	respond(c, status, "Success", message)
}

func respondError(c *gin.Context, status int, message string) {
	respond(c, status, "Error", message)
}

// statusFor maps the business error taxonomy onto HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrDuplicateAccount),
		errors.Is(err, models.ErrMissingProfileData),
		errors.Is(err, models.ErrInvalidParameter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	respondError(c, statusFor(err), err.Error())
}

func requesterFrom(c *gin.Context) services.Requester {
	value, _ := c.Get("requester")
	requester, _ := value.(services.Requester)
	return requester
}
