package controllers

import (
	"net/http"

	"github.com/MyLifeUa/rest-api/services"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	token, role, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		// Credential mismatch is reported as not-found, per contract.
		respondError(c, http.StatusNotFound, "Invalid login credentials!")
		return
	}

	c.Set("role", string(role))
	c.Set("token", token)
	respondSuccess(c, http.StatusOK, "Login successful!")
}

// Logout is stateless: tokens simply expire, the client discards its
// copy.
func Logout(c *gin.Context) {
	respondSuccess(c, http.StatusOK, "Logged out!")
}

// CheckEmail lets the registration form flag taken addresses early.
func CheckEmail(c *gin.Context) {
	email := c.Param("email")
	if services.EmailTaken(email) {
		respondError(c, http.StatusBadRequest, "There's already a user with the specified email!")
		return
	}
	respondSuccess(c, http.StatusOK, "Email is available.")
}
