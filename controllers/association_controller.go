package controllers

import (
	"net/http"

	"github.com/MyLifeUa/rest-api/models"
	"github.com/MyLifeUa/rest-api/services"

	"github.com/gin-gonic/gin"
)

type AssociationInput struct {
	Client string `json:"client" binding:"required,email"`
}

// NewAssociation assigns the requesting doctor to a patient. Fails if
// the patient already has a doctor; the link must be cleared first.
func NewAssociation(c *gin.Context) {
	requester := requesterFrom(c)
	if requester.Role != models.RoleDoctor {
		respondError(c, http.StatusForbidden, "You do not have permissions to add a new doctor patient association.")
		return
	}

	var input AssociationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Missing parameters")
		return
	}

	if err := services.AssignDoctor(requester.Email, input.Client); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Association was created successfully!")
}

func DeleteAssociation(c *gin.Context) {
	requester := requesterFrom(c)
	if requester.Role != models.RoleDoctor {
		respondError(c, http.StatusForbidden, "You do not have permissions to remove a doctor patient association.")
		return
	}

	var input AssociationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Missing parameters")
		return
	}

	if err := services.ClearDoctor(requester.Email, input.Client); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Association was removed successfully!")
}
