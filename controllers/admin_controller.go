package controllers

import (
	"net/http"

	"github.com/MyLifeUa/rest-api/models"
	"github.com/MyLifeUa/rest-api/services"

	"github.com/gin-gonic/gin"
)

type NewAdminInput struct {
	services.NewAccountInput
	Hospital string `json:"hospital" binding:"required"`
}

// NewAdmin: admins are never self-registrable; only an existing admin
// creates one (the first is provisioned out-of-band).
func NewAdmin(c *gin.Context) {
	requester := requesterFrom(c)
	if err := services.Authorize(requester, services.OpCreateAdmin, "", services.RelationshipFacts{}); err != nil {
		fail(c, err)
		return
	}

	var input NewAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Missing parameters")
		return
	}

	if err := services.RegisterAdmin(input.NewAccountInput, input.Hospital); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "Admin was registered successfully!")
}

func GetAdmin(c *gin.Context) {
	email := c.Param("email")
	if _, ok := authorizeAccountOp(c, services.OpRead, email); !ok {
		return
	}

	view, err := services.GetAdmin(email)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, view)
}

func UpdateAdmin(c *gin.Context) {
	email := c.Param("email")
	if _, ok := authorizeAccountOp(c, services.OpUpdate, email); !ok {
		return
	}

	var input services.UpdateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := services.UpdateAdmin(email, input); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Admin was updated successfully!")
}

func DeleteAdmin(c *gin.Context) {
	email := c.Param("email")
	facts, ok := authorizeAccountOp(c, services.OpDelete, email)
	if !ok {
		return
	}
	if facts.TargetRole != models.RoleAdmin {
		respondError(c, http.StatusBadRequest, "Account is not an admin!")
		return
	}

	if err := services.DeleteAccount(email); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusNoContent, "Admin was deleted successfully!")
}
