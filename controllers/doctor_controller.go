package controllers

import (
	"net/http"

	"github.com/MyLifeUa/rest-api/models"
	"github.com/MyLifeUa/rest-api/services"

	"github.com/gin-gonic/gin"
)

// NewDoctor is admin-only; the new doctor joins the admin's hospital.
func NewDoctor(c *gin.Context) {
	requester := requesterFrom(c)
	if err := services.Authorize(requester, services.OpCreateDoctor, "", services.RelationshipFacts{}); err != nil {
		fail(c, err)
		return
	}

	var input services.NewAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Missing parameters")
		return
	}

	if err := services.RegisterDoctor(input, requester.Hospital); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "Doctor was registered successfully!")
}

func GetDoctor(c *gin.Context) {
	email := c.Param("email")
	if _, ok := authorizeAccountOp(c, services.OpRead, email); !ok {
		return
	}

	view, err := services.GetDoctor(email)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, view)
}

func UpdateDoctor(c *gin.Context) {
	email := c.Param("email")
	if _, ok := authorizeAccountOp(c, services.OpUpdate, email); !ok {
		return
	}

	var input services.UpdateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := services.UpdateDoctor(email, input); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Doctor was updated successfully!")
}

func DeleteDoctor(c *gin.Context) {
	email := c.Param("email")
	facts, ok := authorizeAccountOp(c, services.OpDelete, email)
	if !ok {
		return
	}
	if facts.TargetRole != models.RoleDoctor {
		respondError(c, http.StatusBadRequest, "Account is not a doctor!")
		return
	}

	if err := services.DeleteAccount(email); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusNoContent, "Doctor was deleted successfully!")
}

// ListHospitalDoctors gives an admin the doctors of their own hospital.
func ListHospitalDoctors(c *gin.Context) {
	requester := requesterFrom(c)
	if requester.Role != models.RoleAdmin {
		respondError(c, http.StatusForbidden, "You do not have permissions to list hospital doctors")
		return
	}

	views, err := services.ListHospitalDoctors(requester.Hospital)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, views)
}

// ListPatients gives a doctor their assigned clients.
func ListPatients(c *gin.Context) {
	requester := requesterFrom(c)
	if requester.Role != models.RoleDoctor {
		respondError(c, http.StatusForbidden, "You do not have permissions to list patients")
		return
	}

	views, err := services.ListPatients(requester.Email)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, views)
}
