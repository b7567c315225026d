package controllers

import (
	"net/http"

	"github.com/MyLifeUa/rest-api/models"
	"github.com/MyLifeUa/rest-api/services"

	"github.com/gin-gonic/gin"
)

// NewClient is the only self-registrable account kind.
func NewClient(c *gin.Context) {
	var input services.NewClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Missing parameters")
		return
	}

	if err := services.RegisterClient(input); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "Client was registered successfully!")
}

// authorizeAccountOp resolves relationship facts and consults the
// policy before any account-scoped work happens.
func authorizeAccountOp(c *gin.Context, op services.Operation, targetEmail string) (services.RelationshipFacts, bool) {
	requester := requesterFrom(c)
	facts, err := services.RelationshipFactsFor(requester, targetEmail)
	if err != nil {
		fail(c, err)
		return facts, false
	}
	if err := services.Authorize(requester, op, targetEmail, facts); err != nil {
		fail(c, err)
		return facts, false
	}
	return facts, true
}

func GetClient(c *gin.Context) {
	email := c.Param("email")
	if _, ok := authorizeAccountOp(c, services.OpRead, email); !ok {
		return
	}

	view, err := services.GetClient(email)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, view)
}

func UpdateClient(c *gin.Context) {
	email := c.Param("email")
	if _, ok := authorizeAccountOp(c, services.OpUpdate, email); !ok {
		return
	}

	var input services.UpdateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := services.UpdateClient(email, input); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Client was updated successfully!")
}

func DeleteClient(c *gin.Context) {
	email := c.Param("email")
	facts, ok := authorizeAccountOp(c, services.OpDelete, email)
	if !ok {
		return
	}
	if facts.TargetRole != models.RoleClient {
		respondError(c, http.StatusBadRequest, "Account is not a client!")
		return
	}

	if err := services.DeleteAccount(email); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusNoContent, "Client was deleted successfully!")
}
