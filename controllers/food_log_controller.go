package controllers

import (
	"net/http"
	"strconv"

	"github.com/MyLifeUa/rest-api/models"
	"github.com/MyLifeUa/rest-api/services"

	"github.com/gin-gonic/gin"
)

// NewFoodLog logs food for a day; clients only, and only for
// themselves.
func NewFoodLog(c *gin.Context) {
	requester := requesterFrom(c)
	if requester.Role != models.RoleClient {
		respondError(c, http.StatusForbidden, "You do not have permissions to add a new food log.")
		return
	}

	var input services.NewFoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Missing parameters")
		return
	}

	view, err := services.AddFoodLog(requester.Email, input)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, view)
}

// GetFoodLogs returns the requester's entries for one day
// (/food-logs/:day).
func GetFoodLogs(c *gin.Context) {
	requester := requesterFrom(c)
	if requester.Role != models.RoleClient {
		respondError(c, http.StatusForbidden, "You do not have permissions to access this food log")
		return
	}

	views, err := services.ListFoodLogs(requester.Email, c.Param("day"))
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, views)
}

// ownedFoodLog loads an entry and checks the requester owns it via the
// self-access rule.
func ownedFoodLog(c *gin.Context, op services.Operation) (*models.MealHistory, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid food log id")
		return nil, false
	}

	entry, err := services.GetFoodLog(uint(id))
	if err != nil {
		fail(c, err)
		return nil, false
	}

	owner, err := services.FoodLogOwner(entry)
	if err != nil {
		fail(c, err)
		return nil, false
	}

	requester := requesterFrom(c)
	facts := services.RelationshipFacts{TargetRole: models.RoleClient}
	if err := services.Authorize(requester, op, owner, facts); err != nil {
		fail(c, err)
		return nil, false
	}
	return entry, true
}

func UpdateFoodLog(c *gin.Context) {
	entry, ok := ownedFoodLog(c, services.OpUpdate)
	if !ok {
		return
	}

	var input services.UpdateFoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	view, err := services.UpdateFoodLog(entry.ID, input)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, view)
}

func DeleteFoodLog(c *gin.Context) {
	entry, ok := ownedFoodLog(c, services.OpDelete)
	if !ok {
		return
	}

	if err := services.DeleteFoodLog(entry.ID); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusNoContent, "Food log was deleted successfully!")
}
