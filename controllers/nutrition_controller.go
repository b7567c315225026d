package controllers

import (
	"net/http"
	"time"

	"github.com/MyLifeUa/rest-api/models"
	"github.com/MyLifeUa/rest-api/services"

	"github.com/gin-gonic/gin"
)

// nutritionTarget decides whose data a nutrition read is about: the
// client themselves, or a patient read by their assigned doctor.
func nutritionTarget(c *gin.Context) (string, bool) {
	requester := requesterFrom(c)

	target := c.Query("client")
	if target == "" {
		if requester.Role != models.RoleClient {
			respondError(c, http.StatusForbidden, "You do not have permissions to access nutrition data")
			return "", false
		}
		return requester.Email, true
	}

	facts, err := services.RelationshipFactsFor(requester, target)
	if err != nil {
		fail(c, err)
		return "", false
	}
	if err := services.Authorize(requester, services.OpRead, target, facts); err != nil {
		fail(c, err)
		return "", false
	}
	return target, true
}

// GetDailyReport: goals, consumed totals, macro ratios and
// left-to-consume for one day (today unless ?date= is given).
func GetDailyReport(c *gin.Context) {
	target, ok := nutritionTarget(c)
	if !ok {
		return
	}

	day := c.Query("date")
	if day == "" {
		day = time.Now().Format("2006-01-02")
	}

	report, err := services.GetDailyReport(target, day)
	if err != nil {
		fail(c, err)
		return
	}

	if report.Ratios == nil {
		respondSuccess(c, http.StatusOK, gin.H{
			"detail": "No food logs recorded for this day yet.",
			"report": report,
		})
		return
	}
	respondSuccess(c, http.StatusOK, report)
}

// GetNutrientHistory: fixed-length daily series for ?metric= over
// ?period=.
func GetNutrientHistory(c *gin.Context) {
	target, ok := nutritionTarget(c)
	if !ok {
		return
	}

	report, err := services.GetNutrientHistory(target, c.Query("metric"), c.Query("period"))
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, report)
}
