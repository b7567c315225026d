package controllers

import (
	"net/http"
	"strconv"

	"github.com/MyLifeUa/rest-api/models"
	"github.com/MyLifeUa/rest-api/services"

	"github.com/gin-gonic/gin"
)

func NewIngredient(c *gin.Context) {
	var input services.IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Missing parameters")
		return
	}

	ingredient, err := services.CreateIngredient(input)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, ingredient)
}

func ingredientID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ingredient id")
		return 0, false
	}
	return uint(id), true
}

func GetIngredient(c *gin.Context) {
	id, ok := ingredientID(c)
	if !ok {
		return
	}

	ingredient, err := services.GetIngredient(id)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, ingredient)
}

func UpdateIngredient(c *gin.Context) {
	id, ok := ingredientID(c)
	if !ok {
		return
	}

	var input services.IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Missing parameters")
		return
	}

	if err := services.UpdateIngredient(id, input); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Ingredient was updated successfully!")
}

func DeleteIngredient(c *gin.Context) {
	id, ok := ingredientID(c)
	if !ok {
		return
	}

	if err := services.DeleteIngredient(id); err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusNoContent, "Ingredient was deleted successfully!")
}

// NewMeal composes a meal from ingredient quantities. Clients own
// their meals; any other role adds to the shared catalog.
func NewMeal(c *gin.Context) {
	var input services.NewMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Missing parameters")
		return
	}

	requester := requesterFrom(c)
	var clientID *uint
	if requester.Role == models.RoleClient {
		id, err := services.ClientIDByEmail(requester.Email)
		if err != nil {
			fail(c, err)
			return
		}
		clientID = &id
	}

	meal, err := services.CreateMeal(input, clientID)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, meal)
}

func ListMeals(c *gin.Context) {
	requester := requesterFrom(c)

	var clientID *uint
	if requester.Role == models.RoleClient {
		id, err := services.ClientIDByEmail(requester.Email)
		if err != nil {
			fail(c, err)
			return
		}
		clientID = &id
	}

	meals, err := services.ListMeals(clientID)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, meals)
}
