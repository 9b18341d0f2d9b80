package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/gin-gonic/gin"
)

// IngredientHandler defines the interface for handling ingredient-related operations
type IngredientHandler interface {
	List(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// IngredientHandler struct holds the services
type ingredientHandler struct {
	ingredientService recipes.IngredientService
}

// NewIngredientHandler creates a new IngredientHandler
func NewIngredientHandler(ingredientService recipes.IngredientService) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
	}
}

// List handles the GET request to list the caller's ingredients with optional query parameters
// @Summary List ingredients
// @Description Fetch the caller's ingredients, most recent first. assigned_only=1 restricts results to ingredients attached to at least one recipe.
// @Tags Ingredient
// @Produce json
// @Param assigned_only query int false "1 restricts to assigned ingredients"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} IngredientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /recipe/ingredients [get]
func (handler *ingredientHandler) List(ctx *gin.Context) {
	query := recipes.NewIngredientQuery(ctx.GetString(userIDContextKey))

	if assignedOnly := ctx.Query("assigned_only"); assignedOnly == "1" {
		query.AssignedOnly = true
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		if value, err := strconv.Atoi(limit); err == nil {
			query.Limit = value
		}
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		if value, err := strconv.Atoi(offset); err == nil {
			query.Offset = value
		}
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	ingredientList, err := handler.ingredientService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	var listResponse = []IngredientResponse{}
	for _, ingredient := range ingredientList {
		listResponse = append(listResponse, IngredientResponse{ID: ingredient.ID, Name: ingredient.Name})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// UpdateByID handles the PUT and PATCH requests to rename one of the caller's ingredients
// @Summary Rename an ingredient by ID
// @Description Change the name of an ingredient. The new name must not collide with another of the caller's ingredients.
// @Tags Ingredient
// @Accept json
// @Produce json
// @Param id path string true "Ingredient ID"
// @Param requestBody body RenameAttributeRequest true "New name"
// @Success 200 {object} IngredientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipe/ingredients/{id} [patch]
func (handler *ingredientHandler) UpdateByID(ctx *gin.Context) {

	var request RenameAttributeRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid ingredient data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	ingredientID := ctx.Param("id")

	ingredient, err := handler.ingredientService.UpdateByID(ctx, ctx.GetString(userIDContextKey), ingredientID, request.Name)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, recipes.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("ingredient with id %s not found", ingredientID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		if errors.Is(err, recipes.ErrDuplicateName) {
			errorResponse.Message = err.Error()
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error updating ingredient: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, IngredientResponse{ID: ingredient.ID, Name: ingredient.Name})
}

// DeleteByID handles the DELETE request to remove one of the caller's ingredients
// @Summary Delete an ingredient by ID
// @Description Remove an ingredient and detach it from every recipe it was attached to.
// @Tags Ingredient
// @Param id path string true "Ingredient ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipe/ingredients/{id} [delete]
func (handler *ingredientHandler) DeleteByID(ctx *gin.Context) {
	ingredientID := ctx.Param("id")

	if err := handler.ingredientService.DeleteByID(ctx, ctx.GetString(userIDContextKey), ingredientID); err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, recipes.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("ingredient with id %s not found", ingredientID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error deleting ingredient: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}
