package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/gin-gonic/gin"
)

// RecipeHandler defines the interface for handling recipe-related operations
type RecipeHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	UploadImage(ctx *gin.Context)
}

// RecipeHandler struct holds the services
type recipeHandler struct {
	recipeCatalogService recipes.RecipeCatalogService
	recipeImageService   recipes.RecipeImageService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeCatalogService recipes.RecipeCatalogService, recipeImageService recipes.RecipeImageService) RecipeHandler {
	return &recipeHandler{
		recipeCatalogService: recipeCatalogService,
		recipeImageService:   recipeImageService,
	}
}

// List handles the GET request to list the caller's recipes with optional query parameters
// @Summary List recipes
// @Description Fetch the caller's recipes, newest first, optionally filtered to those attached to any of the given tags or ingredients.
// @Tags Recipe
// @Produce json
// @Param tags query string false "Comma-separated tag IDs"
// @Param ingredients query string false "Comma-separated ingredient IDs"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} RecipeSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /recipe/recipes [get]
func (handler *recipeHandler) List(ctx *gin.Context) {
	query := recipes.NewRecipeQuery(ctx.GetString(userIDContextKey))

	if tagIDs := ctx.Query("tags"); len(tagIDs) > 0 {
		query.TagIDs = splitIDList(tagIDs)
	}

	if ingredientIDs := ctx.Query("ingredients"); len(ingredientIDs) > 0 {
		query.IngredientIDs = splitIDList(ingredientIDs)
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

	recipeList, err := handler.recipeCatalogService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	var listResponse = []RecipeSummaryResponse{}
	for _, recipe := range recipeList {
		listResponse = append(listResponse, toRecipeSummaryResponse(recipe))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve one of the caller's recipes
// @Summary Retrieve a recipe by ID
// @Description Fetch a recipe with its description, image URL and full tag and ingredient objects.
// @Tags Recipe
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} RecipeDetailResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipe/recipes/{id} [get]
func (handler *recipeHandler) GetByID(ctx *gin.Context) {
	recipeID := ctx.Param("id")

	recipe, err := handler.recipeCatalogService.GetByID(ctx, ctx.GetString(userIDContextKey), recipeID)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, recipes.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("recipe with id %s not found", recipeID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error retrieving recipe: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toRecipeDetailResponse(recipe))
}

// Create handles the POST request to create a recipe
// @Summary Create a recipe
// @Description Create a recipe for the caller. Nested tags and ingredients are matched by name against the caller's existing attributes or created.
// @Tags Recipe
// @Accept json
// @Produce json
// @Param requestBody body CreateRecipeRequest true "Recipe Data"
// @Success 201 {object} RecipeDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /recipe/recipes [post]
func (handler *recipeHandler) Create(ctx *gin.Context) {

	var request CreateRecipeRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid recipe data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	recipe := &recipes.Recipe{
		UserID:      ctx.GetString(userIDContextKey),
		Title:       request.Title,
		TimeMinutes: request.TimeMinutes,
		Price:       request.Price,
		Description: request.Description,
		Link:        request.Link,
		Tags:        toTagEntities(request.Tags),
		Ingredients: toIngredientEntities(request.Ingredients),
	}

	created, err := handler.recipeCatalogService.Create(ctx, recipe)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating recipe: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toRecipeDetailResponse(created))
}

// UpdateByID handles the PUT and PATCH requests to update one of the caller's recipes
// @Summary Update a recipe by ID
// @Description Apply a partial update. Nested attribute lists replace the attached set, an empty list clears it and an absent key leaves it alone.
// @Tags Recipe
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param requestBody body UpdateRecipeRequest true "Fields to update"
// @Success 200 {object} RecipeDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipe/recipes/{id} [patch]
func (handler *recipeHandler) UpdateByID(ctx *gin.Context) {

	var request UpdateRecipeRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid recipe data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	update := &recipes.RecipeUpdate{
		Title:       request.Title,
		TimeMinutes: request.TimeMinutes,
		Price:       request.Price,
		Description: request.Description,
		Link:        request.Link,
	}
	if request.Tags != nil {
		tags := toTagEntities(*request.Tags)
		update.Tags = &tags
	}
	if request.Ingredients != nil {
		ingredients := toIngredientEntities(*request.Ingredients)
		update.Ingredients = &ingredients
	}

	recipeID := ctx.Param("id")

	updated, err := handler.recipeCatalogService.UpdateByID(ctx, ctx.GetString(userIDContextKey), recipeID, update)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, recipes.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("recipe with id %s not found", recipeID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error updating recipe: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toRecipeDetailResponse(updated))
}

// DeleteByID handles the DELETE request to remove one of the caller's recipes
// @Summary Delete a recipe by ID
// @Description Remove a recipe. Attached tags and ingredients survive for reuse on other recipes.
// @Tags Recipe
// @Param id path string true "Recipe ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipe/recipes/{id} [delete]
func (handler *recipeHandler) DeleteByID(ctx *gin.Context) {
	recipeID := ctx.Param("id")

	if err := handler.recipeCatalogService.DeleteByID(ctx, ctx.GetString(userIDContextKey), recipeID); err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, recipes.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("recipe with id %s not found", recipeID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error deleting recipe: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UploadImage handles the POST request to attach an image to one of the caller's recipes
// @Summary Upload a recipe image
// @Description Store the uploaded image under the media root and record its public URL on the recipe, replacing any previous image.
// @Tags Recipe
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Recipe ID"
// @Param image formData file true "Image file"
// @Success 200 {object} RecipeImageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipe/recipes/{id}/upload-image [post]
func (handler *recipeHandler) UploadImage(ctx *gin.Context) {
	recipeID := ctx.Param("id")

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("no image provided: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	recipe, err := handler.recipeImageService.UploadImage(ctx, ctx.GetString(userIDContextKey), recipeID, fileHeader)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, recipes.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("recipe with id %s not found", recipeID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		if errors.Is(err, recipes.ErrNotAnImage) {
			errorResponse.Message = err.Error()
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error uploading image: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toRecipeImageResponse(recipe))
}

// splitIDList parses a comma-separated ID list query parameter, dropping
// empty entries.
func splitIDList(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
