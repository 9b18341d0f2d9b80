package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/gin-gonic/gin"
)

// TagHandler defines the interface for handling tag-related operations
type TagHandler interface {
	List(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// TagHandler struct holds the services
type tagHandler struct {
	tagService recipes.TagService
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagService recipes.TagService) TagHandler {
	return &tagHandler{
		tagService: tagService,
	}
}

// List handles the GET request to list the caller's tags with optional query parameters
// @Summary List tags
// @Description Fetch the caller's tags, name-descending. assigned_only=1 restricts results to tags attached to at least one recipe.
// @Tags Tag
// @Produce json
// @Param assigned_only query int false "1 restricts to assigned tags"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} TagResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /recipe/tags [get]
func (handler *tagHandler) List(ctx *gin.Context) {
	query := recipes.NewTagQuery(ctx.GetString(userIDContextKey))

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

	tagList, err := handler.tagService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	var listResponse = []TagResponse{}
	for _, tag := range tagList {
		listResponse = append(listResponse, TagResponse{ID: tag.ID, Name: tag.Name})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// UpdateByID handles the PUT and PATCH requests to rename one of the caller's tags
// @Summary Rename a tag by ID
// @Description Change the name of a tag. The new name must not collide with another of the caller's tags.
// @Tags Tag
// @Accept json
// @Produce json
// @Param id path string true "Tag ID"
// @Param requestBody body RenameAttributeRequest true "New name"
// @Success 200 {object} TagResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipe/tags/{id} [patch]
func (handler *tagHandler) UpdateByID(ctx *gin.Context) {

	var request RenameAttributeRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid tag data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	tagID := ctx.Param("id")

	tag, err := handler.tagService.UpdateByID(ctx, ctx.GetString(userIDContextKey), tagID, request.Name)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, recipes.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("tag with id %s not found", tagID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		if errors.Is(err, recipes.ErrDuplicateName) {
			errorResponse.Message = err.Error()
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error updating tag: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, TagResponse{ID: tag.ID, Name: tag.Name})
}

// DeleteByID handles the DELETE request to remove one of the caller's tags
// @Summary Delete a tag by ID
// @Description Remove a tag and detach it from every recipe it was attached to.
// @Tags Tag
// @Param id path string true "Tag ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipe/tags/{id} [delete]
func (handler *tagHandler) DeleteByID(ctx *gin.Context) {
	tagID := ctx.Param("id")

	if err := handler.tagService.DeleteByID(ctx, ctx.GetString(userIDContextKey), tagID); err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, recipes.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("tag with id %s not found", tagID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error deleting tag: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}
