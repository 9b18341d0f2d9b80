package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Renz00/recipe-vault/internal/domain/users"
	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for handling account and token operations
type UserHandler interface {
	Create(ctx *gin.Context)
	CreateToken(ctx *gin.Context)
	GetMe(ctx *gin.Context)
	UpdateMe(ctx *gin.Context)
}

// UserHandler struct holds the services
type userHandler struct {
	userAccountService users.UserAccountService
	userAuthService    users.UserAuthService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userAccountService users.UserAccountService, userAuthService users.UserAuthService) UserHandler {
	return &userHandler{
		userAccountService: userAccountService,
		userAuthService:    userAuthService,
	}
}

// Create handles the POST request to register a new account
// @Summary Register a new account
// @Description Create an active account from an email address, display name and password.
// @Tags User
// @Accept json
// @Produce json
// @Param requestBody body CreateUserRequest true "Account Data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Router /user/create [post]
func (handler *userHandler) Create(ctx *gin.Context) {

	var request CreateUserRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid account data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	user, err := handler.userAccountService.Create(ctx, request.Email, request.Name, request.Password)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, users.ErrDuplicateEmail) || errors.Is(err, users.ErrPasswordTooShort) {
			errorResponse.Message = err.Error()
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error creating account: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toUserResponse(user))
}

// CreateToken handles the POST request to exchange credentials for a token
// @Summary Issue an access token
// @Description Verify the email and password and return a signed access token.
// @Tags User
// @Accept json
// @Produce json
// @Param requestBody body TokenRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Router /user/token [post]
func (handler *userHandler) CreateToken(ctx *gin.Context) {

	var request TokenRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid credential data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	token, err := handler.userAuthService.IssueToken(ctx, request.Email, request.Password)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, users.ErrInvalidCredentials) {
			errorResponse.Message = err.Error()
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error issuing token: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// GetMe handles the GET request for the authenticated account
// @Summary Retrieve the authenticated account
// @Description Fetch the account the access token was issued for.
// @Tags User
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/me [get]
func (handler *userHandler) GetMe(ctx *gin.Context) {
	userID := ctx.GetString(userIDContextKey)

	user, err := handler.userAccountService.GetByID(ctx, userID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error retrieving account: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateMe handles the PUT and PATCH requests for the authenticated account
// @Summary Update the authenticated account
// @Description Change the display name and/or password of the account the access token was issued for.
// @Tags User
// @Accept json
// @Produce json
// @Param requestBody body UpdateMeRequest true "Fields to update"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/me [patch]
func (handler *userHandler) UpdateMe(ctx *gin.Context) {

	var request UpdateMeRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid account data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	userID := ctx.GetString(userIDContextKey)

	user, err := handler.userAccountService.UpdateByID(ctx, userID, request.Name, request.Password)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, users.ErrPasswordTooShort) {
			errorResponse.Message = err.Error()
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error updating account: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toUserResponse(user))
}
