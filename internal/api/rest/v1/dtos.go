package v1

import (
	"errors"
	"fmt"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/domain/users"
	"github.com/Renz00/recipe-vault/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// mediaURLPrefix is where the edge server exposes files stored under the
// media root.
const mediaURLPrefix = "/static/media/"

// ErrorResponse is the JSON body returned for every non-2xx outcome.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Msg string `json:"msg"`
}

// CreateUserRequest registers a new account.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=5,max=128"`
	Name     string `json:"name" validate:"max=255"`
}

// Validate for validating CreateUserRequest struct
func (r *CreateUserRequest) Validate() error {
	return validateRequest(r)
}

// TokenRequest exchanges credentials for an access token.
type TokenRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating TokenRequest struct
func (r *TokenRequest) Validate() error {
	return validateRequest(r)
}

// UpdateMeRequest changes the authenticated account's name and/or password.
// Absent fields are left untouched.
type UpdateMeRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Password *string `json:"password" validate:"omitempty,min=5,max=128"`
}

// Validate for validating UpdateMeRequest struct
func (r *UpdateMeRequest) Validate() error {
	return validateRequest(r)
}

// AttributePayload is a nested tag or ingredient inside a recipe payload,
// matched by name against the owner's existing attributes.
type AttributePayload struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// CreateRecipeRequest creates a recipe with optional nested attributes.
type CreateRecipeRequest struct {
	Title       string             `json:"title" validate:"required,min=1,max=255"`
	TimeMinutes int                `json:"time_minutes" validate:"min=0"`
	Price       decimal.Decimal    `json:"price" validate:"priceValidation"`
	Description string             `json:"description"`
	Link        string             `json:"link" validate:"omitempty,max=255"`
	Tags        []AttributePayload `json:"tags" validate:"omitempty,dive"`
	Ingredients []AttributePayload `json:"ingredients" validate:"omitempty,dive"`
}

// Validate for validating CreateRecipeRequest struct
func (r *CreateRecipeRequest) Validate() error {
	return validateRequest(r)
}

// UpdateRecipeRequest applies a partial update. Nil attribute lists leave
// the attached set alone; empty non-nil lists clear it.
type UpdateRecipeRequest struct {
	Title       *string             `json:"title" validate:"omitnil,min=1,max=255"`
	TimeMinutes *int                `json:"time_minutes" validate:"omitempty,min=0"`
	Price       *decimal.Decimal    `json:"price" validate:"omitnil,priceValidation"`
	Description *string             `json:"description"`
	Link        *string             `json:"link" validate:"omitempty,max=255"`
	Tags        *[]AttributePayload `json:"tags" validate:"omitempty,dive"`
	Ingredients *[]AttributePayload `json:"ingredients" validate:"omitempty,dive"`
}

// Validate for validating UpdateRecipeRequest struct
func (r *UpdateRecipeRequest) Validate() error {
	return validateRequest(r)
}

// RenameAttributeRequest renames a tag or ingredient.
type RenameAttributeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// Validate for validating RenameAttributeRequest struct
func (r *RenameAttributeRequest) Validate() error {
	return validateRequest(r)
}

func validateRequest(v interface{}) error {
	validate := validator.New()

	if err := validate.RegisterValidation("priceValidation", validators.PriceValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(v)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// UserResponse describes an account. The password never leaves the server.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenResponse carries a signed access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// TagResponse describes a tag.
type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IngredientResponse describes an ingredient.
type IngredientResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecipeSummaryResponse is the listing shape, with attributes as ID arrays.
type RecipeSummaryResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Link        string          `json:"link"`
	Tags        []string        `json:"tags"`
	Ingredients []string        `json:"ingredients"`
}

// RecipeDetailResponse is the single-recipe shape with full attribute
// objects, the description and the public image URL.
type RecipeDetailResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	TimeMinutes int                  `json:"time_minutes"`
	Price       decimal.Decimal      `json:"price"`
	Description string               `json:"description"`
	Link        string               `json:"link"`
	Tags        []TagResponse        `json:"tags"`
	Ingredients []IngredientResponse `json:"ingredients"`
	Image       *string              `json:"image"`
}

// RecipeImageResponse is returned after an image upload.
type RecipeImageResponse struct {
	ID    string  `json:"id"`
	Image *string `json:"image"`
}

func toTagEntities(payloads []AttributePayload) []recipes.Tag {
	tags := make([]recipes.Tag, 0, len(payloads))
	for _, payload := range payloads {
		tags = append(tags, recipes.Tag{Name: payload.Name})
	}
	return tags
}

func toIngredientEntities(payloads []AttributePayload) []recipes.Ingredient {
	ingredients := make([]recipes.Ingredient, 0, len(payloads))
	for _, payload := range payloads {
		ingredients = append(ingredients, recipes.Ingredient{Name: payload.Name})
	}
	return ingredients
}

func toUserResponse(user *users.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}

func toTagResponses(tags []recipes.Tag) []TagResponse {
	responses := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, TagResponse{ID: tag.ID, Name: tag.Name})
	}
	return responses
}

func toIngredientResponses(ingredients []recipes.Ingredient) []IngredientResponse {
	responses := make([]IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		responses = append(responses, IngredientResponse{ID: ingredient.ID, Name: ingredient.Name})
	}
	return responses
}

func toRecipeSummaryResponse(recipe *recipes.Recipe) RecipeSummaryResponse {
	tagIDs := make([]string, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}
	ingredientIDs := make([]string, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredientIDs = append(ingredientIDs, ingredient.ID)
	}
	return RecipeSummaryResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Tags:        tagIDs,
		Ingredients: ingredientIDs,
	}
}

func toRecipeDetailResponse(recipe *recipes.Recipe) RecipeDetailResponse {
	return RecipeDetailResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Description: recipe.Description,
		Link:        recipe.Link,
		Tags:        toTagResponses(recipe.Tags),
		Ingredients: toIngredientResponses(recipe.Ingredients),
		Image:       toImageURL(recipe.ImagePath),
	}
}

func toRecipeImageResponse(recipe *recipes.Recipe) RecipeImageResponse {
	return RecipeImageResponse{
		ID:    recipe.ID,
		Image: toImageURL(recipe.ImagePath),
	}
}

// toImageURL converts a stored media path into the URL the edge server
// exposes it under.
func toImageURL(imagePath *string) *string {
	if imagePath == nil {
		return nil
	}
	url := mediaURLPrefix + *imagePath
	return &url
}
