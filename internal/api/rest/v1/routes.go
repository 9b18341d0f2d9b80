package v1

import (
	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/domain/users"
	"github.com/Renz00/recipe-vault/internal/infrastructure/ratelimit"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1. Trailing slashes
// are part of the route so clients of the original deployment keep working
// unchanged.
func SetupRoutes(r *gin.Engine,
	userAccountService users.UserAccountService,
	userAuthService users.UserAuthService,
	recipeCatalogService recipes.RecipeCatalogService,
	recipeImageService recipes.RecipeImageService,
	tagService recipes.TagService,
	ingredientService recipes.IngredientService,
	limiter ratelimit.RateLimiter) {

	api := r.Group(BasePath) // lookup in version file

	// Health Routes
	healthHandler := NewHealthHandler()
	api.GET("/health-check/", healthHandler.Check)

	// User Routes
	userHandler := NewUserHandler(userAccountService, userAuthService)
	api.POST("/user/create/", userHandler.Create)
	api.POST("/user/token/", RateLimitMiddleware(limiter), userHandler.CreateToken)

	authenticated := api.Group("", TokenAuthMiddleware(userAuthService))
	authenticated.GET("/user/me/", userHandler.GetMe)
	authenticated.PUT("/user/me/", userHandler.UpdateMe)
	authenticated.PATCH("/user/me/", userHandler.UpdateMe)

	// Recipe Routes
	recipeHandler := NewRecipeHandler(recipeCatalogService, recipeImageService)
	authenticated.GET("/recipe/recipes/", recipeHandler.List)
	authenticated.POST("/recipe/recipes/", recipeHandler.Create)
	authenticated.GET("/recipe/recipes/:id/", recipeHandler.GetByID)
	authenticated.PUT("/recipe/recipes/:id/", recipeHandler.UpdateByID)
	authenticated.PATCH("/recipe/recipes/:id/", recipeHandler.UpdateByID)
	authenticated.DELETE("/recipe/recipes/:id/", recipeHandler.DeleteByID)
	authenticated.POST("/recipe/recipes/:id/upload-image/", recipeHandler.UploadImage)

	// Tag Routes
	tagHandler := NewTagHandler(tagService)
	authenticated.GET("/recipe/tags/", tagHandler.List)
	authenticated.PUT("/recipe/tags/:id/", tagHandler.UpdateByID)
	authenticated.PATCH("/recipe/tags/:id/", tagHandler.UpdateByID)
	authenticated.DELETE("/recipe/tags/:id/", tagHandler.DeleteByID)

	// Ingredient Routes
	ingredientHandler := NewIngredientHandler(ingredientService)
	authenticated.GET("/recipe/ingredients/", ingredientHandler.List)
	authenticated.PUT("/recipe/ingredients/:id/", ingredientHandler.UpdateByID)
	authenticated.PATCH("/recipe/ingredients/:id/", ingredientHandler.UpdateByID)
	authenticated.DELETE("/recipe/ingredients/:id/", ingredientHandler.DeleteByID)
}
