package recipes

import (
	"context"
	"io"
	"mime/multipart"
)

// RecipeCatalogService defines methods for managing a user's recipes.
type RecipeCatalogService interface {
	// List retrieves the owner's recipes considering the query filters.
	List(ctx context.Context, query *RecipeQuery) ([]*Recipe, error)

	// GetByID retrieves one of the owner's recipes with attributes attached.
	GetByID(ctx context.Context, userID, recipeID string) (*Recipe, error)

	// Create persists a new recipe. Attribute entries carrying names only
	// are resolved against the owner's existing tags/ingredients or created.
	Create(ctx context.Context, recipe *Recipe) (*Recipe, error)

	// UpdateByID applies a partial update to one of the owner's recipes.
	UpdateByID(ctx context.Context, userID, recipeID string, update *RecipeUpdate) (*Recipe, error)

	// DeleteByID removes one of the owner's recipes.
	DeleteByID(ctx context.Context, userID, recipeID string) error
}

// RecipeImageService defines methods for attaching images to recipes.
type RecipeImageService interface {
	// UploadImage stores the file under the media root and records its path
	// on the recipe, replacing any previous image.
	UploadImage(ctx context.Context, userID, recipeID string, file *multipart.FileHeader) (*Recipe, error)
}

// TagService defines methods for listing and managing tags.
type TagService interface {
	// List retrieves the owner's tags considering the query filters.
	List(ctx context.Context, query *AttributeQuery) ([]*Tag, error)
	// UpdateByID renames one of the owner's tags.
	UpdateByID(ctx context.Context, userID, tagID, name string) (*Tag, error)
	// DeleteByID removes one of the owner's tags.
	DeleteByID(ctx context.Context, userID, tagID string) error
}

// IngredientService defines methods for listing and managing ingredients.
type IngredientService interface {
	// List retrieves the owner's ingredients considering the query filters.
	List(ctx context.Context, query *AttributeQuery) ([]*Ingredient, error)
	// UpdateByID renames one of the owner's ingredients.
	UpdateByID(ctx context.Context, userID, ingredientID, name string) (*Ingredient, error)
	// DeleteByID removes one of the owner's ingredients.
	DeleteByID(ctx context.Context, userID, ingredientID string) error
}

// RecipeRepository defines the interface for Recipe-related operations
type RecipeRepository interface {
	// Create adds a new Recipe with its attribute attachments
	Create(ctx context.Context, recipe *Recipe) error
	// List lists Recipes matching the query, attributes attached
	List(ctx context.Context, query *RecipeQuery) ([]*Recipe, error)
	// GetByID retrieves an owner's Recipe by ID, attributes attached
	GetByID(ctx context.Context, userID, recipeID string) (*Recipe, error)
	// UpdateByID updates a Recipe's scalar fields
	UpdateByID(ctx context.Context, recipe *Recipe) error
	// ReplaceTags swaps the recipe's attached tag set
	ReplaceTags(ctx context.Context, recipeID string, tags []Tag) error
	// ReplaceIngredients swaps the recipe's attached ingredient set
	ReplaceIngredients(ctx context.Context, recipeID string, ingredients []Ingredient) error
	// DeleteByID deletes an owner's Recipe by ID
	DeleteByID(ctx context.Context, userID, recipeID string) error
}

// TagRepository defines the interface for Tag-related operations
type TagRepository interface {
	// List lists Tags matching the query
	List(ctx context.Context, query *AttributeQuery) ([]*Tag, error)
	// GetByID retrieves an owner's Tag by ID
	GetByID(ctx context.Context, userID, tagID string) (*Tag, error)
	// GetOrCreate finds an owner's Tag by name or creates it
	GetOrCreate(ctx context.Context, userID, name string) (*Tag, error)
	// UpdateByID updates a Tag
	UpdateByID(ctx context.Context, tag *Tag) error
	// DeleteByID deletes an owner's Tag by ID
	DeleteByID(ctx context.Context, userID, tagID string) error
}

// IngredientRepository defines the interface for Ingredient-related operations
type IngredientRepository interface {
	// List lists Ingredients matching the query
	List(ctx context.Context, query *AttributeQuery) ([]*Ingredient, error)
	// GetByID retrieves an owner's Ingredient by ID
	GetByID(ctx context.Context, userID, ingredientID string) (*Ingredient, error)
	// GetOrCreate finds an owner's Ingredient by name or creates it
	GetOrCreate(ctx context.Context, userID, name string) (*Ingredient, error)
	// UpdateByID updates an Ingredient
	UpdateByID(ctx context.Context, ingredient *Ingredient) error
	// DeleteByID deletes an owner's Ingredient by ID
	DeleteByID(ctx context.Context, userID, ingredientID string) error
}

// MediaStore is an interface for persisting uploaded media on the shared
// volume. Paths are relative to the media root.
type MediaStore interface {
	// Save writes content at the relative path, creating directories as
	// needed, and returns any error encountered.
	Save(ctx context.Context, relPath string, content io.Reader) error

	// Remove deletes the file at the relative path. Missing files are not
	// an error.
	Remove(ctx context.Context, relPath string) error
}
