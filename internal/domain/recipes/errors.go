package recipes

import "errors"

// Sentinel errors surfaced across the catalog services. Objects owned by
// other users are reported as not found so ownership cannot be probed.
var (
	// ErrNotFound indicates the recipe, tag or ingredient does not exist
	// for the requesting owner.
	ErrNotFound = errors.New("not found")

	// ErrNotAnImage indicates an upload whose content is not an accepted
	// image format.
	ErrNotAnImage = errors.New("uploaded file is not a valid image")

	// ErrDuplicateName indicates a tag or ingredient rename collides with an
	// existing attribute of the same owner.
	ErrDuplicateName = errors.New("name already exists")
)
