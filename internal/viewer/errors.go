package viewer

import "errors"

var (
	// ErrNotInCatalog indicates a model id outside the active catalog.
	ErrNotInCatalog = errors.New("viewer: model not in active catalog")

	// ErrUnknownTab indicates an info tab name that does not exist.
	ErrUnknownTab = errors.New("viewer: unknown info tab")
)
