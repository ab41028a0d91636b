package catalog

import "errors"

// ErrInvalidCatalog is returned (wrapped) when a catalog document or recipe is malformed.
// It is fatal: no resolution is attempted against an invalid catalog.
var ErrInvalidCatalog = errors.New("invalid catalog")
