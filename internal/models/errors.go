package models

import "errors"

var (
	ErrUnauthenticated  = errors.New("operation requires a signed-in user")
	ErrForbidden        = errors.New("administrator access required")
	ErrNotFound         = errors.New("design not found")
	ErrUploadFailed     = errors.New("image upload failed")
	ErrStoreUnavailable = errors.New("object store unavailable")
)
