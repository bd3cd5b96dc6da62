package util

import "errors"

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrPhotoRequired    = errors.New("both bike_photo and safety_gear_photo are required")
	ErrPlacesRequired   = errors.New("at least one place is required")
)
