package apperrors

import "errors"

var (
	ErrPermissionDenied  = errors.New("enforcement permission not granted")
	ErrDeviceUnavailable = errors.New("device port unavailable")
	ErrModeNotFound      = errors.New("focus mode not found")
	ErrNoActiveMode      = errors.New("no focus mode active")
)
