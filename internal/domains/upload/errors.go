package upload

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingField — base64Image or filename absent.
	ErrMissingField = errors.New("Missing base64Image or filename")
	// ErrInvalidBase64 — the payload is not decodable base64.
	ErrInvalidBase64 = errors.New("Invalid base64 data")
)

// TooLargeError carries the per-bucket ceiling for the error message.
type TooLargeError struct {
	MaxKB int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("Image too large. Maximum %dKB.", e.MaxKB)
}

// GetErrorResponse maps an upload error to an HTTP status and message.
func GetErrorResponse(err error) (int, string) {
	var tooLarge *TooLargeError
	switch {
	case errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidBase64), errors.As(err, &tooLarge):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
