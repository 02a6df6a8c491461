package artwork

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// GetErrorResponse maps a domain error to an HTTP status and message.
// Validation failures are malformed input (400); everything else is a store
// failure passed through verbatim (500).
func GetErrorResponse(err error) (int, string) {
	if _, ok := err.(validation.Errors); ok {
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, err.Error()
}
