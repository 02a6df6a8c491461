package archive

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// GetErrorResponse maps a domain error to an HTTP status and message.
func GetErrorResponse(err error) (int, string) {
	if _, ok := err.(validation.Errors); ok {
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, err.Error()
}
