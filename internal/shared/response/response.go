package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire contract is a flat envelope: {"success": true, ...payload} on the
// happy path and {"success": false, "error": "..."} otherwise. Every logical
// outcome is HTTP 200; 400 is reserved for malformed input and 500 for
// unexpected failures.

// OK writes a success envelope with the given payload fields merged in.
func OK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail writes a failure envelope with the given status code.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

// BadRequest is a 400 failure.
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// InternalError is a 500 failure. The upstream error text is passed through
// verbatim; there is no sensitive internal detail at stake here.
func InternalError(c *gin.Context, err error) {
	Fail(c, http.StatusInternalServerError, err.Error())
}
