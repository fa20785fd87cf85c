package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is the typed error domain services return. The HTTP status travels
// with the error so handlers cannot drift in how they map it.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func New(status int, detail string) *Error {
	return &Error{Status: status, Detail: detail}
}

func Unauthorized(detail string) *Error {
	return New(http.StatusUnauthorized, detail)
}

func Forbidden(detail string) *Error {
	return New(http.StatusForbidden, detail)
}

func NotFound(detail string) *Error {
	return New(http.StatusNotFound, detail)
}

func Unprocessable(detail string) *Error {
	return New(http.StatusUnprocessableEntity, detail)
}

func Internal(detail string) *Error {
	return New(http.StatusInternalServerError, detail)
}

// Detail is the standard error body: {"detail": "..."}.
type Detail struct {
	Detail string `json:"detail"`
}

// Respond writes err as a JSON error body. Unknown errors are reported as a
// 500 with a generic detail so store internals never leak to clients.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, Detail{Detail: apiErr.Detail})
		return
	}
	c.JSON(http.StatusInternalServerError, Detail{Detail: "internal server error"})
}
