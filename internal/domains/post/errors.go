package post

import (
	"errors"
	"net/http"
)

// Sentinel errors for the post domain. Handlers map them to HTTP status
// codes with GetHTTPStatusCode; the message is user-facing.
var (
	ErrPostNotFound = errors.New("post not found")
)

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
