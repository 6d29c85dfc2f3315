package webhook

import (
	"errors"
	"net/http"
)

var (
	// ErrEntryNotFound: the notification referenced an entry the CMS no
	// longer resolves to a post. Treated as a client error, matching the
	// CMS's own redelivery semantics.
	ErrEntryNotFound = errors.New("blog not found")

	// ErrPurgeFailed: the CDN rejected or never received the purge call.
	ErrPurgeFailed = errors.New("cache purge failed")
)

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrEntryNotFound):
		return http.StatusBadRequest
	case errors.Is(err, ErrPurgeFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
