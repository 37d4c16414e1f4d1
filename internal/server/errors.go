package server

import (
	"errors"
	"net/http"

	"tasktrack/internal/service"
)

// writeServiceError maps the domain error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		validation *service.ValidationError
		authz      *service.AuthorizationError
		notFound   *service.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		writeError(w, validation.Error(), http.StatusBadRequest)
	case errors.As(err, &authz):
		writeError(w, authz.Error(), http.StatusForbidden)
	case errors.As(err, &notFound):
		writeError(w, notFound.Error(), http.StatusNotFound)
	default:
		writeError(w, "internal error", http.StatusInternalServerError)
	}
}
