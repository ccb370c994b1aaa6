package rest

import (
	"errors"
	"net/http"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"bitbucket.org/kleinnic74/geoangles/library"
	"github.com/gorilla/mux"
)

// RouteInitializer is implemented by every handler of this package
type RouteInitializer interface {
	InitRoutes(r *mux.Router)
}

// statusOf maps domain errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, library.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, library.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, library.ErrNameRequired),
		errors.Is(err, gps.ErrInvalidFormat),
		errors.Is(err, gps.ErrFractionalPlacement),
		errors.Is(err, gps.ErrInvalidInterval),
		errors.Is(err, gps.ErrInvalidHemisphere):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	Respond(r).WithError(w, statusOf(err), err)
}

func cultureFromRequest(r *http.Request) (*gps.Culture, error) {
	name := r.URL.Query().Get("culture")
	if name == "" {
		return gps.Invariant, nil
	}
	c, err := gps.ParseCulture(name)
	if err != nil {
		return nil, &gps.FormatError{Input: name, Err: err}
	}
	return c, nil
}
