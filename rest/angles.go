package rest

import (
	"fmt"
	"net/http"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"bitbucket.org/kleinnic74/geoangles/logging"
	"bitbucket.org/kleinnic74/geoangles/rest/views"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type angleOps struct {
	parse     func(string, *gps.Culture) (gps.Angle, error)
	normalize func(gps.Angle) gps.Angle
	mirror    func(gps.Angle) gps.Angle
}

var angleKinds = map[string]angleOps{
	"azimuth": {
		parse:     func(s string, c *gps.Culture) (gps.Angle, error) { return gps.ParseAzimuth(s, c) },
		normalize: func(a gps.Angle) gps.Angle { return a.(gps.Azimuth).Normalize() },
		mirror:    func(a gps.Angle) gps.Angle { return a.(gps.Azimuth).Mirror() },
	},
	"latitude": {
		parse:     func(s string, c *gps.Culture) (gps.Angle, error) { return gps.ParseLatitude(s, c) },
		normalize: func(a gps.Angle) gps.Angle { return a.(gps.Latitude).Normalize() },
		mirror:    func(a gps.Angle) gps.Angle { return a.(gps.Latitude).Mirror() },
	},
	"longitude": {
		parse:     func(s string, c *gps.Culture) (gps.Angle, error) { return gps.ParseLongitude(s, c) },
		normalize: func(a gps.Angle) gps.Angle { return a.(gps.Longitude).Normalize() },
		mirror:    func(a gps.Angle) gps.Angle { return a.(gps.Longitude).Mirror() },
	},
}

// AnglesHandler parses, converts and formats angles given as query parameters
type AnglesHandler struct{}

func NewAnglesHandler() *AnglesHandler {
	return &AnglesHandler{}
}

func (h *AnglesHandler) InitRoutes(r *mux.Router) {
	r.HandleFunc("/angles/azimuth/compass.svg", h.getCompass).Methods("GET")
	r.HandleFunc("/angles/{kind}", h.getAngle).Methods("GET")
}

func (h *AnglesHandler) getAngle(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]
	ops, found := angleKinds[kind]
	if !found {
		Respond(r).WithError(w, http.StatusNotFound, fmt.Errorf("unknown kind of angle '%s'", kind))
		return
	}
	culture, err := cultureFromRequest(r)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	q := r.URL.Query()
	input, op := q.Get("value"), q.Get("op")
	logger := logging.From(r.Context()).With(zap.String("kind", kind), zap.String("value", input), zap.String("op", op))

	angle, err := ops.parse(input, culture)
	if err != nil {
		parseFailures.WithLabelValues(kind).Inc()
		logger.Info("Failed to parse angle", zap.Error(err))
		respondWithError(w, r, err)
		return
	}
	switch op {
	case "":
	case "normalize":
		angle = ops.normalize(angle)
	case "mirror":
		angle = ops.mirror(angle)
	default:
		Respond(r).WithError(w, http.StatusBadRequest, fmt.Errorf("unknown operation '%s'", op))
		return
	}
	angleRequests.WithLabelValues(kind, op).Inc()

	formatted, err := angle.Format(q.Get("format"), culture)
	if err != nil {
		formatFailures.WithLabelValues(kind).Inc()
		respondWithError(w, r, err)
		return
	}
	logger.Debug("Angle parsed", zap.Float64("degrees", angle.DecimalDegrees()))
	Respond(r).WithJSON(w, http.StatusOK, views.AngleFrom(kind, input, formatted, angle))
}

func (h *AnglesHandler) getCompass(w http.ResponseWriter, r *http.Request) {
	culture, err := cultureFromRequest(r)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	azimuth, err := gps.ParseAzimuth(r.URL.Query().Get("value"), culture)
	if err != nil {
		parseFailures.WithLabelValues("azimuth").Inc()
		respondWithError(w, r, err)
		return
	}
	angleRequests.WithLabelValues("azimuth", "compass").Inc()
	respondWithSVG(w, func(w http.ResponseWriter) {
		DrawCompass(w, azimuth, culture)
	})
}
