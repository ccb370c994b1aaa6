package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"bitbucket.org/kleinnic74/geoangles/consts"
	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"bitbucket.org/kleinnic74/geoangles/library"
	"bitbucket.org/kleinnic74/geoangles/library/csvio"
	"bitbucket.org/kleinnic74/geoangles/library/spatial"
	"bitbucket.org/kleinnic74/geoangles/logging"
	"bitbucket.org/kleinnic74/geoangles/rest/cursor"
	"bitbucket.org/kleinnic74/geoangles/rest/views"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type visitable interface {
	Visit(spatial.Visitor)
}

// WaypointsHandler is the REST API of the waypoint store
type WaypointsHandler struct {
	store library.WaypointStore
}

func NewWaypointsHandler(store library.WaypointStore) *WaypointsHandler {
	return &WaypointsHandler{store: store}
}

func (h *WaypointsHandler) InitRoutes(r *mux.Router) {
	if index, ok := h.store.(library.GeoIndex); ok {
		r.HandleFunc("/waypoints/within", h.getWithin(index)).Methods("GET")
	}
	if index, ok := h.store.(visitable); ok {
		r.HandleFunc("/waypoints/index.svg", h.getIndexView(index)).Methods("GET")
	}
	r.HandleFunc("/waypoints/map.svg", h.getMap).Methods("GET")
	r.HandleFunc("/waypoints/export.csv", h.exportCSV).Methods("GET")
	r.HandleFunc("/waypoints/import.csv", h.importCSV).Methods("POST")
	r.HandleFunc("/waypoints/name/{name}", h.getByName).Methods("GET")
	r.HandleFunc("/waypoints/{id}", h.getWaypoint).Methods("GET")
	r.HandleFunc("/waypoints/{id}", h.deleteWaypoint).Methods("DELETE")
	r.HandleFunc("/waypoints", h.getWaypoints).Methods("GET")
	r.HandleFunc("/waypoints", h.postWaypoint).Methods("POST")
}

// waypointRequest carries angles as text so that any notation the parsers
// accept can be posted
type waypointRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Heading  string `json:"heading"`
	Datum    string `json:"datum"`
	Culture  string `json:"culture"`
}

func (req waypointRequest) toWaypoint() (*library.Waypoint, error) {
	c, err := gps.ParseCulture(req.Culture)
	if err != nil {
		return nil, &gps.FormatError{Input: req.Culture, Err: err}
	}
	return library.ParseWaypoint(req.Name, req.Position, req.Heading, req.Datum, c)
}

func (h *WaypointsHandler) postWaypoint(w http.ResponseWriter, r *http.Request) {
	logger := logging.From(r.Context())
	var req waypointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Respond(r).WithError(w, http.StatusBadRequest, err)
		return
	}
	waypoint, err := req.toWaypoint()
	if err != nil {
		logger.Info("Rejected waypoint", zap.String("name", req.Name), zap.Error(err))
		respondWithError(w, r, err)
		return
	}
	if err := h.store.Add(r.Context(), waypoint); err != nil {
		respondWithError(w, r, err)
		return
	}
	logger.Info("Waypoint added", zap.String("id", string(waypoint.ID)), zap.String("name", waypoint.Name))
	view := views.WaypointFrom(waypoint, gps.Invariant)
	w.Header().Set("Location", view.Links["self"])
	Respond(r).WithJSON(w, http.StatusCreated, view)
}

func (h *WaypointsHandler) getWaypoints(w http.ResponseWriter, r *http.Request) {
	culture, err := cultureFromRequest(r)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	c := cursor.DecodeFromRequest(r)
	order := consts.Ascending
	if r.URL.Query().Get("order") == "desc" {
		order = consts.Descending
	}
	waypoints, hasMore, err := h.store.FindAllPaged(r.Context(), c.Start, c.PageSize, order)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	logging.From(r.Context()).Named("http").Debug("/waypoints",
		zap.Bool("hasMore", hasMore), zap.Int("start", c.Start), zap.Int("page", c.PageSize))
	waypointViews := make([]views.Waypoint, len(waypoints))
	for i, wp := range waypoints {
		waypointViews[i] = views.WaypointFrom(wp, culture)
	}
	Respond(r).WithJSON(w, http.StatusOK, cursor.PageFor(waypointViews, r.URL, c, hasMore))
}

func (h *WaypointsHandler) getWaypoint(w http.ResponseWriter, r *http.Request) {
	culture, err := cultureFromRequest(r)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	waypoint, err := h.store.Get(r.Context(), library.WaypointID(mux.Vars(r)["id"]))
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	Respond(r).WithJSON(w, http.StatusOK, views.WaypointFrom(waypoint, culture))
}

func (h *WaypointsHandler) getByName(w http.ResponseWriter, r *http.Request) {
	culture, err := cultureFromRequest(r)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	waypoint, err := h.store.FindByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	Respond(r).WithJSON(w, http.StatusOK, views.WaypointFrom(waypoint, culture))
}

func (h *WaypointsHandler) deleteWaypoint(w http.ResponseWriter, r *http.Request) {
	id := library.WaypointID(mux.Vars(r)["id"])
	if err := h.store.Delete(r.Context(), id); err != nil {
		respondWithError(w, r, err)
		return
	}
	logging.From(r.Context()).Info("Waypoint deleted", zap.String("id", string(id)))
	w.WriteHeader(http.StatusNoContent)
}

func (h *WaypointsHandler) getMap(w http.ResponseWriter, r *http.Request) {
	waypoints, _, err := h.store.FindAllPaged(r.Context(), 0, 0, consts.Ascending)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithSVG(w, func(w http.ResponseWriter) {
		view := NewGeoView(w, viewBoundsOf(waypoints))
		for _, wp := range waypoints {
			view.Waypoint(wp)
		}
		view.Close()
	})
}

// parseBBox reads "minLon,minLat,maxLon,maxLat" in decimal degrees
func parseBBox(s string) (gps.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return gps.Rect{}, &gps.FormatError{Input: s, Err: gps.ErrInvalidFormat}
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return gps.Rect{}, &gps.FormatError{Input: s, Err: gps.ErrInvalidFormat}
		}
		v[i] = f
	}
	return gps.RectFrom(v[0], v[1], v[2], v[3]), nil
}

func (h *WaypointsHandler) getWithin(index library.GeoIndex) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		culture, err := cultureFromRequest(r)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		bounds, err := parseBBox(r.URL.Query().Get("bbox"))
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		waypoints, err := index.Within(r.Context(), bounds)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		waypointViews := make([]views.Waypoint, len(waypoints))
		for i, wp := range waypoints {
			waypointViews[i] = views.WaypointFrom(wp, culture)
		}
		Respond(r).WithJSON(w, http.StatusOK, cursor.Unpaged(waypointViews))
	}
}

func (h *WaypointsHandler) getIndexView(index visitable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithSVG(w, func(w http.ResponseWriter) {
			index.Visit(&indexView{out: w})
		})
	}
}

func (h *WaypointsHandler) exportCSV(w http.ResponseWriter, r *http.Request) {
	culture, err := cultureFromRequest(r)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	waypoints, _, err := h.store.FindAllPaged(r.Context(), 0, 0, consts.Ascending)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="waypoints.csv"`)
	if err := csvio.Export(w, waypoints, culture); err != nil {
		logging.From(r.Context()).Warn("CSV export failed", zap.Error(err))
	}
}

type rejectedRow struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

func (h *WaypointsHandler) importCSV(w http.ResponseWriter, r *http.Request) {
	logger := logging.From(r.Context())
	culture, err := cultureFromRequest(r)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	results, err := csvio.Import(r.Body, culture)
	if err != nil {
		Respond(r).WithError(w, http.StatusBadRequest, err)
		return
	}
	data := struct {
		Added    []views.Waypoint `json:"added"`
		Rejected []rejectedRow    `json:"rejected"`
	}{
		Added:    []views.Waypoint{},
		Rejected: []rejectedRow{},
	}
	for _, result := range results {
		if result.Err == nil {
			result.Err = h.store.Add(r.Context(), result.Waypoint)
		}
		if result.Err != nil {
			data.Rejected = append(data.Rejected, rejectedRow{Row: result.Row, Error: result.Err.Error()})
			continue
		}
		data.Added = append(data.Added, views.WaypointFrom(result.Waypoint, culture))
	}
	logger.Info("Imported waypoints", zap.Int("added", len(data.Added)), zap.Int("rejected", len(data.Rejected)))
	Respond(r).WithJSON(w, http.StatusOK, &simplePayload{Data: data})
}
