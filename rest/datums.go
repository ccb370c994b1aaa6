package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"bitbucket.org/kleinnic74/geoangles/domain/datum"
	"bitbucket.org/kleinnic74/geoangles/library"
	"bitbucket.org/kleinnic74/geoangles/rest/cursor"
	"bitbucket.org/kleinnic74/geoangles/rest/views"
	"github.com/gorilla/mux"
)

type DatumsHandler struct{}

func NewDatumsHandler() *DatumsHandler {
	return &DatumsHandler{}
}

func (h *DatumsHandler) InitRoutes(r *mux.Router) {
	r.HandleFunc("/datums/epsg/{epsg:[0-9]+}", h.getByEPSG).Methods("GET")
	r.HandleFunc("/datums/name/{name}", h.getByName).Methods("GET")
	r.HandleFunc("/datums", h.getAll).Methods("GET")
}

func (h *DatumsHandler) getAll(w http.ResponseWriter, r *http.Request) {
	all := datum.All()
	datums := make([]views.Datum, len(all))
	for i, d := range all {
		datums[i] = views.DatumFrom(d)
	}
	Respond(r).WithJSON(w, http.StatusOK, cursor.Unpaged(datums))
}

func (h *DatumsHandler) getByEPSG(w http.ResponseWriter, r *http.Request) {
	epsg, err := strconv.Atoi(mux.Vars(r)["epsg"])
	if err != nil {
		Respond(r).WithError(w, http.StatusBadRequest, err)
		return
	}
	d, found := datum.FromEPSGNumber(epsg)
	if !found {
		respondWithError(w, r, fmt.Errorf("datum EPSG:%d: %w", epsg, library.ErrNotFound))
		return
	}
	Respond(r).WithJSON(w, http.StatusOK, views.DatumFrom(d))
}

func (h *DatumsHandler) getByName(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	d, found := datum.FromName(name)
	if !found {
		respondWithError(w, r, fmt.Errorf("datum '%s': %w", name, library.ErrNotFound))
		return
	}
	Respond(r).WithJSON(w, http.StatusOK, views.DatumFrom(d))
}
