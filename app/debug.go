package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/pprof"

	"bitbucket.org/kleinnic74/geoangles/consts"
	"github.com/gorilla/mux"
)

type DebugHandler struct{}

func (d DebugHandler) InitRoutes(router *mux.Router) {
	// mux introspection
	router.HandleFunc("/debug/mux", func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "text/html")
		rw.WriteHeader(http.StatusOK)
		fmt.Fprintln(rw, "<html><head><title>Endpoints</title></head><body>")
		router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
			t, err := route.GetPathTemplate()
			if err != nil {
				return err
			}
			fmt.Fprintf(rw, "<div><a href=\"%s\">%s</a></div>\n", t, t)
			return nil
		})
		fmt.Fprintln(rw, "</body></html>")
	}).Methods(http.MethodGet)

	router.HandleFunc("/debug/build", func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		json.NewEncoder(rw).Encode(map[string]interface{}{
			"commit":  consts.GitCommit,
			"repo":    consts.GitRepo,
			"devmode": consts.IsDevMode(),
		})
	}).Methods(http.MethodGet)

	// pprof routes
	router.HandleFunc("/debug/pprof/", pprof.Index).Methods(http.MethodGet)
	router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)

	router.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))
	router.Handle("/debug/pprof/threadcreate", pprof.Handler("threadcreate"))
	router.Handle("/debug/pprof/heap", pprof.Handler("heap"))
	router.Handle("/debug/pprof/allocs", pprof.Handler("allocs"))
	router.Handle("/debug/pprof/block", pprof.Handler("block"))
	router.Handle("/debug/pprof/mutex", pprof.Handler("mutex"))
}
