package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	angleRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "angles_requests_total",
		Help: "Number of angles parsed through the REST API, by kind and operation",
	}, []string{"kind", "op"})
	parseFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "angles_parse_failures_total",
		Help: "Number of values that could not be parsed as an angle, by kind",
	}, []string{"kind"})
	formatFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "angles_format_failures_total",
		Help: "Number of rejected format strings, by kind",
	}, []string{"kind"})
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests by handler and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"handler", "status"})
)

type MetricsHandler struct {
	handler http.Handler
}

func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{
		handler: promhttp.Handler(),
	}
}

func (m *MetricsHandler) InitRoutes(r *mux.Router) {
	r.Handle("/metrics", m.handler).Methods("GET")
}
