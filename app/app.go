package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"bitbucket.org/kleinnic74/geoangles/consts"
	"bitbucket.org/kleinnic74/geoangles/library"
	"bitbucket.org/kleinnic74/geoangles/library/boltstore"
	"bitbucket.org/kleinnic74/geoangles/library/spatial"
	"bitbucket.org/kleinnic74/geoangles/logging"
	"bitbucket.org/kleinnic74/geoangles/rest"
	"bitbucket.org/kleinnic74/geoangles/swarm"
	"github.com/gorilla/mux"
	"github.com/kleinnic74/fflags"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

type App struct {
	dir string

	db     *bolt.DB
	peers  *swarm.Controller
	router *mux.Router

	addr string

	shutdownHandlers shutdownHandlers
}

type Options struct {
	DataDir  string `json:"datadir"`
	Port     uint   `json:"port"`
	Announce bool   `json:"announce"`
}

type shutdownHandler func(context.Context, *App)

const (
	dbName = "geoangles.db"
)

var waypointsAPI = fflags.Define("rest.waypoints")

// The waypoint API is on unless a feature file turns it off
func init() {
	waypointsAPI.Enable()
}

type shutdownHandlers struct {
	h []shutdownHandler
}

func (hdls *shutdownHandlers) Add(h shutdownHandler) {
	hdls.h = append(hdls.h, h)
}

func (hdls shutdownHandlers) Execute(ctx context.Context, a *App) {
	for i := len(hdls.h) - 1; i >= 0; i-- {
		hdls.h[i](ctx, a)
	}
}

func NewApp(ctx context.Context, o Options) (a *App, err error) {
	logger, ctx := logging.SubFrom(ctx, "app")

	logger.Info("Data directory", zap.String("dir", o.DataDir))
	if err = os.MkdirAll(o.DataDir, os.ModePerm); err != nil {
		return nil, err
	}

	a = &App{
		dir:    o.DataDir,
		addr:   fmt.Sprintf(":%d", o.Port),
		router: mux.NewRouter(),
	}
	defer func() {
		if err != nil {
			a.shutdownHandlers.Execute(ctx, a)
		}
	}()

	a.db, err = bolt.Open(filepath.Join(o.DataDir, dbName), 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("Failed to initialize data store: %w", err)
	}
	a.shutdownHandlers.Add(func(ctx context.Context, a *App) {
		a.db.Close()
		logging.From(ctx).Info("Closed data store")
	})

	var store library.ClosableStore
	if store, err = boltstore.NewBoltStore(a.db); err != nil {
		return nil, fmt.Errorf("Failed to initialize waypoint store: %w", err)
	}

	if err = fflags.IfEnabled(waypointsAPI, func() error {
		indexed, err := spatial.NewIndexedStore(ctx, store)
		if err != nil {
			return err
		}
		waypoints := rest.NewWaypointsHandler(indexed)
		waypoints.InitRoutes(a.router)
		logger.Info("Waypoint API enabled")
		return nil
	}); err != nil {
		return nil, fmt.Errorf("Failed to initialize waypoint API: %w", err)
	}

	if o.Announce {
		var instance *swarm.Instance
		instance, err = swarm.NewInstance(ctx, a.db, DefaultInstanceProperties()...)
		if err != nil {
			return nil, fmt.Errorf("Failed to initialize swarm with unique local ID: %w", err)
		}
		logger, ctx = logging.FromWithFields(ctx, zap.Stringer("instance", instance.ID))
		logger.Info("Announcing instance", zap.String("name", instance.Name))

		a.peers = swarm.NewController(instance, o.Port)
		peersRest := rest.NewPeersAPI(a.peers)
		peersRest.InitRoutes(a.router)
	}

	// REST Handlers

	metrics := rest.NewMetricsHandler()
	metrics.InitRoutes(a.router)

	if consts.IsDevMode() {
		logs := rest.NewLogsHandler()
		logs.InitRoutes(a.router)
		debugService := DebugHandler{}
		debugService.InitRoutes(a.router)
	}

	angles := rest.NewAnglesHandler()
	angles.InitRoutes(a.router)

	datums := rest.NewDatumsHandler()
	datums.InitRoutes(a.router)

	return a, nil
}

// Handler returns the HTTP handler serving all registered routes
func (a *App) Handler() http.Handler {
	return rest.WithMiddleWares(a.router, "rest")
}

func (a *App) Run(ctx context.Context) {
	logger, ctx := logging.SubFrom(ctx, "app")

	var wg sync.WaitGroup
	if a.peers != nil {
		wg.Add(1)
		go func() {
			logger, ctx := logging.SubFrom(ctx, "swarm")
			a.peers.ListenAndServe(ctx)
			logger.Info("DONE")
			wg.Done()
		}()
	}

	server := http.Server{
		Addr:        a.addr,
		Handler:     a.Handler(),
		BaseContext: func(l net.Listener) context.Context { return ctx },
	}
	wg.Add(1)
	go func() {
		logger, _ := logging.SubFrom(ctx, "http")
		logger.Info("Starting HTTP server...", zap.String("bindAddr", a.addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
		logger.Info("DONE")
		wg.Done()
	}()

	<-ctx.Done()

	logger.Info("Stopping...")

	if a.peers != nil {
		a.peers.Shutdown()
	}

	ctxShutdown, cancelServerShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelServerShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	wg.Wait()

	a.shutdownHandlers.Execute(ctx, a)

	logger.Info("Terminated gracefully")
}

// Close releases resources without serving, used when Run is never called
func (a *App) Close(ctx context.Context) {
	a.shutdownHandlers.Execute(ctx, a)
}
