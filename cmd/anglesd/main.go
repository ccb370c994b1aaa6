// anglesd serves the angle, datum and waypoint REST API
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"bitbucket.org/kleinnic74/geoangles/app"
	"bitbucket.org/kleinnic74/geoangles/logging"
	"github.com/joho/godotenv"
	"github.com/kleinnic74/fflags"
	"go.uber.org/zap"
)

var (
	options      app.Options
	logFile      string
	featuresFile string
)

// Defaults come from the environment, a .env file in the working directory
// is loaded first if present. Flags override both.
func defaults() app.Options {
	o := app.Options{
		DataDir: getEnv("GEOANGLES_DATADIR", "geoangles"),
		Port:    8080,
	}
	if p, err := strconv.ParseUint(getEnv("GEOANGLES_PORT", ""), 10, 16); err == nil {
		o.Port = uint(p)
	}
	o.Announce, _ = strconv.ParseBool(getEnv("GEOANGLES_ANNOUNCE", "false"))
	return o
}

func getEnv(key, fallback string) string {
	if v, found := os.LookupEnv(key); found && v != "" {
		return v
	}
	return fallback
}

// loadFeatures applies the feature states of a YAML file such as
//
//	features:
//	  rest:
//	    waypoints: false
func loadFeatures(path string) {
	if path == "" {
		return
	}
	fflags.Init(fflags.YamlFile(path))
}

func main() {
	envErr := godotenv.Load()

	d := defaults()
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.UintVar(&options.Port, "p", d.Port, "HTTP port to listen on")
	flag.StringVar(&options.DataDir, "d", d.DataDir, "Path to data directory")
	flag.BoolVar(&options.Announce, "announce", d.Announce, "Announce this instance on the local network")
	flag.StringVar(&logFile, "log", getEnv("GEOANGLES_LOGFILE", ""), "Also write logs as JSON to this file")
	flag.StringVar(&featuresFile, "features", getEnv("GEOANGLES_FEATURES", ""), "YAML file enabling or disabling features")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger, ctx := logging.SubFrom(ctx, "main")
	if envErr != nil {
		logger.Debug("No .env file loaded", zap.Error(envErr))
	}
	if logFile != "" {
		if err := logging.LogToFile(logFile); err != nil {
			logger.Fatal("Cannot log to file", zap.String("file", logFile), zap.Error(err))
		}
	}

	loadFeatures(featuresFile)
	logger.Info("Feature flags", zap.Bool("rest.waypoints", fflags.IsEnabled(fflags.Define("rest.waypoints"))))

	a, err := app.NewApp(ctx, options)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	a.Run(ctx)
}
