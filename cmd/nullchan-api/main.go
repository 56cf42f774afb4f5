package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/nullchan-dev/nullchan/internal/config"
	"github.com/nullchan-dev/nullchan/internal/logger"
	"github.com/nullchan-dev/nullchan/internal/router"
	"github.com/nullchan-dev/nullchan/internal/setup"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("initializing dependencies", "err", err)
		os.Exit(1)
	}
	defer deps.Cleanup()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Public.Port),
		Handler:      router.New(deps),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logger.Log.Info("server started", "addr", server.Addr, "data_dir", cfg.Public.DataDir)
	if err := server.ListenAndServe(); err != nil {
		logger.Log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
