package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/crewchat-dev/crewchat/internal/config"
	"github.com/crewchat-dev/crewchat/internal/logger"
	"github.com/crewchat-dev/crewchat/internal/router"
	"github.com/crewchat-dev/crewchat/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps := setup.SetupDependencies(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	deps.Scheduler.Start(ctx, cfg.SchedulerTick())

	r := router.New(deps)

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = "8080"
	}
	logger.Log.Info("server started", "port", httpPort)

	if err := http.ListenAndServe(":"+httpPort, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
