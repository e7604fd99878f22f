package main

import (
	"fmt"

	"github.com/peoplescope/peoplescope/internal/adapter"
	"github.com/peoplescope/peoplescope/internal/client"
	"github.com/peoplescope/peoplescope/internal/config"
	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/service"
	"github.com/peoplescope/peoplescope/internal/store"
	"github.com/peoplescope/peoplescope/internal/tui"
	"github.com/peoplescope/peoplescope/internal/workers"
	"github.com/peoplescope/peoplescope/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("peoplescope-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(serverAdapter, localStorage, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	jobs := workers.NewWorkers(localStorage.SearchCache, cfg.Workers, cfg.Storage.Cache, log)

	app, err := client.NewApp(services, ui, jobs, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
