package main

import (
	"fmt"

	"github.com/MKhiriev/go-time-relay/internal/config"
	"github.com/MKhiriev/go-time-relay/internal/handler"
	"github.com/MKhiriev/go-time-relay/internal/logger"
	"github.com/MKhiriev/go-time-relay/internal/metrics"
	"github.com/MKhiriev/go-time-relay/internal/server"
	"github.com/MKhiriev/go-time-relay/internal/service"
	"github.com/MKhiriev/go-time-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetResolverConfig()
	if err != nil {
		logger.NewLogger(models.ServiceResolver, config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(models.ServiceResolver, cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	appMetrics := metrics.NewMetrics()

	services, err := service.NewResolverServices(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create resolver services")
	}

	handlers, err := handler.NewHandlers(services, appMetrics, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	srv.RunServer()
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
