package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-forum-board/internal/config"
	"github.com/MKhiriev/go-forum-board/internal/crypto"
	myHTTP "github.com/MKhiriev/go-forum-board/internal/handler/http"
	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/internal/server"
	"github.com/MKhiriev/go-forum-board/internal/service"
	"github.com/MKhiriev/go-forum-board/internal/session"
	"github.com/MKhiriev/go-forum-board/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("forum-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	credentials, err := crypto.NewCredentialService(cfg.Auth.PasswordSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating credential service")
	}

	sessions := session.NewManager(cfg.Auth)
	services := service.NewServices(storages, credentials, sessions, log)
	handler := myHTTP.NewHandler(services, sessions, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
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
