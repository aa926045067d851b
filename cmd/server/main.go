package main

import (
	"gallerysync/internal/app"
	"gallerysync/internal/config"
	handler "gallerysync/internal/handler/http"
	"gallerysync/internal/logger"
	"gallerysync/internal/server"
	"gallerysync/internal/store"
)

func main() {
	app.PrintBuildInfo()

	log := logger.NewLogger("gallerysync-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	objects := store.NewObjectStore()
	h := handler.NewHandler(objects, "http://"+cfg.Server.HTTPAddress, log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
