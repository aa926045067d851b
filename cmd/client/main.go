package main

import (
	"context"

	"gallerysync/internal/app"
	"gallerysync/internal/client"
	"gallerysync/internal/config"
	"gallerysync/internal/logger"
)

func main() {
	app.PrintBuildInfo()

	log := logger.NewClientLogger("gallerysync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	galleryApp, err := client.NewApp(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = galleryApp.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
