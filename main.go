package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	qiitaclient "qtbot/clients/qiita"
	slackclient "qtbot/clients/slack"
	"qtbot/config"
	"qtbot/db"
	"qtbot/handlers"
	"qtbot/services/credentials"
	qiitausecase "qtbot/usecases/qiita"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize repository. Connections are opened per call; the only
	// startup interaction is ensuring the unique credentials index.
	credentialsRepo := db.NewMongoCredentialsRepository(cfg.MongoDBURL, cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := credentialsRepo.EnsureIndexes(ctx); err != nil {
		return err
	}

	credentialsService := credentials.NewCredentialsService(credentialsRepo)

	slackClient := slackclient.NewSlackClient(cfg.SlackConfig.BotToken)
	qiitaClient := qiitaclient.NewQiitaClient(&http.Client{})

	useCase := qiitausecase.NewQiitaUseCase(
		slackClient,
		qiitaClient,
		credentialsService,
		cfg.SlackConfig,
		cfg.QiitaConfig,
	)

	router := mux.NewRouter()
	slackHandler := handlers.NewSlackWebhooksHandler(cfg.SlackConfig.SigningSecret, cfg.SlackConfig.BotToken, useCase)
	slackHandler.SetupEndpoints(router)

	handler := cors.Default().Handler(router)

	log.Printf("✅ Listening on http://localhost:%s", cfg.Port)
	return http.ListenAndServe(":"+cfg.Port, handler)
}
