package main

import (
	"context"
	"fmt"
	"os"

	"vault-srv/config"
	"vault-srv/config/postgre"
	configRedis "vault-srv/config/redis"
	configStorage "vault-srv/config/storage"
	"vault-srv/internal/httpserver"
	"vault-srv/pkg/discord"
	"vault-srv/pkg/log"
	"vault-srv/pkg/mailer"
	"vault-srv/pkg/push"
	"vault-srv/pkg/scope"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize object storage
	storageClient, err := configStorage.Connect(ctx, logger, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to object storage: ", err)
		return
	}
	defer configStorage.Disconnect(ctx)
	logger.Infof(ctx, "Object storage connected successfully to %s", cfg.MinIO.Endpoint)

	// Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Initialize mailer
	mailerClient, err := mailer.New(logger, mailer.Config{
		APIKey:   cfg.Mailer.APIKey,
		Endpoint: cfg.Mailer.Endpoint,
		From:     cfg.Mailer.From,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize mailer: ", err)
		return
	}

	// Initialize push gateway. Optional: without a service account the
	// service runs email-only.
	var pushClient push.IPush
	if cfg.Push.ServiceAccountFile != "" {
		serviceAccount, err := os.ReadFile(cfg.Push.ServiceAccountFile)
		if err != nil {
			logger.Error(ctx, "Failed to read push service account: ", err)
			return
		}
		pushClient, err = push.New(logger, push.Config{
			ProjectID:          cfg.Push.ProjectID,
			ServiceAccountJSON: serviceAccount,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize push gateway: ", err)
			return
		}
	}

	// Initialize Discord. Optional ops channel.
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
	}

	// Initialize JWT manager
	jwtManager := scope.New(cfg.JWT.SecretKey)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port: cfg.Server.Port,
		Mode: cfg.Server.Mode,

		Monitor: cfg.Monitor,
		Portal:  cfg.Portal,

		JWTManager:  jwtManager,
		InternalKey: cfg.Internal.InternalKey,

		DB:      postgresDB,
		Storage: storageClient,
		Redis:   redisClient,
		Mailer:  mailerClient,
		Push:    pushClient,
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
