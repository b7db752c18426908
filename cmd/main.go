package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/metorial/identity-core/config"
	"github.com/metorial/identity-core/db"
	"github.com/metorial/identity-core/internal/identity/cache"
	"github.com/metorial/identity-core/internal/identity/collab"
	"github.com/metorial/identity-core/internal/identity/handler"
	"github.com/metorial/identity-core/internal/identity/repository/postgres"
	"github.com/metorial/identity-core/internal/identity/service"
	"github.com/metorial/identity-core/internal/identity/token"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.DBURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	redisClient, err := db.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	store := postgres.NewRepository(pool)
	sessionCache := cache.NewRedis(redisClient, "idcore")
	stateService := token.NewStateService(cfg.StateTokenSecret)

	sessions := service.NewSessionService(store, sessionCache, logger)
	limiter := service.NewAbuseLimiter(store, logger)
	access := service.NewAccessService(store, logger)

	captcha := collab.NewHTTPCaptchaVerifier("https://www.google.com/recaptcha/api/siteverify", cfg.CaptchaSecret)
	bridge := collab.NewBridgeClient(cfg.BridgeURL)

	var notifier service.NotificationSender
	if cfg.DevMode() {
		notifier = &collab.LogNotifier{Logger: logger}
	} else {
		notifier = collab.NewQueueNotifier(getEnvOr("NOTIFY_QUEUE_URL", ""))
	}

	var oauthProviders []service.OAuthProvider
	if cfg.OAuthConfigured() {
		oauthProviders = append(oauthProviders, collab.NewOAuthClient(collab.OAuthClientConfig{
			Name:         cfg.OAuthProvider,
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			AuthURL:      cfg.OAuthAuthURL,
			TokenURL:     cfg.OAuthTokenURL,
			UserInfoURL:  cfg.OAuthUserInfoURL,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       strings.Fields(cfg.OAuthScopes),
		}))
	}

	intents := service.NewIntentService(store, sessions, limiter, captcha, notifier,
		bridge, oauthProviders, stateService, cfg.DevMode(), logger)

	authHandler := handler.NewAuthHandler(intents, sessions, access, logger)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("listen: %v", err)
	}
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
