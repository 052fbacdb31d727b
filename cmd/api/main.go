package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/config"
	"github.com/influencer-marketplace/backend/internal/db"
	"github.com/influencer-marketplace/backend/internal/events"
	apphttp "github.com/influencer-marketplace/backend/internal/http"
	"github.com/influencer-marketplace/backend/internal/http/handlers"
	"github.com/influencer-marketplace/backend/internal/profilestats"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"github.com/influencer-marketplace/backend/internal/services"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	brandRepo := repositories.NewBrandRepo(pool)
	influencerRepo := repositories.NewInfluencerRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	inviteRepo := repositories.NewInviteRepo(pool)
	applicationRepo := repositories.NewApplicationRepo(pool)
	submissionRepo := repositories.NewSubmissionRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	statsFetcher := profilestats.NewFetcher(cfg.StatsFetchTimeoutMS, cfg.StatsFetchMaxRetries, log)
	accountService := services.NewAccountService(brandRepo, influencerRepo, auditRepo, cfg, log)
	campaignService := services.NewCampaignService(campaignRepo, inviteRepo, applicationRepo, auditRepo, log)
	matchService := services.NewMatchService(campaignRepo, influencerRepo, log)
	engagementService := services.NewEngagementService(campaignRepo, influencerRepo, inviteRepo, applicationRepo, submissionRepo, auditRepo, publisher, log)
	profileService := services.NewProfileService(influencerRepo, auditRepo, statsFetcher, log)
	projectService := services.NewProjectService(inviteRepo, applicationRepo, submissionRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(accountService, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, matchService, log)
	profileHandler := handlers.NewProfileHandler(profileService, log)
	engagementHandler := handlers.NewEngagementHandler(engagementService, log)
	projectHandler := handlers.NewProjectHandler(projectService, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, campaignHandler, profileHandler, engagementHandler, projectHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
