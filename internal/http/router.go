package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/config"
	"github.com/influencer-marketplace/backend/internal/http/handlers"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/rbac"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	campaignHandler *handlers.CampaignHandler,
	profileHandler *handlers.ProfileHandler,
	engagementHandler *handlers.EngagementHandler,
	projectHandler *handlers.ProjectHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/brands/register", authHandler.RegisterBrand)
	api.Post("/auth/brands/login", authHandler.LoginBrand)
	api.Post("/auth/influencers/register", authHandler.RegisterInfluencer)
	api.Post("/auth/influencers/login", authHandler.LoginInfluencer)

	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitRequests, cfg.RateLimitWindow))

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// Campaigns (brand)
	brandCampaigns := protected.Group("/campaigns", middleware.RequirePermission(rbac.PermManageCampaigns))
	brandCampaigns.Post("", campaignHandler.CreateCampaign)
	brandCampaigns.Get("", campaignHandler.ListCampaigns)
	brandCampaigns.Get("/:id", campaignHandler.GetCampaign)
	brandCampaigns.Put("/:id", campaignHandler.UpdateCampaign)
	brandCampaigns.Get("/:id/match", middleware.RequirePermission(rbac.PermRunMatching), campaignHandler.GetMatches)
	brandCampaigns.Get("/:id/applications", middleware.RequirePermission(rbac.PermReviewApplication), campaignHandler.ListApplications)

	// Open exchange (influencer)
	protected.Get("/campaigns-public", middleware.RequirePermission(rbac.PermApplyToCampaign), campaignHandler.ListPublicCampaigns)

	// Influencer directory (brand)
	protected.Get("/influencers/search", middleware.RequirePermission(rbac.PermSearchInfluencers), profileHandler.SearchInfluencers)

	// Influencer profile
	profile := protected.Group("/profile", middleware.RequirePermission(rbac.PermManageProfile))
	profile.Get("", profileHandler.GetProfile)
	profile.Put("", profileHandler.UpdateProfile)
	profile.Post("/refresh-stats", profileHandler.RefreshStats)

	// Engagement workflow
	protected.Post("/invites", middleware.RequirePermission(rbac.PermSendInvite), engagementHandler.CreateInvite)
	protected.Put("/invites/:id", middleware.RequirePermission(rbac.PermRespondToInvite), engagementHandler.UpdateInvite)
	protected.Post("/applications", middleware.RequirePermission(rbac.PermApplyToCampaign), engagementHandler.CreateApplication)
	protected.Put("/applications/:id", middleware.RequirePermission(rbac.PermReviewApplication), engagementHandler.UpdateApplication)
	protected.Post("/submissions", middleware.RequirePermission(rbac.PermSubmitContent), engagementHandler.CreateSubmission)
	protected.Put("/submissions/:id", middleware.RequirePermission(rbac.PermReviewSubmission), engagementHandler.UpdateSubmission)

	// Influencer aggregated views
	me := protected.Group("/me", middleware.RequirePermission(rbac.PermViewProjects))
	me.Get("/projects", projectHandler.ListProjects)
	me.Get("/invitations", projectHandler.ListInvitations)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
