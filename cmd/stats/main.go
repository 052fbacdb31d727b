package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/config"
	"github.com/influencer-marketplace/backend/internal/db"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/profilestats"
	"github.com/influencer-marketplace/backend/internal/repositories"
)

// Background follower refresher. Walks influencers that have a public profile
// URL and re-scrapes their follower counts on an interval, so search and
// matching rank against numbers that are at most one cycle stale.
func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	influencerRepo := repositories.NewInfluencerRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)
	fetcher := profilestats.NewFetcher(cfg.StatsFetchTimeoutMS, cfg.StatsFetchMaxRetries, log)

	log.Info("stats refresher started", zap.Duration("interval", cfg.StatsRefreshInterval))

	// Initial run
	runStatsRefresh(ctx, influencerRepo, auditRepo, fetcher, rdb, cfg, log)

	ticker := time.NewTicker(cfg.StatsRefreshInterval)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			runStatsRefresh(ctx, influencerRepo, auditRepo, fetcher, rdb, cfg, log)
		case <-sigCh:
			log.Info("shutting down stats refresher")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

func runStatsRefresh(
	ctx context.Context,
	influencerRepo *repositories.InfluencerRepo,
	auditRepo *repositories.AuditRepo,
	fetcher *profilestats.Fetcher,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {
	influencers, err := influencerRepo.ListWithProfileURL(ctx, 200)
	if err != nil {
		log.Error("failed to list influencers for refresh", zap.Error(err))
		return
	}

	log.Info("refreshing follower counts", zap.Int("influencers", len(influencers)))

	for _, inf := range influencers {
		// One refresh per influencer per cycle, even across restarts.
		rlKey := fmt.Sprintf("rl:stats:%s", inf.ID)
		if rdb.Exists(ctx, rlKey).Val() > 0 {
			continue
		}
		rdb.Set(ctx, rlKey, "1", cfg.StatsRefreshInterval)

		stats, err := fetcher.Fetch(ctx, *inf.ProfileURL)
		if err != nil {
			log.Warn("profile fetch failed",
				zap.String("influencer_id", inf.ID.String()),
				zap.Error(err))
			continue
		}
		if stats.Followers == nil || *stats.Followers == inf.Followers {
			continue
		}

		if err := influencerRepo.UpdateFollowers(ctx, inf.ID, *stats.Followers); err != nil {
			log.Error("failed to update followers",
				zap.String("influencer_id", inf.ID.String()),
				zap.Error(err))
			continue
		}

		infID := inf.ID
		_ = auditRepo.Log(ctx, models.AuditLog{
			ActorType:  models.ActorTypeSystem,
			Action:     "stats_refreshed",
			EntityType: "influencer",
			EntityID:   &infID,
			Meta:       map[string]any{"followers": *stats.Followers, "previous": inf.Followers},
		})

		log.Info("followers updated",
			zap.String("influencer_id", inf.ID.String()),
			zap.Int("followers", *stats.Followers))

		// Small delay between requests to avoid rate limiting
		time.Sleep(2 * time.Second)
	}
}
