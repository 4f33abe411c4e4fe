package services

import (
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	"context"
)

// CacheInvalidationService drops cached claim and dashboard entries after
// writes so reads never serve stale lifecycle state.
type CacheInvalidationService struct {
	db  database.DB
	log logger.Logger
}

func NewCacheInvalidationService(db database.DB) *CacheInvalidationService {
	return &CacheInvalidationService{
		db:  db,
		log: logger.New("CacheInvalidationService"),
	}
}

func (s *CacheInvalidationService) InvalidateClaim(ctx context.Context, claimID string) {
	if claimID == "" {
		return
	}

	if err := database.NewCacheBuilder(s.db.Cache.Claim, claimID).WithContext(ctx).Delete(); err != nil {
		s.log.Function("InvalidateClaim").Warn("failed to invalidate claim cache", "claimID", claimID, "error", err)
	}

	s.InvalidateDashboard(ctx)
}

func (s *CacheInvalidationService) InvalidateDashboard(ctx context.Context) {
	for _, key := range []string{"dashboard:stats"} {
		if err := database.NewCacheBuilder(s.db.Cache.Dashboard, key).WithContext(ctx).Delete(); err != nil {
			s.log.Function("InvalidateDashboard").Warn("failed to invalidate dashboard cache", "key", key, "error", err)
		}
	}
}
