package dashboardController

import (
	"claimdesk/config"
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/repositories"
	"context"
	"time"
)

const statsCacheKey = "dashboard:stats"

// DashboardController aggregates the reporting views. The headline stats
// are cached briefly since every dashboard load requests them.
type DashboardController struct {
	dashboardRepo repositories.DashboardRepository
	patientRepo   repositories.PatientRepository
	db            database.DB
	cacheTTL      time.Duration
	log           logger.Logger
}

func New(
	dashboardRepo repositories.DashboardRepository,
	patientRepo repositories.PatientRepository,
	db database.DB,
	config config.Config,
) *DashboardController {
	ttl := time.Duration(config.DashboardCacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &DashboardController{
		dashboardRepo: dashboardRepo,
		patientRepo:   patientRepo,
		db:            db,
		cacheTTL:      ttl,
		log:           logger.New("DashboardController"),
	}
}

func (dc *DashboardController) GetStats(ctx context.Context) (*DashboardStats, error) {
	log := dc.log.Function("GetStats")

	var stats DashboardStats
	found, err := database.NewCacheBuilder(dc.db.Cache.Dashboard, statsCacheKey).
		WithContext(ctx).
		Get(&stats)
	if err != nil {
		log.Warn("failed to read dashboard stats from cache", "error", err)
	}
	if found {
		log.Debug("Found dashboard stats in cache")
		return &stats, nil
	}

	patientCount, err := dc.patientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := dc.dashboardRepo.ClaimsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	monthTotal, err := dc.dashboardRepo.CurrentMonthTotal(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := dc.dashboardRepo.PendingPayments(ctx)
	if err != nil {
		return nil, err
	}

	stats = DashboardStats{
		TotalPatients:   int(patientCount),
		ClaimsByStatus:  byStatus,
		ThisMonthClaims: monthTotal,
		PendingPayments: pending,
	}

	if err := database.NewCacheBuilder(dc.db.Cache.Dashboard, statsCacheKey).
		WithStruct(&stats).
		WithTTL(dc.cacheTTL).
		WithContext(ctx).
		Set(); err != nil {
		log.Warn("failed to cache dashboard stats", "error", err)
	}

	return &stats, nil
}

func (dc *DashboardController) GetMonthlyStats(ctx context.Context, months int) ([]MonthlyStat, error) {
	return dc.dashboardRepo.MonthlyStats(ctx, months)
}

func (dc *DashboardController) GetReductionAnalysis(ctx context.Context) ([]ReductionStat, error) {
	return dc.dashboardRepo.ReductionStats(ctx)
}

func (dc *DashboardController) GetDepartmentStats(ctx context.Context) ([]DepartmentStat, error) {
	return dc.dashboardRepo.DepartmentStats(ctx)
}
