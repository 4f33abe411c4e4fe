package repositories

import (
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/services"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// DashboardRepository serves the reporting aggregations. All queries target
// sqlite date functions, matching the storage engine in use.
type DashboardRepository interface {
	ClaimsByStatus(ctx context.Context) ([]StatusCount, error)
	CurrentMonthTotal(ctx context.Context) (int, error)
	PendingPayments(ctx context.Context) (PendingPayments, error)
	MonthlyStats(ctx context.Context, months int) ([]MonthlyStat, error)
	ReductionStats(ctx context.Context) ([]ReductionStat, error)
	DepartmentStats(ctx context.Context) ([]DepartmentStat, error)
}

type dashboardRepository struct {
	db  database.DB
	log logger.Logger
}

func NewDashboard(db database.DB) DashboardRepository {
	return &dashboardRepository{
		db:  db,
		log: logger.New("dashboardRepository"),
	}
}

func (r *dashboardRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *dashboardRepository) ClaimsByStatus(ctx context.Context) ([]StatusCount, error) {
	log := r.log.Function("ClaimsByStatus")

	var counts []StatusCount
	err := r.getDB(ctx).
		Model(&Claim{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, log.Err("failed to count claims by status", err)
	}

	return counts, nil
}

func (r *dashboardRepository) CurrentMonthTotal(ctx context.Context) (int, error) {
	log := r.log.Function("CurrentMonthTotal")

	var total *int
	err := r.getDB(ctx).
		Model(&Claim{}).
		Select("SUM(total_amount)").
		Where("strftime('%Y-%m', created_at) = strftime('%Y-%m', 'now')").
		Scan(&total).Error
	if err != nil {
		return 0, log.Err("failed to sum current month claims", err)
	}

	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *dashboardRepository) PendingPayments(ctx context.Context) (PendingPayments, error) {
	log := r.log.Function("PendingPayments")

	var result struct {
		Count  int
		Amount *int
	}
	err := r.getDB(ctx).
		Model(&Payment{}).
		Select("COUNT(*) as count, SUM(payment_amount) as amount").
		Where("status = ?", PaymentPending).
		Scan(&result).Error
	if err != nil {
		return PendingPayments{}, log.Err("failed to aggregate pending payments", err)
	}

	pending := PendingPayments{Count: result.Count}
	if result.Amount != nil {
		pending.Amount = *result.Amount
	}
	return pending, nil
}

func (r *dashboardRepository) MonthlyStats(ctx context.Context, months int) ([]MonthlyStat, error) {
	log := r.log.Function("MonthlyStats")

	if months <= 0 {
		months = 6
	}

	var stats []MonthlyStat
	err := r.getDB(ctx).
		Model(&Claim{}).
		Select(`strftime('%Y-%m', created_at) as month,
			COUNT(*) as count,
			SUM(total_amount) as total_amount,
			SUM(insurance_amount) as insurance_amount,
			SUM(copay_amount) as copay_amount`).
		Where("created_at >= date('now', ?)", fmt.Sprintf("-%d months", months)).
		Group("month").
		Order("month").
		Scan(&stats).Error
	if err != nil {
		return nil, log.Err("failed to aggregate monthly stats", err, "months", months)
	}

	return stats, nil
}

func (r *dashboardRepository) ReductionStats(ctx context.Context) ([]ReductionStat, error) {
	log := r.log.Function("ReductionStats")

	var stats []ReductionStat
	err := r.getDB(ctx).
		Model(&ReviewResult{}).
		Select(`result_type,
			COUNT(*) as count,
			AVG(reduction_amount * 100.0 / NULLIF(original_amount, 0)) as avg_reduction_rate,
			SUM(original_amount) as total_original,
			SUM(approved_amount) as total_approved,
			SUM(reduction_amount) as total_reduction`).
		Group("result_type").
		Scan(&stats).Error
	if err != nil {
		return nil, log.Err("failed to aggregate reduction stats", err)
	}

	return stats, nil
}

func (r *dashboardRepository) DepartmentStats(ctx context.Context) ([]DepartmentStat, error) {
	log := r.log.Function("DepartmentStats")

	var stats []DepartmentStat
	err := r.getDB(ctx).
		Model(&Claim{}).
		Select(`department,
			COUNT(*) as count,
			SUM(total_amount) as total_amount,
			AVG(total_amount) as avg_amount`).
		Where("department IS NOT NULL AND department != ''").
		Group("department").
		Order("total_amount DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, log.Err("failed to aggregate department stats", err)
	}

	return stats, nil
}
