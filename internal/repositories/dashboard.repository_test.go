package repositories

import (
	"context"
	"testing"
	"time"

	"claimdesk/internal/database"
	. "claimdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) database.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(
		&Patient{}, &Claim{}, &ClaimItem{}, &ClaimSubmission{},
		&ReviewResult{}, &SupplementRequest{}, &AppealDetail{},
		&Payment{}, &ExternalIntegration{},
	))

	return database.DB{SQL: gormDB}
}

func seedDashboardData(t *testing.T, db database.DB) {
	t.Helper()

	patient := &Patient{PatientNumber: "P2024001", Name: "김철수"}
	require.NoError(t, db.SQL.Create(patient).Error)

	claims := []Claim{
		{ClaimNumber: "C1", PatientID: patient.ID, Department: "내과", Status: StatusDraft, TotalAmount: 30000, InsuranceAmount: 21000, CopayAmount: 9000},
		{ClaimNumber: "C2", PatientID: patient.ID, Department: "내과", Status: StatusClaimComplete, TotalAmount: 50000, InsuranceAmount: 35000, CopayAmount: 15000},
		{ClaimNumber: "C3", PatientID: patient.ID, Department: "정형외과", Status: StatusClaimComplete, TotalAmount: 120000, InsuranceAmount: 84000, CopayAmount: 36000},
	}
	for i := range claims {
		require.NoError(t, db.SQL.Create(&claims[i]).Error)
	}

	payments := []Payment{
		{ClaimID: claims[1].ID, PaymentDate: time.Now(), PaymentAmount: 35000, Status: PaymentPending},
		{ClaimID: claims[2].ID, PaymentDate: time.Now(), PaymentAmount: 84000, Status: PaymentPending},
		{ClaimID: claims[0].ID, PaymentDate: time.Now(), PaymentAmount: 10000, Status: PaymentCompleted},
	}
	for i := range payments {
		require.NoError(t, db.SQL.Create(&payments[i]).Error)
	}
}

func TestDashboardRepository_ClaimsByStatus(t *testing.T) {
	db := setupTestDB(t)
	seedDashboardData(t, db)
	repo := NewDashboard(db)

	counts, err := repo.ClaimsByStatus(context.Background())
	require.NoError(t, err)

	byStatus := map[ClaimStatus]int{}
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	assert.Equal(t, 1, byStatus[StatusDraft])
	assert.Equal(t, 2, byStatus[StatusClaimComplete])
}

func TestDashboardRepository_CurrentMonthTotal(t *testing.T) {
	db := setupTestDB(t)
	seedDashboardData(t, db)
	repo := NewDashboard(db)

	total, err := repo.CurrentMonthTotal(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 200000, total)
}

func TestDashboardRepository_CurrentMonthTotal_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDashboard(db)

	total, err := repo.CurrentMonthTotal(context.Background())
	require.NoError(t, err)

	assert.Zero(t, total)
}

func TestDashboardRepository_PendingPayments(t *testing.T) {
	db := setupTestDB(t)
	seedDashboardData(t, db)
	repo := NewDashboard(db)

	pending, err := repo.PendingPayments(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, pending.Count)
	assert.Equal(t, 119000, pending.Amount)
}

func TestDashboardRepository_DepartmentStats(t *testing.T) {
	db := setupTestDB(t)
	seedDashboardData(t, db)
	repo := NewDashboard(db)

	stats, err := repo.DepartmentStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats, 2)
	// Ordered by total amount descending.
	assert.Equal(t, "정형외과", stats[0].Department)
	assert.Equal(t, 120000, stats[0].TotalAmount)
	assert.Equal(t, "내과", stats[1].Department)
	assert.Equal(t, 2, stats[1].Count)
	assert.Equal(t, 80000, stats[1].TotalAmount)
}

func TestDashboardRepository_ReductionStats(t *testing.T) {
	db := setupTestDB(t)
	seedDashboardData(t, db)
	repo := NewDashboard(db)

	reason := ReasonPartialReduction
	results := []ReviewResult{
		{ClaimID: "c", ResultType: ReviewAppropriate, OriginalAmount: 100000, ApprovedAmount: 100000, ReviewDate: time.Now(), PaymentDate: time.Now()},
		{ClaimID: "c", ResultType: ReviewPartialReduction, OriginalAmount: 100000, ApprovedAmount: 90000, ReductionAmount: 10000, ReductionReason: &reason, ReviewDate: time.Now(), PaymentDate: time.Now()},
	}
	for i := range results {
		require.NoError(t, db.SQL.Create(&results[i]).Error)
	}

	stats, err := repo.ReductionStats(context.Background())
	require.NoError(t, err)

	byType := map[ReviewResultType]ReductionStat{}
	for _, s := range stats {
		byType[s.ResultType] = s
	}
	assert.InDelta(t, 10.0, byType[ReviewPartialReduction].AvgReductionRate, 0.01)
	assert.Equal(t, 10000, byType[ReviewPartialReduction].TotalReduction)
	assert.Zero(t, byType[ReviewAppropriate].TotalReduction)
}

func TestDashboardRepository_MonthlyStats(t *testing.T) {
	db := setupTestDB(t)
	seedDashboardData(t, db)
	repo := NewDashboard(db)

	stats, err := repo.MonthlyStats(context.Background(), 6)
	require.NoError(t, err)

	require.Len(t, stats, 1)
	assert.Equal(t, 3, stats[0].Count)
	assert.Equal(t, 200000, stats[0].TotalAmount)
	assert.Equal(t, stats[0].TotalAmount, stats[0].InsuranceAmount+stats[0].CopayAmount)
}
