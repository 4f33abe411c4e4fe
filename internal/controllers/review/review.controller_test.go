package reviewController

import (
	"context"
	"testing"
	"time"

	"claimdesk/internal/database"
	. "claimdesk/internal/models"
	"claimdesk/internal/repositories"
	"claimdesk/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubRand pins the outcome draw and the partial-reduction fraction.
type stubRand struct {
	intn    int
	float64 float64
}

func (s stubRand) Intn(n int) int   { return s.intn % n }
func (s stubRand) Float64() float64 { return s.float64 }

func newTestController(t *testing.T, rng services.Rand) (*ReviewController, database.DB) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(
		&Patient{}, &Claim{}, &ClaimItem{}, &ClaimSubmission{},
		&ReviewResult{}, &Payment{},
	))

	db := database.DB{SQL: gormDB}

	controller := New(
		repositories.NewClaim(db),
		repositories.NewReviewResult(db),
		repositories.NewPayment(db),
		services.NewTransactionService(db),
		services.NewCacheInvalidationService(db),
		nil,
		rng,
	)

	return controller, db
}

func createReviewableClaim(t *testing.T, db database.DB, total int) *Claim {
	t.Helper()

	patient := &Patient{PatientNumber: "P2024001", Name: "김철수"}
	require.NoError(t, db.SQL.Create(patient).Error)

	now := time.Now()
	claim := &Claim{
		ClaimNumber:     "C202403150001",
		PatientID:       patient.ID,
		DiagnosisCode:   "J00",
		Status:          StatusClaimComplete,
		TotalAmount:     total,
		InsuranceAmount: total * 7 / 10,
		CopayAmount:     total - total*7/10,
		SubmittedAt:     &now,
	}
	require.NoError(t, db.SQL.Create(claim).Error)
	return claim
}

func TestGenerate_Appropriate(t *testing.T) {
	// Index 0 draws an appropriate outcome.
	controller, db := newTestController(t, stubRand{intn: 0})
	claim := createReviewableClaim(t, db, 100000)
	ctx := context.Background()

	summary, err := controller.Generate(ctx, claim.ID)
	require.NoError(t, err)

	assert.Equal(t, ReviewAppropriate, summary.ResultType)
	assert.Equal(t, 100000, summary.OriginalAmount)
	assert.Equal(t, 100000, summary.ApprovedAmount)
	assert.Zero(t, summary.ReductionAmount)
	assert.Equal(t, 70000, summary.PaymentAmount)

	var updated Claim
	require.NoError(t, db.SQL.First(&updated, "id = ?", claim.ID).Error)
	assert.Equal(t, StatusReviewComplete, updated.Status)

	// An approved decision schedules a pending insurer payment.
	var payments []Payment
	require.NoError(t, db.SQL.Find(&payments, "claim_id = ?", claim.ID).Error)
	require.Len(t, payments, 1)
	assert.Equal(t, PaymentPending, payments[0].Status)
	assert.Equal(t, 70000, payments[0].PaymentAmount)
}

func TestGenerate_PartialReduction(t *testing.T) {
	// Index 3 draws partial_reduction; Float64 0.25 gives a 10% cut.
	controller, db := newTestController(t, stubRand{intn: 3, float64: 0.25})
	claim := createReviewableClaim(t, db, 100000)
	ctx := context.Background()

	summary, err := controller.Generate(ctx, claim.ID)
	require.NoError(t, err)

	assert.Equal(t, ReviewPartialReduction, summary.ResultType)
	assert.Equal(t, 10000, summary.ReductionAmount)
	assert.Equal(t, 90000, summary.ApprovedAmount)
	assert.Equal(t, 63000, summary.PaymentAmount)

	result, err := controller.GetLatest(ctx, claim.ID)
	require.NoError(t, err)
	require.NotNil(t, result.ReductionReason)
	assert.Equal(t, ReasonPartialReduction, *result.ReductionReason)
	assert.Equal(t, result.ReviewDate.Add(7*24*time.Hour).Unix(), result.PaymentDate.Unix())
}

func TestGenerate_FullReduction(t *testing.T) {
	controller, db := newTestController(t, stubRand{intn: 4})
	claim := createReviewableClaim(t, db, 100000)
	ctx := context.Background()

	summary, err := controller.Generate(ctx, claim.ID)
	require.NoError(t, err)

	assert.Equal(t, ReviewFullReduction, summary.ResultType)
	assert.Zero(t, summary.ApprovedAmount)
	assert.Equal(t, 100000, summary.ReductionAmount)
	assert.Zero(t, summary.PaymentAmount)

	result, err := controller.GetLatest(ctx, claim.ID)
	require.NoError(t, err)
	require.NotNil(t, result.ReductionReason)
	assert.Equal(t, ReasonFullReduction, *result.ReductionReason)

	// Nothing approved, nothing scheduled.
	var count int64
	require.NoError(t, db.SQL.Model(&Payment{}).Where("claim_id = ?", claim.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGenerate_Pending(t *testing.T) {
	controller, db := newTestController(t, stubRand{intn: 5})
	claim := createReviewableClaim(t, db, 100000)

	summary, err := controller.Generate(context.Background(), claim.ID)
	require.NoError(t, err)

	assert.Equal(t, ReviewPending, summary.ResultType)
	assert.Equal(t, 100000, summary.ApprovedAmount)

	// A held decision defers payment scheduling.
	var count int64
	require.NoError(t, db.SQL.Model(&Payment{}).Where("claim_id = ?", claim.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGenerate_InvalidStatus(t *testing.T) {
	controller, db := newTestController(t, stubRand{})
	claim := createReviewableClaim(t, db, 100000)
	require.NoError(t, db.SQL.Model(claim).Update("status", StatusDraft).Error)

	_, err := controller.Generate(context.Background(), claim.ID)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestGenerate_HistoryRetained(t *testing.T) {
	controller, db := newTestController(t, stubRand{intn: 0})
	claim := createReviewableClaim(t, db, 100000)
	ctx := context.Background()

	_, err := controller.Generate(ctx, claim.ID)
	require.NoError(t, err)

	// Claims sent back through the supplement flow get re-reviewed; rows
	// accumulate and the query returns the newest one.
	require.NoError(t, db.SQL.Model(claim).Update("status", StatusUnderReview).Error)
	_, err = controller.Generate(ctx, claim.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.SQL.Model(&ReviewResult{}).Where("claim_id = ?", claim.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
