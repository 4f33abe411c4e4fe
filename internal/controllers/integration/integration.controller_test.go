package integrationController

import (
	"context"
	"testing"

	"claimdesk/internal/database"
	. "claimdesk/internal/models"
	"claimdesk/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubRand struct {
	intn    int
	float64 float64
}

func (s stubRand) Intn(n int) int   { return s.intn % n }
func (s stubRand) Float64() float64 { return s.float64 }

func newTestController(t *testing.T, rng stubRand) (*IntegrationController, database.DB, *Patient) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(&Patient{}, &ExternalIntegration{}))

	db := database.DB{SQL: gormDB}

	patient := &Patient{PatientNumber: "P2024001", Name: "김철수"}
	require.NoError(t, gormDB.Create(patient).Error)

	controller := New(
		repositories.NewIntegration(db),
		repositories.NewPatient(db),
		rng,
	)

	return controller, db, patient
}

func TestCheckEligibility(t *testing.T) {
	controller, db, patient := newTestController(t, stubRand{})
	ctx := context.Background()

	response, err := controller.CheckEligibility(ctx, &EligibilityRequest{PatientID: patient.ID})
	require.NoError(t, err)

	assert.True(t, response.Valid)
	assert.Equal(t, "active", response.Status)

	var count int64
	require.NoError(t, db.SQL.Model(&ExternalIntegration{}).
		Where("integration_type = ?", IntegrationEligibility).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCheckEligibility_UnknownPatient(t *testing.T) {
	controller, _, _ := newTestController(t, stubRand{})

	_, err := controller.CheckEligibility(context.Background(), &EligibilityRequest{PatientID: "missing"})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRequestSpecialApproval(t *testing.T) {
	// Float64 0.5 > 0.3 approves.
	controller, _, patient := newTestController(t, stubRand{float64: 0.5})

	response, err := controller.RequestSpecialApproval(context.Background(), &SpecialApprovalRequest{
		PatientID:     patient.ID,
		DiagnosisCode: "C50",
	})
	require.NoError(t, err)

	assert.True(t, response.Approved)
	assert.Equal(t, 90, response.CoverageRate)
	assert.Regexp(t, `^SA\d{8}$`, response.ApprovalNumber)
	assert.NotEmpty(t, response.ValidUntil)
}

func TestRequestSpecialApproval_Denied(t *testing.T) {
	controller, _, patient := newTestController(t, stubRand{float64: 0.1})

	response, err := controller.RequestSpecialApproval(context.Background(), &SpecialApprovalRequest{
		PatientID: patient.ID,
	})
	require.NoError(t, err)

	assert.False(t, response.Approved)
}

func TestRoutePrivateInsurance(t *testing.T) {
	controller, _, patient := newTestController(t, stubRand{intn: 2})

	response, err := controller.RoutePrivateInsurance(context.Background(), &PrivateInsuranceRequest{
		PatientID: patient.ID,
		Amount:    100000,
	})
	require.NoError(t, err)

	assert.Equal(t, "KB손해보험", response.InsuranceCompany)
	assert.Regexp(t, `^INS-\d{8}$`, response.ClaimNumber)
	assert.Equal(t, 80000, response.ExpectedPayment)
	assert.Equal(t, "accepted", response.Status)
}

func TestGetHistory_Filtered(t *testing.T) {
	controller, _, patient := newTestController(t, stubRand{float64: 0.5})
	ctx := context.Background()

	_, err := controller.CheckEligibility(ctx, &EligibilityRequest{PatientID: patient.ID})
	require.NoError(t, err)
	_, err = controller.RequestSpecialApproval(ctx, &SpecialApprovalRequest{PatientID: patient.ID})
	require.NoError(t, err)

	history, err := controller.GetHistory(ctx, IntegrationEligibility, patient.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, IntegrationEligibility, history[0].IntegrationType)

	all, err := controller.GetHistory(ctx, "", patient.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
