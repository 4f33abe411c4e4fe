package repositories

import (
	"context"
	"testing"

	. "claimdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedClaim(t *testing.T, repo ClaimRepository, claimNumber string) *Claim {
	t.Helper()

	claim := &Claim{
		ClaimNumber:   claimNumber,
		PatientID:     "patient-1",
		DiagnosisCode: "J00",
		Status:        StatusDraft,
	}
	require.NoError(t, repo.Create(context.Background(), claim))
	return claim
}

func TestClaimRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClaim(db)
	ctx := context.Background()

	created := seedClaim(t, repo, "C202403150001")
	assert.NotEmpty(t, created.ID)

	loaded, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "C202403150001", loaded.ClaimNumber)
	assert.Equal(t, StatusDraft, loaded.Status)
}

func TestClaimRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClaim(db)

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestClaimRepository_DuplicateClaimNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClaim(db)
	ctx := context.Background()

	seedClaim(t, repo, "C202403150001")

	duplicate := &Claim{
		ClaimNumber: "C202403150001",
		PatientID:   "patient-2",
		Status:      StatusDraft,
	}
	err := repo.Create(ctx, duplicate)

	// TranslateError maps the sqlite unique violation.
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestClaimRepository_GetAll_FilterByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClaim(db)
	ctx := context.Background()

	seedClaim(t, repo, "C202403150001")
	second := seedClaim(t, repo, "C202403150002")
	second.Status = StatusClaimComplete
	require.NoError(t, repo.Update(ctx, second))

	drafts, err := repo.GetAll(ctx, StatusDraft, 100)
	require.NoError(t, err)
	assert.Len(t, drafts, 1)

	all, err := repo.GetAll(ctx, "", 100)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestClaimRepository_Delete_RemovesItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClaim(db)
	ctx := context.Background()

	claim := seedClaim(t, repo, "C202403150001")
	require.NoError(t, repo.CreateItem(ctx, &ClaimItem{
		ClaimID:           claim.ID,
		ItemName:          "진찰료",
		UnitPrice:         15000,
		InsuranceCoverage: 70,
	}))

	require.NoError(t, repo.Delete(ctx, claim.ID))

	_, err := repo.GetByID(ctx, claim.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	items, err := repo.GetItems(ctx, claim.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClaimRepository_GetWithItems_Preloads(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClaim(db)
	ctx := context.Background()

	patient := &Patient{PatientNumber: "P2024001", Name: "김철수"}
	require.NoError(t, db.SQL.Create(patient).Error)

	claim := &Claim{
		ClaimNumber: "C202403150001",
		PatientID:   patient.ID,
		Status:      StatusDraft,
	}
	require.NoError(t, repo.Create(ctx, claim))
	require.NoError(t, repo.CreateItem(ctx, &ClaimItem{
		ClaimID:           claim.ID,
		ItemName:          "진찰료",
		UnitPrice:         15000,
		InsuranceCoverage: 70,
	}))

	loaded, err := repo.GetWithItems(ctx, claim.ID)
	require.NoError(t, err)

	require.NotNil(t, loaded.Patient)
	assert.Equal(t, "P2024001", loaded.Patient.PatientNumber)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 15000, loaded.Items[0].TotalPrice)
}
