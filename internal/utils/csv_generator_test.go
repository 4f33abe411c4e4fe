package utils

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	. "claimdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateClaimsCSV(t *testing.T) {
	submittedAt := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	claims := []*Claim{
		{
			ClaimNumber: "C202403150001",
			Patient: &Patient{
				PatientNumber: "P2024001",
				Name:          "김철수",
			},
			VisitDate:       "2024-03-15",
			Department:      "내과",
			DiagnosisCode:   "J00",
			Status:          StatusClaimComplete,
			TotalAmount:     48333,
			InsuranceAmount: 33833,
			CopayAmount:     14500,
			SubmittedAt:     &submittedAt,
		},
	}

	data, err := GenerateClaimsCSV(claims)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("\uFEFF")))

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\uFEFF")))
	records, err := reader.ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, claimCSVHeaders, records[0])
	assert.Equal(t, "C202403150001", records[1][0])
	assert.Equal(t, "김철수", records[1][2])
	assert.Equal(t, "48333", records[1][9])
	assert.Equal(t, "2024-03-15T09:00:00Z", records[1][12])
}

func TestGenerateClaimsCSV_NilPatient(t *testing.T) {
	claims := []*Claim{{ClaimNumber: "C202403150001", Status: StatusDraft}}

	data, err := GenerateClaimsCSV(claims)
	require.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\uFEFF")))
	records, err := reader.ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Empty(t, records[1][1])
	assert.Empty(t, records[1][12])
}

func TestGenerateClaimsCSV_Empty(t *testing.T) {
	data, err := GenerateClaimsCSV(nil)
	require.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\uFEFF")))
	records, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Len(t, records, 1)
}
