package claimController

import (
	"testing"

	. "claimdesk/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRunPrecheck(t *testing.T) {
	tests := []struct {
		name         string
		claim        *Claim
		wantPassed   bool
		wantErrors   []string
		wantWarnings []string
	}{
		{
			name:       "claim without items fails",
			claim:      &Claim{DiagnosisCode: "J00", TotalAmount: 0},
			wantPassed: false,
			wantErrors: []string{"claim has no items"},
		},
		{
			name:       "missing diagnosis code fails",
			claim:      &Claim{TotalAmount: 50000},
			wantPassed: false,
			wantErrors: []string{"diagnosis code is missing"},
		},
		{
			name:       "both errors reported together",
			claim:      &Claim{},
			wantPassed: false,
			wantErrors: []string{"claim has no items", "diagnosis code is missing"},
		},
		{
			name:       "moderate amount passes without warnings",
			claim:      &Claim{DiagnosisCode: "J00", TotalAmount: 500000},
			wantPassed: true,
		},
		{
			name:         "high amount passes with warning",
			claim:        &Claim{DiagnosisCode: "J00", TotalAmount: 1500000},
			wantPassed:   true,
			wantWarnings: []string{"total amount exceeds 1,000,000"},
		},
		{
			name:       "exact threshold has no warning",
			claim:      &Claim{DiagnosisCode: "J00", TotalAmount: 1000000},
			wantPassed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RunPrecheck(tt.claim)

			assert.Equal(t, tt.wantPassed, result.Passed)
			assert.ElementsMatch(t, tt.wantErrors, result.Errors)
			assert.ElementsMatch(t, tt.wantWarnings, result.Warnings)
		})
	}
}

func TestComputeTotals(t *testing.T) {
	items := []ClaimItem{
		{TotalPrice: 15000, InsuranceCoverage: 70},
		{TotalPrice: 33333, InsuranceCoverage: 70},
	}

	totals := ComputeTotals(items)

	// Per-item floor: 10500 + 23333, not floor(48333 * 0.7).
	assert.Equal(t, 48333, totals.TotalAmount)
	assert.Equal(t, 33833, totals.InsuranceAmount)
	assert.Equal(t, 14500, totals.CopayAmount)
	assert.Equal(t, totals.TotalAmount, totals.InsuranceAmount+totals.CopayAmount)
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.Equal(t, 0, totals.TotalAmount)
	assert.Equal(t, 0, totals.InsuranceAmount)
	assert.Equal(t, 0, totals.CopayAmount)
}
