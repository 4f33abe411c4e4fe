package claimController

import (
	. "claimdesk/internal/models"
)

// Claims above this total pass precheck with a warning attached.
const highAmountThreshold = 1000000

// RunPrecheck is the pre-submission validation predicate. It is a pure
// function of the claim row: no storage or external calls, so the same
// claim always yields the same result.
func RunPrecheck(claim *Claim) PrecheckResult {
	errors := []string{}
	warnings := []string{}

	if claim.TotalAmount == 0 {
		errors = append(errors, "claim has no items")
	}

	if claim.DiagnosisCode == "" {
		errors = append(errors, "diagnosis code is missing")
	}

	if claim.TotalAmount > highAmountThreshold {
		warnings = append(warnings, "total amount exceeds 1,000,000")
	}

	return PrecheckResult{
		Passed:   len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

// ComputeTotals derives the claim-level amounts from the item list. The
// insurer share is floored per item and then summed, not floored on the
// sum, so the copay picks up each line's rounding remainder.
func ComputeTotals(items []ClaimItem) ClaimTotals {
	var totals ClaimTotals
	for _, item := range items {
		totals.TotalAmount += item.TotalPrice
		totals.InsuranceAmount += item.CoveredAmount()
	}
	totals.CopayAmount = totals.TotalAmount - totals.InsuranceAmount
	return totals
}
