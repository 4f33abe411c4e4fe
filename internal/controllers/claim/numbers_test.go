package claimController

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClaimNumber_Format(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	number := ClaimNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^C20240315\d{4}$`), number)
	assert.Len(t, number, 13)
}

func TestSubmissionNumber_Format(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	claimNumber := ClaimNumber(now)

	number := SubmissionNumber(claimNumber, now)

	assert.Regexp(t, regexp.MustCompile(`^SC20240315\d{4}-\d{4}$`), number)
}

func TestReceiptNumber_Format(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	number := ReceiptNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^R20240315\d{4}$`), number)
}

func TestMillisSuffix_Padded(t *testing.T) {
	// A timestamp whose millis modulo leaves a small number must still give
	// four digits.
	now := time.UnixMilli(1700000000003)

	assert.Len(t, millisSuffix(now), 4)
}
