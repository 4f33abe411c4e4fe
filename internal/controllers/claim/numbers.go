package claimController

import (
	"fmt"
	"time"
)

// Generated numbers are date-prefixed with the last four digits of the
// epoch-millisecond clock. Uniqueness is not guaranteed by construction;
// the claim_number unique index catches same-suffix collisions and the
// caller retries with a fresh suffix.

func ClaimNumber(now time.Time) string {
	return fmt.Sprintf("C%s%s", now.Format("20060102"), millisSuffix(now))
}

func SubmissionNumber(claimNumber string, now time.Time) string {
	return fmt.Sprintf("S%s-%s", claimNumber, millisSuffix(now))
}

func ReceiptNumber(now time.Time) string {
	return fmt.Sprintf("R%s%s", now.Format("20060102"), millisSuffix(now))
}

func millisSuffix(now time.Time) string {
	return fmt.Sprintf("%04d", now.UnixMilli()%10000)
}
