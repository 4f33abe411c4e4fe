package reviewController

import (
	"claimdesk/internal/events"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/repositories"
	"claimdesk/internal/services"
	"context"
	"time"
)

// Insurer share of the approved amount paid out to the provider.
const insurerShareRate = 0.7

// Disbursement is scheduled one week after the review decision.
const paymentLeadTime = 7 * 24 * time.Hour

// Outcome pool: appropriate is weighted 3 of 6, the rest 1 of 6 each.
var outcomePool = [...]ReviewResultType{
	ReviewAppropriate,
	ReviewAppropriate,
	ReviewAppropriate,
	ReviewPartialReduction,
	ReviewFullReduction,
	ReviewPending,
}

// ReviewController produces the simulated payer adjudication. The random
// source is injected so tests can pin the sampled outcome.
type ReviewController struct {
	claimRepo                repositories.ClaimRepository
	reviewRepo               repositories.ReviewResultRepository
	paymentRepo              repositories.PaymentRepository
	transactionService       *services.TransactionService
	cacheInvalidationService *services.CacheInvalidationService
	eventBus                 *events.EventBus
	rand                     services.Rand
	log                      logger.Logger
}

func New(
	claimRepo repositories.ClaimRepository,
	reviewRepo repositories.ReviewResultRepository,
	paymentRepo repositories.PaymentRepository,
	transactionService *services.TransactionService,
	cacheInvalidationService *services.CacheInvalidationService,
	eventBus *events.EventBus,
	rand services.Rand,
) *ReviewController {
	return &ReviewController{
		claimRepo:                claimRepo,
		reviewRepo:               reviewRepo,
		paymentRepo:              paymentRepo,
		transactionService:       transactionService,
		cacheInvalidationService: cacheInvalidationService,
		eventBus:                 eventBus,
		rand:                     rand,
		log:                      logger.New("ReviewController"),
	}
}

// sampleOutcome derives the monetary consequence of one simulated decision
// from the claim total. Partial reductions take a uniform 5-25% cut.
func sampleOutcome(original int, rng services.Rand) *ReviewResult {
	resultType := outcomePool[rng.Intn(len(outcomePool))]

	approved := original
	reduction := 0
	var reason *string

	switch resultType {
	case ReviewPartialReduction:
		fraction := 0.05 + rng.Float64()*0.20
		reduction = int(float64(original) * fraction)
		approved = original - reduction
		r := ReasonPartialReduction
		reason = &r
	case ReviewFullReduction:
		approved = 0
		reduction = original
		r := ReasonFullReduction
		reason = &r
	}

	return &ReviewResult{
		ResultType:      resultType,
		OriginalAmount:  original,
		ApprovedAmount:  approved,
		ReductionAmount: reduction,
		ReductionReason: reason,
		PaymentAmount:   int(float64(approved) * insurerShareRate),
	}
}

// Generate adjudicates the claim: persists a ReviewResult against the
// current total, schedules the insurer payment when anything was approved,
// and advances the claim to review_complete, all in one transaction.
func (rc *ReviewController) Generate(ctx context.Context, claimID string) (*ReviewResultSummary, error) {
	log := rc.log.Function("Generate")

	var summary *ReviewResultSummary
	err := rc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		claim, err := rc.claimRepo.GetByID(txCtx, claimID)
		if err != nil {
			return err
		}

		if !claim.Status.CanGenerateReview() {
			return log.Err("review not allowed for status", ErrInvalidTransition,
				"claimID", claimID, "status", claim.Status)
		}

		now := time.Now()
		result := sampleOutcome(claim.TotalAmount, rc.rand)
		result.ClaimID = claim.ID
		result.ReviewDate = now
		result.PaymentDate = now.Add(paymentLeadTime)

		if err := rc.reviewRepo.Create(txCtx, result); err != nil {
			return err
		}

		// A held (pending) decision schedules no payment yet.
		if result.ResultType != ReviewPending && result.ApprovedAmount > 0 {
			payment := &Payment{
				ClaimID:       claim.ID,
				PaymentDate:   result.PaymentDate,
				PaymentAmount: result.PaymentAmount,
				PaymentType:   "insurance",
				Status:        PaymentPending,
			}
			if err := rc.paymentRepo.Create(txCtx, payment); err != nil {
				return err
			}
		}

		claim.Status = StatusReviewComplete
		if err := rc.claimRepo.Update(txCtx, claim); err != nil {
			return err
		}

		summary = &ReviewResultSummary{
			ResultType:      result.ResultType,
			OriginalAmount:  result.OriginalAmount,
			ApprovedAmount:  result.ApprovedAmount,
			ReductionAmount: result.ReductionAmount,
			PaymentAmount:   result.PaymentAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rc.cacheInvalidationService.InvalidateClaim(ctx, claimID)
	rc.publishEvent(claimID, summary)

	return summary, nil
}

// GetLatest returns the most recent review result for the claim.
func (rc *ReviewController) GetLatest(ctx context.Context, claimID string) (*ReviewResult, error) {
	return rc.reviewRepo.GetLatestByClaimID(ctx, claimID)
}

func (rc *ReviewController) publishEvent(claimID string, summary *ReviewResultSummary) {
	if rc.eventBus == nil {
		return
	}
	event := events.NewEvent("claim.reviewed", claimID, map[string]any{
		"status":         StatusReviewComplete,
		"resultType":     summary.ResultType,
		"approvedAmount": summary.ApprovedAmount,
	})
	if err := rc.eventBus.Publish(events.ClaimChannel, event); err != nil {
		rc.log.Function("publishEvent").Warn("failed to publish review event",
			"claimID", claimID, "error", err)
	}
}
