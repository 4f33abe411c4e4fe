package claimController

import (
	"claimdesk/internal/events"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/repositories"
	"claimdesk/internal/services"
	"claimdesk/internal/utils"
	"context"
	"errors"
	"time"

	json "github.com/goccy/go-json"
	"gorm.io/gorm"
)

// ClaimController owns the claim lifecycle: authoring, item management with
// monetary recalculation, precheck, and the submission transitions. Every
// multi-write transition runs inside one transaction so a claim is never
// left with a submission row but a stale status.
type ClaimController struct {
	claimRepo                repositories.ClaimRepository
	patientRepo              repositories.PatientRepository
	submissionRepo           repositories.SubmissionRepository
	transactionService       *services.TransactionService
	cacheInvalidationService *services.CacheInvalidationService
	eventBus                 *events.EventBus
	log                      logger.Logger
}

func New(
	claimRepo repositories.ClaimRepository,
	patientRepo repositories.PatientRepository,
	submissionRepo repositories.SubmissionRepository,
	transactionService *services.TransactionService,
	cacheInvalidationService *services.CacheInvalidationService,
	eventBus *events.EventBus,
) *ClaimController {
	return &ClaimController{
		claimRepo:                claimRepo,
		patientRepo:              patientRepo,
		submissionRepo:           submissionRepo,
		transactionService:       transactionService,
		cacheInvalidationService: cacheInvalidationService,
		eventBus:                 eventBus,
		log:                      logger.New("ClaimController"),
	}
}

func (cc *ClaimController) CreateClaim(ctx context.Context, request *CreateClaimRequest) (*Claim, error) {
	log := cc.log.Function("CreateClaim")

	if _, err := cc.patientRepo.GetByID(ctx, request.PatientID); err != nil {
		return nil, log.Err("patient not found", err, "patientID", request.PatientID)
	}

	if err := utils.ValidateVisitDate(request.VisitDate); err != nil {
		return nil, log.Err("invalid visit date", err, "visitDate", request.VisitDate)
	}

	claim := &Claim{
		ClaimNumber:   ClaimNumber(time.Now()),
		PatientID:     request.PatientID,
		VisitDate:     request.VisitDate,
		Department:    request.Department,
		DiagnosisCode: request.DiagnosisCode,
		DiagnosisName: request.DiagnosisName,
		DoctorName:    request.DoctorName,
		Status:        StatusDraft,
		Notes:         request.Notes,
	}

	err := cc.claimRepo.Create(ctx, claim)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Same-millisecond suffix collision on the unique claim number.
		log.Warn("claim number collision, regenerating", "claimNumber", claim.ClaimNumber)
		claim.ClaimNumber = ClaimNumber(time.Now().Add(time.Millisecond))
		err = cc.claimRepo.Create(ctx, claim)
	}
	if err != nil {
		return nil, log.Err("failed to create claim", err, "patientID", request.PatientID)
	}

	cc.cacheInvalidationService.InvalidateDashboard(ctx)

	return claim, nil
}

func (cc *ClaimController) GetClaim(ctx context.Context, id string) (*Claim, error) {
	log := cc.log.Function("GetClaim")

	claim, err := cc.claimRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, log.Err("failed to get claim", err, "id", id)
	}

	return claim, nil
}

func (cc *ClaimController) ListClaims(ctx context.Context, status ClaimStatus) ([]*Claim, error) {
	return cc.claimRepo.GetAll(ctx, status, 100)
}

func (cc *ClaimController) UpdateClaim(ctx context.Context, id string, request *UpdateClaimRequest) (*Claim, error) {
	log := cc.log.Function("UpdateClaim")

	if err := utils.ValidateVisitDate(request.VisitDate); err != nil {
		return nil, log.Err("invalid visit date", err, "visitDate", request.VisitDate)
	}

	var updated *Claim
	err := cc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		claim, err := cc.claimRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		claim.VisitDate = request.VisitDate
		claim.Department = request.Department
		claim.DiagnosisCode = request.DiagnosisCode
		claim.DiagnosisName = request.DiagnosisName
		claim.DoctorName = request.DoctorName
		claim.Notes = request.Notes

		if err := cc.claimRepo.Update(txCtx, claim); err != nil {
			return err
		}

		updated = claim
		return nil
	})
	if err != nil {
		return nil, log.Err("failed to update claim", err, "id", id)
	}

	cc.cacheInvalidationService.InvalidateClaim(ctx, id)

	return updated, nil
}

func (cc *ClaimController) DeleteClaim(ctx context.Context, id string) error {
	log := cc.log.Function("DeleteClaim")

	err := cc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		if _, err := cc.claimRepo.GetByID(txCtx, id); err != nil {
			return err
		}
		return cc.claimRepo.Delete(txCtx, id)
	})
	if err != nil {
		return log.Err("failed to delete claim", err, "id", id)
	}

	cc.cacheInvalidationService.InvalidateClaim(ctx, id)

	return nil
}

// AddItem appends a billable line and recalculates the claim totals against
// the same item snapshot, in one transaction.
func (cc *ClaimController) AddItem(ctx context.Context, claimID string, request *AddClaimItemRequest) (*ClaimItem, error) {
	log := cc.log.Function("AddItem")

	coverage := 70
	if request.InsuranceCoverage != nil {
		coverage = *request.InsuranceCoverage
	}

	quantity := request.Quantity
	if quantity == 0 {
		quantity = 1
	}

	item := &ClaimItem{
		ClaimID:           claimID,
		ItemCode:          request.ItemCode,
		ItemName:          request.ItemName,
		ItemType:          ItemType(request.ItemType),
		UnitPrice:         request.UnitPrice,
		Quantity:          quantity,
		InsuranceCoverage: coverage,
		Notes:             request.Notes,
	}

	err := cc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		if _, err := cc.claimRepo.GetByID(txCtx, claimID); err != nil {
			return err
		}

		if err := cc.claimRepo.CreateItem(txCtx, item); err != nil {
			return err
		}

		_, err := cc.recalculate(txCtx, claimID)
		return err
	})
	if err != nil {
		return nil, log.Err("failed to add claim item", err, "claimID", claimID)
	}

	cc.cacheInvalidationService.InvalidateClaim(ctx, claimID)

	return item, nil
}

func (cc *ClaimController) RemoveItem(ctx context.Context, claimID, itemID string) error {
	log := cc.log.Function("RemoveItem")

	err := cc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		item, err := cc.claimRepo.GetItem(txCtx, itemID)
		if err != nil {
			return err
		}

		if item.ClaimID != claimID {
			return log.Err("item does not belong to claim", gorm.ErrRecordNotFound,
				"itemID", itemID, "claimID", claimID)
		}

		if err := cc.claimRepo.DeleteItem(txCtx, itemID); err != nil {
			return err
		}

		_, err = cc.recalculate(txCtx, claimID)
		return err
	})
	if err != nil {
		return log.Err("failed to remove claim item", err, "claimID", claimID, "itemID", itemID)
	}

	cc.cacheInvalidationService.InvalidateClaim(ctx, claimID)

	return nil
}

// RecalculateTotals re-derives the claim's monetary fields from its items.
func (cc *ClaimController) RecalculateTotals(ctx context.Context, claimID string) (ClaimTotals, error) {
	log := cc.log.Function("RecalculateTotals")

	var totals ClaimTotals
	err := cc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		t, err := cc.recalculate(txCtx, claimID)
		totals = t
		return err
	})
	if err != nil {
		return ClaimTotals{}, log.Err("failed to recalculate totals", err, "claimID", claimID)
	}

	cc.cacheInvalidationService.InvalidateClaim(ctx, claimID)

	return totals, nil
}

// recalculate must run inside a transaction so the persisted totals match
// the item snapshot they were derived from.
func (cc *ClaimController) recalculate(txCtx context.Context, claimID string) (ClaimTotals, error) {
	claim, err := cc.claimRepo.GetByID(txCtx, claimID)
	if err != nil {
		return ClaimTotals{}, err
	}

	items, err := cc.claimRepo.GetItems(txCtx, claimID)
	if err != nil {
		return ClaimTotals{}, err
	}

	totals := ComputeTotals(items)
	claim.TotalAmount = totals.TotalAmount
	claim.InsuranceAmount = totals.InsuranceAmount
	claim.CopayAmount = totals.CopayAmount

	if err := cc.claimRepo.Update(txCtx, claim); err != nil {
		return ClaimTotals{}, err
	}

	return totals, nil
}

// Precheck validates the claim and advances it to precheck_complete when no
// errors are found. Warnings never block.
func (cc *ClaimController) Precheck(ctx context.Context, claimID string) (PrecheckResult, error) {
	log := cc.log.Function("Precheck")

	var result PrecheckResult
	err := cc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		claim, err := cc.claimRepo.GetByID(txCtx, claimID)
		if err != nil {
			return err
		}

		if !claim.Status.CanPrecheck() {
			return log.Err("precheck not allowed for status", ErrInvalidTransition,
				"claimID", claimID, "status", claim.Status)
		}

		result = RunPrecheck(claim)

		if result.Passed && claim.Status != StatusPrecheckComplete {
			claim.Status = StatusPrecheckComplete
			if err := cc.claimRepo.Update(txCtx, claim); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return PrecheckResult{}, err
	}

	if result.Passed {
		cc.cacheInvalidationService.InvalidateClaim(ctx, claimID)
		cc.publishEvent("claim.precheck", claimID, map[string]any{"status": StatusPrecheckComplete})
	}

	return result, nil
}

// Submit transmits the claim to the payer simulation: it appends the
// immutable submission row and advances the status in the same transaction.
// submitted_at records the first successful submission only.
func (cc *ClaimController) Submit(ctx context.Context, claimID string) (*SubmitResult, error) {
	log := cc.log.Function("Submit")

	var result *SubmitResult
	err := cc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		claim, err := cc.claimRepo.GetByID(txCtx, claimID)
		if err != nil {
			return err
		}

		if !claim.Status.CanSubmit() {
			return log.Err("claim cannot be submitted from its current status", ErrInvalidTransition,
				"claimID", claimID, "status", claim.Status)
		}

		now := time.Now()
		submissionNumber := SubmissionNumber(claim.ClaimNumber, now)

		response, err := json.Marshal(SubmissionResponse{
			Message:       "claim accepted",
			ReceiptNumber: ReceiptNumber(now),
		})
		if err != nil {
			return log.Err("failed to marshal submission response", err)
		}

		submission := &ClaimSubmission{
			ClaimID:          claim.ID,
			SubmissionNumber: submissionNumber,
			SubmissionType:   SubmissionNew,
			SubmissionDate:   now,
			Status:           SubmissionAccepted,
			ResponseData:     string(response),
		}
		if err := cc.submissionRepo.Create(txCtx, submission); err != nil {
			return err
		}

		claim.Status = StatusClaimComplete
		if claim.SubmittedAt == nil {
			claim.SubmittedAt = &now
		}
		if err := cc.claimRepo.Update(txCtx, claim); err != nil {
			return err
		}

		result = &SubmitResult{
			SubmissionNumber: submissionNumber,
			Message:          "claim submitted successfully",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cc.cacheInvalidationService.InvalidateClaim(ctx, claimID)
	cc.publishEvent("claim.submitted", claimID, map[string]any{
		"status":           StatusClaimComplete,
		"submissionNumber": result.SubmissionNumber,
	})

	return result, nil
}

// Supplement files a corrective resubmission after the payer requested
// changes.
func (cc *ClaimController) Supplement(ctx context.Context, claimID, reason string) (*SubmitResult, error) {
	return cc.resubmit(ctx, claimID, SubmissionSupplement, StatusSupplementClaim, SubmissionResponse{
		Message:          "supplement claim accepted",
		SupplementReason: reason,
	})
}

// Additional files an additional claim for charges missed in the original.
func (cc *ClaimController) Additional(ctx context.Context, claimID string, additionalAmount int) (*SubmitResult, error) {
	return cc.resubmit(ctx, claimID, SubmissionAdditional, StatusAdditionalClaim, SubmissionResponse{
		Message:          "additional claim accepted",
		AdditionalAmount: additionalAmount,
	})
}

// Cancel withdraws the claim. The resulting status is terminal.
func (cc *ClaimController) Cancel(ctx context.Context, claimID, reason string) (*SubmitResult, error) {
	if reason == "" {
		reason = "cancelled by user"
	}
	return cc.resubmit(ctx, claimID, SubmissionCancel, StatusClaimCancelled, SubmissionResponse{
		Message:      "claim cancelled",
		CancelReason: reason,
	})
}

func (cc *ClaimController) resubmit(
	ctx context.Context,
	claimID string,
	submissionType SubmissionType,
	nextStatus ClaimStatus,
	response SubmissionResponse,
) (*SubmitResult, error) {
	log := cc.log.Function("resubmit")

	var result *SubmitResult
	err := cc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		claim, err := cc.claimRepo.GetByID(txCtx, claimID)
		if err != nil {
			return err
		}

		if claim.Status.IsTerminal() {
			return log.Err("claim is cancelled", ErrInvalidTransition,
				"claimID", claimID, "submissionType", submissionType)
		}

		now := time.Now()
		submissionNumber := SubmissionNumber(claim.ClaimNumber, now)

		payload, err := json.Marshal(response)
		if err != nil {
			return log.Err("failed to marshal submission response", err)
		}

		status := SubmissionAccepted
		if submissionType == SubmissionCancel {
			status = SubmissionCancelled
		}

		submission := &ClaimSubmission{
			ClaimID:          claim.ID,
			SubmissionNumber: submissionNumber,
			SubmissionType:   submissionType,
			SubmissionDate:   now,
			Status:           status,
			ResponseData:     string(payload),
		}
		if err := cc.submissionRepo.Create(txCtx, submission); err != nil {
			return err
		}

		claim.Status = nextStatus
		if err := cc.claimRepo.Update(txCtx, claim); err != nil {
			return err
		}

		result = &SubmitResult{
			SubmissionNumber: submissionNumber,
			Message:          response.Message,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cc.cacheInvalidationService.InvalidateClaim(ctx, claimID)
	cc.publishEvent("claim."+string(submissionType), claimID, map[string]any{
		"status":           nextStatus,
		"submissionNumber": result.SubmissionNumber,
	})

	return result, nil
}

func (cc *ClaimController) GetSubmissions(ctx context.Context, claimID string) ([]*ClaimSubmission, error) {
	log := cc.log.Function("GetSubmissions")

	if _, err := cc.claimRepo.GetByID(ctx, claimID); err != nil {
		return nil, log.Err("claim not found", err, "claimID", claimID)
	}

	return cc.submissionRepo.GetByClaimID(ctx, claimID)
}

func (cc *ClaimController) publishEvent(eventType, claimID string, data map[string]any) {
	if cc.eventBus == nil {
		return
	}
	if err := cc.eventBus.Publish(events.ClaimChannel, events.NewEvent(eventType, claimID, data)); err != nil {
		cc.log.Function("publishEvent").Warn("failed to publish claim event",
			"type", eventType, "claimID", claimID, "error", err)
	}
}
