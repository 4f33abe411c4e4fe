package supplementController

import (
	"claimdesk/internal/events"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/repositories"
	"claimdesk/internal/services"
	"context"
	"time"

	json "github.com/goccy/go-json"
)

// SupplementController runs the post-review sub-lifecycle: correction
// requests and appeals against a reviewed claim.
type SupplementController struct {
	supplementRepo           repositories.SupplementRepository
	claimRepo                repositories.ClaimRepository
	transactionService       *services.TransactionService
	cacheInvalidationService *services.CacheInvalidationService
	eventBus                 *events.EventBus
	log                      logger.Logger
}

func New(
	supplementRepo repositories.SupplementRepository,
	claimRepo repositories.ClaimRepository,
	transactionService *services.TransactionService,
	cacheInvalidationService *services.CacheInvalidationService,
	eventBus *events.EventBus,
) *SupplementController {
	return &SupplementController{
		supplementRepo:           supplementRepo,
		claimRepo:                claimRepo,
		transactionService:       transactionService,
		cacheInvalidationService: cacheInvalidationService,
		eventBus:                 eventBus,
		log:                      logger.New("SupplementController"),
	}
}

// CreateRequest files a supplement request or appeal. Appeal details are
// created atomically with the parent, and the claim drops to
// supplement_needed in the same transaction.
func (sc *SupplementController) CreateRequest(ctx context.Context, request *CreateSupplementRequest) (*SupplementRequest, error) {
	log := sc.log.Function("CreateRequest")

	requestType := SupplementRequestType(request.RequestType)
	if requestType == "" {
		requestType = RequestSupplement
	}

	row := &SupplementRequest{
		ClaimID:        request.ClaimID,
		ReviewResultID: request.ReviewResultID,
		RequestType:    requestType,
		RequestReason:  request.RequestReason,
		Status:         SupplementRequested,
		RequestedAt:    time.Now(),
	}

	if len(request.RequestedItems) > 0 {
		payload, err := json.Marshal(request.RequestedItems)
		if err != nil {
			return nil, log.Err("failed to marshal requested items", err)
		}
		items := string(payload)
		row.RequestedItems = &items
	}

	for _, detail := range request.AppealDetails {
		d := AppealDetail{
			ItemCode:        detail.ItemCode,
			ItemName:        detail.ItemName,
			OriginalAmount:  detail.OriginalAmount,
			RequestedAmount: detail.RequestedAmount,
			AppealReason:    detail.AppealReason,
		}
		if len(detail.SupportingDocuments) > 0 {
			payload, err := json.Marshal(detail.SupportingDocuments)
			if err != nil {
				return nil, log.Err("failed to marshal supporting documents", err)
			}
			docs := string(payload)
			d.SupportingDocuments = &docs
		}
		row.Details = append(row.Details, d)
	}

	err := sc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		claim, err := sc.claimRepo.GetByID(txCtx, request.ClaimID)
		if err != nil {
			return err
		}

		if err := sc.supplementRepo.Create(txCtx, row); err != nil {
			return err
		}

		claim.Status = StatusSupplementNeeded
		return sc.claimRepo.Update(txCtx, claim)
	})
	if err != nil {
		return nil, log.Err("failed to create supplement request", err, "claimID", request.ClaimID)
	}

	sc.cacheInvalidationService.InvalidateClaim(ctx, request.ClaimID)
	sc.publishEvent("claim.supplement_requested", request.ClaimID, map[string]any{
		"status":      StatusSupplementNeeded,
		"requestType": requestType,
		"requestId":   row.ID,
	})

	return row, nil
}

// Process resolves a request. Completion returns the parent claim to
// under_review; rejection leaves the claim untouched.
func (sc *SupplementController) Process(ctx context.Context, id string, request *ProcessSupplementRequest) error {
	log := sc.log.Function("Process")

	var claimID string
	var completed bool
	err := sc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		row, err := sc.supplementRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		now := time.Now()
		row.Status = SupplementStatus(request.Status)
		row.ResponseText = request.ResponseText
		row.RespondedAt = &now

		if err := sc.supplementRepo.Update(txCtx, row); err != nil {
			return err
		}

		claimID = row.ClaimID
		if row.Status == SupplementCompleted {
			completed = true
			claim, err := sc.claimRepo.GetByID(txCtx, row.ClaimID)
			if err != nil {
				return err
			}
			claim.Status = StatusUnderReview
			return sc.claimRepo.Update(txCtx, claim)
		}

		return nil
	})
	if err != nil {
		return log.Err("failed to process supplement request", err, "id", id)
	}

	sc.cacheInvalidationService.InvalidateClaim(ctx, claimID)
	if completed {
		sc.publishEvent("claim.supplement_completed", claimID, map[string]any{
			"status":    StatusUnderReview,
			"requestId": id,
		})
	}

	return nil
}

func (sc *SupplementController) GetRequest(ctx context.Context, id string) (*SupplementRequest, error) {
	return sc.supplementRepo.GetByID(ctx, id)
}

func (sc *SupplementController) ListRequests(ctx context.Context, status SupplementStatus, claimID string) ([]*SupplementRequest, error) {
	return sc.supplementRepo.GetAll(ctx, repositories.SupplementFilter{
		Status:  status,
		ClaimID: claimID,
	})
}

// ListAppeals returns only the appeal-typed requests.
func (sc *SupplementController) ListAppeals(ctx context.Context, status SupplementStatus) ([]*SupplementRequest, error) {
	return sc.supplementRepo.GetAll(ctx, repositories.SupplementFilter{
		Status:      status,
		RequestType: RequestAppeal,
	})
}

func (sc *SupplementController) publishEvent(eventType, claimID string, data map[string]any) {
	if sc.eventBus == nil {
		return
	}
	if err := sc.eventBus.Publish(events.ClaimChannel, events.NewEvent(eventType, claimID, data)); err != nil {
		sc.log.Function("publishEvent").Warn("failed to publish supplement event",
			"type", eventType, "claimID", claimID, "error", err)
	}
}
