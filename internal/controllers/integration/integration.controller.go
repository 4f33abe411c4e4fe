package integrationController

import (
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/repositories"
	"claimdesk/internal/services"
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

var privateInsurers = []string{
	"삼성화재",
	"현대해상",
	"KB손해보험",
	"메리츠화재",
}

// IntegrationController simulates the external payer-side systems
// (eligibility check, special-approval, private-insurance routing) and
// appends a history row for every call. Responses are randomly generated,
// never computed from clinical rules.
type IntegrationController struct {
	integrationRepo repositories.IntegrationRepository
	patientRepo     repositories.PatientRepository
	rand            services.Rand
	log             logger.Logger
}

func New(
	integrationRepo repositories.IntegrationRepository,
	patientRepo repositories.PatientRepository,
	rand services.Rand,
) *IntegrationController {
	return &IntegrationController{
		integrationRepo: integrationRepo,
		patientRepo:     patientRepo,
		rand:            rand,
		log:             logger.New("IntegrationController"),
	}
}

func (ic *IntegrationController) CheckEligibility(ctx context.Context, request *EligibilityRequest) (*EligibilityResponse, error) {
	log := ic.log.Function("CheckEligibility")

	if _, err := ic.patientRepo.GetByID(ctx, request.PatientID); err != nil {
		return nil, log.Err("patient not found", err, "patientID", request.PatientID)
	}

	response := &EligibilityResponse{
		Valid:            true,
		InsuranceType:    string(InsuranceNationalHealth),
		Status:           "active",
		CoverageStart:    "2020-01-01",
		SpecialExemption: false,
	}

	if err := ic.record(ctx, IntegrationEligibility, request.PatientID, request, response); err != nil {
		return nil, err
	}

	return response, nil
}

func (ic *IntegrationController) RequestSpecialApproval(ctx context.Context, request *SpecialApprovalRequest) (*SpecialApprovalResponse, error) {
	log := ic.log.Function("RequestSpecialApproval")

	if _, err := ic.patientRepo.GetByID(ctx, request.PatientID); err != nil {
		return nil, log.Err("patient not found", err, "patientID", request.PatientID)
	}

	now := time.Now()
	response := &SpecialApprovalResponse{
		Approved:       ic.rand.Float64() > 0.3, // 70% approval rate
		CoverageRate:   90,
		ValidUntil:     now.AddDate(1, 0, 0).Format("2006-01-02"),
		ApprovalNumber: fmt.Sprintf("SA%08d", now.UnixMilli()%100000000),
	}

	if err := ic.record(ctx, IntegrationSpecialApproval, request.PatientID, request, response); err != nil {
		return nil, err
	}

	return response, nil
}

func (ic *IntegrationController) RoutePrivateInsurance(ctx context.Context, request *PrivateInsuranceRequest) (*PrivateInsuranceResponse, error) {
	log := ic.log.Function("RoutePrivateInsurance")

	if _, err := ic.patientRepo.GetByID(ctx, request.PatientID); err != nil {
		return nil, log.Err("patient not found", err, "patientID", request.PatientID)
	}

	response := &PrivateInsuranceResponse{
		InsuranceCompany: privateInsurers[ic.rand.Intn(len(privateInsurers))],
		ClaimNumber:      fmt.Sprintf("INS-%08d", time.Now().UnixMilli()%100000000),
		Status:           "accepted",
		ExpectedPayment:  request.Amount * 8 / 10,
	}

	if err := ic.record(ctx, IntegrationPrivateInsurance, request.PatientID, request, response); err != nil {
		return nil, err
	}

	return response, nil
}

func (ic *IntegrationController) GetHistory(ctx context.Context, integrationType IntegrationType, patientID string) ([]*ExternalIntegration, error) {
	return ic.integrationRepo.GetAll(ctx, repositories.IntegrationFilter{
		Type:      integrationType,
		PatientID: patientID,
	})
}

func (ic *IntegrationController) record(
	ctx context.Context,
	integrationType IntegrationType,
	patientID string,
	request any,
	response any,
) error {
	log := ic.log.Function("record")

	requestData, err := json.Marshal(request)
	if err != nil {
		return log.Err("failed to marshal integration request", err, "type", integrationType)
	}

	responseData, err := json.Marshal(response)
	if err != nil {
		return log.Err("failed to marshal integration response", err, "type", integrationType)
	}

	now := time.Now()
	row := &ExternalIntegration{
		IntegrationType: integrationType,
		PatientID:       &patientID,
		RequestData:     string(requestData),
		ResponseData:    string(responseData),
		Status:          "success",
		RequestedAt:     now,
		RespondedAt:     now,
	}

	return ic.integrationRepo.Create(ctx, row)
}
