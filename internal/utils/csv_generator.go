package utils

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	. "claimdesk/internal/models"
)

var claimCSVHeaders = []string{
	"claim_number",
	"patient_number",
	"patient_name",
	"visit_date",
	"department",
	"diagnosis_code",
	"diagnosis_name",
	"doctor_name",
	"status",
	"total_amount",
	"insurance_amount",
	"copay_amount",
	"submitted_at",
}

// GenerateClaimsCSV renders claims as a UTF-8 CSV document with a BOM so
// spreadsheet tools display Korean text correctly.
func GenerateClaimsCSV(claims []*Claim) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	writer := csv.NewWriter(&buf)
	if err := writer.Write(claimCSVHeaders); err != nil {
		return nil, err
	}

	for _, claim := range claims {
		patientNumber := ""
		patientName := ""
		if claim.Patient != nil {
			patientNumber = claim.Patient.PatientNumber
			patientName = claim.Patient.Name
		}

		submittedAt := ""
		if claim.SubmittedAt != nil {
			submittedAt = claim.SubmittedAt.Format(time.RFC3339)
		}

		record := []string{
			claim.ClaimNumber,
			patientNumber,
			patientName,
			claim.VisitDate,
			claim.Department,
			claim.DiagnosisCode,
			claim.DiagnosisName,
			claim.DoctorName,
			string(claim.Status),
			strconv.Itoa(claim.TotalAmount),
			strconv.Itoa(claim.InsuranceAmount),
			strconv.Itoa(claim.CopayAmount),
			submittedAt,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
