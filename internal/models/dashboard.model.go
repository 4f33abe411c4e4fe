package models

type StatusCount struct {
	Status ClaimStatus `json:"status"`
	Count  int         `json:"count"`
}

type PendingPayments struct {
	Count  int `json:"count"`
	Amount int `json:"amount"`
}

type DashboardStats struct {
	TotalPatients   int             `json:"totalPatients"`
	ClaimsByStatus  []StatusCount   `json:"claimsByStatus"`
	ThisMonthClaims int             `json:"thisMonthClaims"`
	PendingPayments PendingPayments `json:"pendingPayments"`
}

type MonthlyStat struct {
	Month           string `json:"month"`
	Count           int    `json:"count"`
	TotalAmount     int    `json:"totalAmount"`
	InsuranceAmount int    `json:"insuranceAmount"`
	CopayAmount     int    `json:"copayAmount"`
}

type ReductionStat struct {
	ResultType       ReviewResultType `json:"resultType"`
	Count            int              `json:"count"`
	AvgReductionRate float64          `json:"avgReductionRate"`
	TotalOriginal    int              `json:"totalOriginal"`
	TotalApproved    int              `json:"totalApproved"`
	TotalReduction   int              `json:"totalReduction"`
}

type DepartmentStat struct {
	Department  string  `json:"department"`
	Count       int     `json:"count"`
	TotalAmount int     `json:"totalAmount"`
	AvgAmount   float64 `json:"avgAmount"`
}
