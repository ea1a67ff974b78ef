package dto

type SummaryResponseDTO struct {
	Start         string  `json:"start" example:"2025-06-01"`
	End           string  `json:"end" example:"2025-06-30"`
	TotalExpenses float64 `json:"total_expenses" example:"125000"`
	TotalRevenue  float64 `json:"total_revenue" example:"98000"`
}
