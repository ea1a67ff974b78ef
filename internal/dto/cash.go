package dto

type CashEntryResponseDTO struct {
	ID             int     `json:"id" example:"12"`
	Date           string  `json:"date" example:"2025-06-07"`
	TotalKg        float64 `json:"total_kg" example:"1450"`
	AmountTk       float64 `json:"amount_tk" example:"52000"`
	GreenLeafBill  float64 `json:"green_leaf_bill_payment" example:"12000"`
	StaffSalary    float64 `json:"staff_salary" example:"8000"`
	LabourBill     float64 `json:"labour_bill" example:"6500"`
	ProductionCost float64 `json:"production_cost" example:"3000"`
	Coal           float64 `json:"coal" example:"2000"`
	Diesel         float64 `json:"diesel" example:"1500"`
	Electricity    float64 `json:"electricity" example:"900"`
	OtherExp       float64 `json:"other_exp" example:"400"`
	TotalCost      float64 `json:"total_cost" example:"34300"`
	CapitalCost    float64 `json:"capital_cost" example:"0"`
	Machineries    float64 `json:"machineries" example:"0"`
	AssetsPurchase float64 `json:"assets_purchase" example:"0"`
	Construction   float64 `json:"construction" example:"5000"`
	FixedCost      float64 `json:"fixed_cost" example:"5000"`
	GrandTotal     float64 `json:"grand_total" example:"39300"`
	CashReceive    float64 `json:"cash_receive" example:"45000"`
	AddAmount      float64 `json:"add_amount" example:"0"`
	LessAmount     float64 `json:"less_amount" example:"1200"`
	NetCash        float64 `json:"net_cash" example:"43800"`
	Note           string  `json:"note" example:"factory run day"`
	Voucher        string  `json:"voucher,omitempty" example:"20250607_101500_bill.pdf"`
	Status         string  `json:"status" example:"submitted"`
	ApprovedBy     *int    `json:"approved_by,omitempty" example:"2"`
	ApprovedAt     string  `json:"approved_at,omitempty" example:"2025-06-08T09:30:00Z"`
}

type CashTotalsDTO struct {
	TotalKg        float64 `json:"total_kg"`
	AmountTk       float64 `json:"amount_tk"`
	GreenLeafBill  float64 `json:"green_leaf_bill_payment"`
	StaffSalary    float64 `json:"staff_salary"`
	LabourBill     float64 `json:"labour_bill"`
	ProductionCost float64 `json:"production_cost"`
	Coal           float64 `json:"coal"`
	Diesel         float64 `json:"diesel"`
	Electricity    float64 `json:"electricity"`
	OtherExp       float64 `json:"other_exp"`
	TotalCost      float64 `json:"total_cost"`
	CapitalCost    float64 `json:"capital_cost"`
	Machineries    float64 `json:"machineries"`
	AssetsPurchase float64 `json:"assets_purchase"`
	Construction   float64 `json:"construction"`
	FixedCost      float64 `json:"fixed_cost"`
	GrandTotal     float64 `json:"grand_total"`
	CashReceive    float64 `json:"cash_receive"`
	AddAmount      float64 `json:"add_amount"`
	LessAmount     float64 `json:"less_amount"`
	NetCash        float64 `json:"net_cash"`
}

type CashMonthResponseDTO struct {
	Month   string                 `json:"month" example:"2025-06"`
	Entries []CashEntryResponseDTO `json:"entries"`
	Totals  CashTotalsDTO          `json:"totals"`
}

type CreateCashEntryResponseDTO struct {
	Message string `json:"message"`
	ID      int    `json:"id" example:"12"`
}
