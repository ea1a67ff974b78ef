package domain

import "time"

// Role is the access level assigned to a user account.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleMD        Role = "md"
	RoleManager   Role = "manager"
	RoleDataEntry Role = "dataentry"
)

// Approval states. Cash entries start as "submitted", timesheet entries
// as "pending"; both move to "approved" and back again on reset.
const (
	StatusSubmitted = "submitted"
	StatusPending   = "pending"
	StatusApproved  = "approved"
)

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// CashEntry is one day-level row of the estate cash book. TotalCost,
// FixedCost, GrandTotal and NetCash are derived from the input fields
// at creation time and stored alongside them.
type CashEntry struct {
	ID             int        `db:"id"`
	Date           time.Time  `db:"date"`
	TotalKg        float64    `db:"total_kg"`
	AmountTk       float64    `db:"amount_tk"`
	GreenLeafBill  float64    `db:"green_leaf_bill_payment"`
	StaffSalary    float64    `db:"staff_salary"`
	LabourBill     float64    `db:"labour_bill"`
	ProductionCost float64    `db:"production_cost"`
	Coal           float64    `db:"coal"`
	Diesel         float64    `db:"diesel"`
	Electricity    float64    `db:"electricity"`
	OtherExp       float64    `db:"other_exp"`
	TotalCost      float64    `db:"total_cost"`
	CapitalCost    float64    `db:"capital_cost"`
	Machineries    float64    `db:"machineries"`
	AssetsPurchase float64    `db:"assets_purchase"`
	Construction   float64    `db:"construction"`
	FixedCost      float64    `db:"fixed_cost"`
	GrandTotal     float64    `db:"grand_total"`
	CashReceive    float64    `db:"cash_receive"`
	AddAmount      float64    `db:"add_amount"`
	LessAmount     float64    `db:"less_amount"`
	NetCash        float64    `db:"net_cash"`
	Note           string     `db:"note"`
	VoucherPath    *string    `db:"voucher_path"`
	Status         string     `db:"status"`
	CreatedBy      int        `db:"created_by"`
	ApprovedBy     *int       `db:"approved_by"`
	ApprovedAt     *time.Time `db:"approved_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

// CashTotals carries the per-column sums of a set of cash entries.
type CashTotals struct {
	TotalKg        float64
	AmountTk       float64
	GreenLeafBill  float64
	StaffSalary    float64
	LabourBill     float64
	ProductionCost float64
	Coal           float64
	Diesel         float64
	Electricity    float64
	OtherExp       float64
	TotalCost      float64
	CapitalCost    float64
	Machineries    float64
	AssetsPurchase float64
	Construction   float64
	FixedCost      float64
	GrandTotal     float64
	CashReceive    float64
	AddAmount      float64
	LessAmount     float64
	NetCash        float64
}

// RangeSummary is the cash book rolled up over a date range.
type RangeSummary struct {
	Expenses float64 `db:"expenses"`
	Revenue  float64 `db:"revenue"`
}

// Worker is an hourly-paid field or factory worker. HourlyRate holds the
// latest requested rate; ApprovedHourlyRate lags behind until management
// signs it off and is reset to zero whenever the rate changes.
type Worker struct {
	ID                 int        `db:"id"`
	Name               string     `db:"name"`
	JoinDate           time.Time  `db:"join_date"`
	LeaveDate          *time.Time `db:"leave_date"`
	Note               string     `db:"note"`
	Active             bool       `db:"active"`
	HourlyRate         float64    `db:"hourly_rate"`
	ApprovedHourlyRate float64    `db:"approved_hourly_rate"`
}

// Staff is a salaried employee. ApprovedSalary is nil while the current
// salary awaits sign-off.
type Staff struct {
	ID             int        `db:"id"`
	Name           string     `db:"name"`
	Position       string     `db:"position"`
	Salary         float64    `db:"salary"`
	ApprovedSalary *float64   `db:"approved_salary"`
	JoinDate       time.Time  `db:"join_date"`
	LeaveDate      *time.Time `db:"leave_date"`
}

// TimesheetEntry records hours worked by one worker on one day.
// WorkerName is populated by queries that join the workers table.
type TimesheetEntry struct {
	ID         int        `db:"id"`
	Date       time.Time  `db:"date"`
	WorkerID   int        `db:"worker_id"`
	WorkerName string     `db:"worker_name"`
	Hours      float64    `db:"hours"`
	Note       string     `db:"note"`
	Status     string     `db:"status"`
	CreatedBy  int        `db:"created_by"`
	ApprovedBy *int       `db:"approved_by"`
	ApprovedAt *time.Time `db:"approved_at"`
}
