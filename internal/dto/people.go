package dto

type AddPersonRequestDTO struct {
	Kind       string  `json:"kind" validate:"required,oneof=worker staff" example:"worker"`
	Name       string  `json:"name" validate:"required" example:"Ayesha Begum"`
	JoinDate   string  `json:"join_date" example:"2025-05-01"`
	HourlyRate float64 `json:"hourly_rate" example:"55"`
	Note       string  `json:"note" example:"section 7 plucker"`
	Position   string  `json:"position" example:"Accountant"`
	Salary     float64 `json:"salary" example:"18000"`
}

type UpdateRateRequestDTO struct {
	HourlyRate float64 `json:"hourly_rate" validate:"required" example:"60"`
}

type UpdateSalaryRequestDTO struct {
	Salary float64 `json:"salary" validate:"required" example:"20000"`
}

type WorkerResponseDTO struct {
	ID                 int     `json:"id" example:"4"`
	Name               string  `json:"name" example:"Ayesha Begum"`
	JoinDate           string  `json:"join_date" example:"2025-05-01"`
	LeaveDate          string  `json:"leave_date,omitempty" example:"2025-08-15"`
	Note               string  `json:"note"`
	Active             bool    `json:"active" example:"true"`
	HourlyRate         float64 `json:"hourly_rate" example:"55"`
	ApprovedHourlyRate float64 `json:"approved_hourly_rate" example:"50"`
	WeeklyWages        float64 `json:"weekly_wages" example:"2200"`
}

type StaffResponseDTO struct {
	ID             int      `json:"id" example:"2"`
	Name           string   `json:"name" example:"Kamal Hossain"`
	Position       string   `json:"position" example:"Accountant"`
	Salary         float64  `json:"salary" example:"18000"`
	ApprovedSalary *float64 `json:"approved_salary" example:"18000"`
	JoinDate       string   `json:"join_date" example:"2024-11-01"`
	LeaveDate      string   `json:"leave_date,omitempty" example:"2025-08-15"`
}

type PeopleResponseDTO struct {
	Workers          []WorkerResponseDTO `json:"workers"`
	Staff            []StaffResponseDTO  `json:"staff"`
	TotalStaffSalary float64             `json:"total_staff_salary" example:"54000"`
}
