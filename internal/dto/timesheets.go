package dto

type TimesheetEntryInputDTO struct {
	WorkerID int     `json:"worker_id" validate:"required" example:"4"`
	Hours    float64 `json:"hours" example:"8"`
	Note     string  `json:"note" example:"plucking, section 7"`
}

type SaveTimesheetRequestDTO struct {
	Date    string                   `json:"date" validate:"required" example:"2025-06-07"`
	Entries []TimesheetEntryInputDTO `json:"entries"`
}

type SaveTimesheetResponseDTO struct {
	Message string `json:"message"`
	Saved   int    `json:"saved" example:"3"`
}

type RosterWorkerDTO struct {
	ID   int    `json:"id" example:"4"`
	Name string `json:"name" example:"Ayesha Begum"`
}

type TimesheetRowResponseDTO struct {
	ID         int     `json:"id" example:"15"`
	Date       string  `json:"date" example:"2025-06-07"`
	WorkerID   int     `json:"worker_id" example:"4"`
	WorkerName string  `json:"worker_name" example:"Ayesha Begum"`
	Hours      float64 `json:"hours" example:"8"`
	Note       string  `json:"note"`
	Status     string  `json:"status" example:"pending"`
	ApprovedBy *int    `json:"approved_by,omitempty" example:"2"`
	ApprovedAt string  `json:"approved_at,omitempty" example:"2025-06-08T09:30:00Z"`
}

type TimesheetDayResponseDTO struct {
	Date    string                    `json:"date" example:"2025-06-07"`
	Workers []RosterWorkerDTO         `json:"workers"`
	Rows    []TimesheetRowResponseDTO `json:"rows"`
}
