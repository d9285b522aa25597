package job

import (
	"time"

	"hirewire/internal/common"
)

type Job struct {
	ID              common.UUID `json:"id"`
	PostedBy        common.UUID `json:"posted_by"`
	Title           string      `json:"title"`
	CompanyName     string      `json:"company_name"`
	Department      string      `json:"department,omitempty"`
	Description     string      `json:"description,omitempty"`
	Location        string      `json:"location,omitempty"`
	Type            string      `json:"type,omitempty"`
	Workplace       string      `json:"workplace,omitempty"`
	JobLevel        string      `json:"job_level,omitempty"`
	MaxResponseTime string      `json:"max_response_time,omitempty"`
	MinSalary       int64       `json:"min_salary"`
	MaxSalary       int64       `json:"max_salary"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

// WithApplicants is the employer-facing listing row.
type WithApplicants struct {
	Job
	ApplicantsCount int `json:"applicants_count"`
}
