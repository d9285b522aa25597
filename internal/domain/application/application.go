package application

import (
	"time"

	"hirewire/internal/common"
)

type Application struct {
	ID             common.UUID `json:"id"`
	JobID          common.UUID `json:"job_id"`
	CandidateID    common.UUID `json:"candidate_id"`
	CandidateName  string      `json:"candidate_name"`
	CandidateEmail string      `json:"candidate_email"`
	Message        string      `json:"message,omitempty"`
	Status         Status      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Summary is the employer-facing applicant row, joined with the
// candidate snapshot and the job title.
type Summary struct {
	ID             common.UUID `json:"id"`
	CandidateName  string      `json:"name"`
	CandidateEmail string      `json:"email"`
	JobID          common.UUID `json:"job_id"`
	JobTitle       string      `json:"job_title"`
	Status         Status      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}

// CandidateApplication is the candidate-facing row, joined with the
// posting the candidate applied to.
type CandidateApplication struct {
	Application
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
	JobLocation string `json:"job_location,omitempty"`
	JobType     string `json:"job_type,omitempty"`
}
