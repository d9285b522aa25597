package app

import (
	"context"
	"strings"

	"hirewire/internal/common"
	"hirewire/internal/domain/application"
	"hirewire/internal/domain/job"
	"hirewire/internal/domain/user"
)

const (
	publicJobsLimit      = 200
	dashboardPostsLimit  = 5
	activeJobStatusLabel = "Active"
)

type JobService struct {
	jobs         job.Repository
	applications application.Repository
	users        user.Repository
}

func NewJobService(jobs job.Repository, applications application.Repository, users user.Repository) *JobService {
	return &JobService{jobs: jobs, applications: applications, users: users}
}

func (s *JobService) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	fields := map[string]string{}
	if strings.TrimSpace(posting.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(posting.CompanyName) == "" {
		fields["company_name"] = "company_name is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("missing required fields", fields)
	}
	return s.jobs.Create(ctx, posting)
}

type JobDetails struct {
	job.Job
	PosterName  string `json:"poster_name,omitempty"`
	PosterEmail string `json:"poster_email,omitempty"`
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*JobDetails, error) {
	posting, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	details := JobDetails{Job: *posting}
	if poster, err := s.users.GetByID(ctx, posting.PostedBy); err == nil {
		details.PosterName = poster.Name
		details.PosterEmail = poster.Email
	}
	return &details, nil
}

func (s *JobService) ListPublic(ctx context.Context) ([]job.Job, error) {
	return s.jobs.ListPublic(ctx, publicJobsLimit)
}

func (s *JobService) ListByEmployer(ctx context.Context, employerID common.UUID) ([]job.WithApplicants, error) {
	postings, err := s.jobs.ListByEmployer(ctx, employerID, 0)
	if err != nil {
		return nil, err
	}
	return s.attachCounts(ctx, postings)
}

type Metric struct {
	Title string `json:"title"`
	Value int    `json:"value"`
}

type DashboardSummary struct {
	Metrics  []Metric             `json:"metrics"`
	Postings []job.WithApplicants `json:"postings"`
}

func (s *JobService) Dashboard(ctx context.Context, employerID common.UUID) (*DashboardSummary, error) {
	recent, err := s.jobs.ListByEmployer(ctx, employerID, dashboardPostsLimit)
	if err != nil {
		return nil, err
	}
	postings, err := s.attachCounts(ctx, recent)
	if err != nil {
		return nil, err
	}
	total, err := s.jobs.CountByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}
	active, err := s.jobs.CountByEmployerAndStatus(ctx, employerID, activeJobStatusLabel)
	if err != nil {
		return nil, err
	}
	return &DashboardSummary{
		Metrics: []Metric{
			{Title: "Total Jobs", Value: total},
			{Title: "Recent Posts", Value: len(postings)},
			{Title: "Active Jobs", Value: active},
		},
		Postings: postings,
	}, nil
}

func (s *JobService) attachCounts(ctx context.Context, postings []job.Job) ([]job.WithApplicants, error) {
	items := make([]job.WithApplicants, 0, len(postings))
	for _, posting := range postings {
		count, err := s.applications.CountByJob(ctx, posting.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, job.WithApplicants{Job: posting, ApplicantsCount: count})
	}
	return items, nil
}
