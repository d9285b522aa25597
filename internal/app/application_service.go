package app

import (
	"context"

	"hirewire/internal/common"
	"hirewire/internal/domain/application"
	"hirewire/internal/domain/job"
	"hirewire/internal/domain/user"
)

// ApplicationService is the hiring pipeline engine. Role checks happen
// at the router; ownership and transition rules are enforced here, and
// the final status write is a compare-and-set at the repository so a
// lost race never skips a pipeline stage.
type ApplicationService struct {
	repo  application.Repository
	jobs  job.Repository
	users user.Repository
}

func NewApplicationService(repo application.Repository, jobs job.Repository, users user.Repository) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, users: users}
}

func (s *ApplicationService) Apply(ctx context.Context, candidateID, jobID common.UUID, message string) (*application.Application, error) {
	candidate, err := s.users.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByJobAndCandidate(ctx, jobID, candidateID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	// Name and email are snapshotted at application time so later
	// profile edits do not rewrite employer-facing history.
	return s.repo.Create(ctx, application.Application{
		JobID:          jobID,
		CandidateID:    candidateID,
		CandidateName:  candidate.Name,
		CandidateEmail: candidate.Email,
		Message:        message,
		Status:         application.StatusPending,
	})
}

// Screen records the employer's first decision on a pending application:
// shortlist or reject. Any other current status fails without a write.
func (s *ApplicationService) Screen(ctx context.Context, employerID, applicationID common.UUID, target application.Status) (*application.Application, error) {
	if !application.IsScreenTarget(target) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be shortlisted or rejected"})
	}
	app, err := s.ownedApplication(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != application.StatusPending {
		return nil, common.NewError(common.CodeConflict, "already processed", nil)
	}
	return s.repo.UpdateStatusIf(ctx, applicationID, application.StatusPending, target)
}

// Advance moves a shortlisted application through the remaining stages.
// The target must be the next stage per the transition table; skipping
// stages is rejected.
func (s *ApplicationService) Advance(ctx context.Context, employerID, applicationID common.UUID, target application.Status) (*application.Application, error) {
	if !application.IsStageTarget(target) {
		return nil, common.NewValidationError("invalid stage", map[string]string{"status": "status must be interview_scheduled, offer_extended, or hired"})
	}
	app, err := s.ownedApplication(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}
	if !application.CanTransition(app.Status, target) {
		return nil, common.NewError(common.CodeValidation, "invalid status transition", nil)
	}
	return s.repo.UpdateStatusIf(ctx, applicationID, app.Status, target)
}

func (s *ApplicationService) ListMine(ctx context.Context, candidateID common.UUID) ([]application.CandidateApplication, error) {
	return s.repo.ListByCandidate(ctx, candidateID)
}

func (s *ApplicationService) ListApplicants(ctx context.Context, employerID common.UUID) ([]application.Summary, error) {
	return s.repo.ListByEmployer(ctx, employerID, nil)
}

func (s *ApplicationService) Pipeline(ctx context.Context, employerID common.UUID) ([]application.Summary, error) {
	return s.repo.ListByEmployer(ctx, employerID, application.PipelineStatuses)
}

// MonthlyCounts buckets the employer's applications by calendar month.
// Keys are year-qualified ("Jan 2026") so multi-year data stays apart.
func (s *ApplicationService) MonthlyCounts(ctx context.Context, employerID common.UUID) (map[string]int, error) {
	items, err := s.repo.ListByEmployer(ctx, employerID, nil)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, item := range items {
		counts[item.CreatedAt.Format("Jan 2006")]++
	}
	return counts, nil
}

func (s *ApplicationService) HasApplied(ctx context.Context, candidateID, jobID common.UUID) (bool, error) {
	if _, err := s.repo.FindByJobAndCandidate(ctx, jobID, candidateID); err != nil {
		if common.Is(err, common.CodeNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *ApplicationService) ownedApplication(ctx context.Context, employerID, applicationID common.UUID) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	posting, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if posting.PostedBy != employerID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another employer", nil)
	}
	return app, nil
}
