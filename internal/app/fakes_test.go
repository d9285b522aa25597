package app

import (
	"context"
	"sync"
	"time"

	"hirewire/internal/common"
	"hirewire/internal/domain/application"
	"hirewire/internal/domain/job"
	"hirewire/internal/domain/post"
	"hirewire/internal/domain/user"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*user.User
	byID    map[common.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[common.UUID]*user.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, account user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[account.Email]; exists {
		return nil, common.NewError(common.CodeConflict, "email already in use", nil)
	}
	account.ID = common.NewUUID()
	account.CreatedAt = time.Now().UTC()
	r.byEmail[account.Email] = &account
	r.byID[account.ID] = &account
	return cloneUser(&account), nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byEmail[email]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	return cloneUser(account), nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byID[id]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	return cloneUser(account), nil
}

func cloneUser(account *user.User) *user.User {
	copy := *account
	return &copy
}

type fakeJobRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[common.UUID]*job.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posting.ID = common.NewUUID()
	if posting.Status == "" {
		posting.Status = "Active"
	}
	posting.CreatedAt = time.Now().UTC()
	r.byID[posting.ID] = &posting
	copy := posting
	return &copy, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posting := r.byID[id]
	if posting == nil {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	copy := *posting
	return &copy, nil
}

func (r *fakeJobRepo) ListPublic(ctx context.Context, limit int) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]job.Job, 0, len(r.byID))
	for _, posting := range r.byID {
		items = append(items, *posting)
		if limit > 0 && len(items) >= limit {
			break
		}
	}
	return items, nil
}

func (r *fakeJobRepo) ListByEmployer(ctx context.Context, employerID common.UUID, limit int) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]job.Job, 0)
	for _, posting := range r.byID {
		if posting.PostedBy != employerID {
			continue
		}
		items = append(items, *posting)
		if limit > 0 && len(items) >= limit {
			break
		}
	}
	return items, nil
}

func (r *fakeJobRepo) CountByEmployer(ctx context.Context, employerID common.UUID) (int, error) {
	items, _ := r.ListByEmployer(ctx, employerID, 0)
	return len(items), nil
}

func (r *fakeJobRepo) CountByEmployerAndStatus(ctx context.Context, employerID common.UUID, status string) (int, error) {
	items, _ := r.ListByEmployer(ctx, employerID, 0)
	count := 0
	for _, posting := range items {
		if posting.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	jobs *fakeJobRepo
	byID map[common.UUID]*application.Application
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{jobs: jobs, byID: make(map[common.UUID]*application.Application)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.JobID == app.JobID && existing.CandidateID == app.CandidateID {
			return nil, common.NewError(common.CodeConflict, "already applied", nil)
		}
	}
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	r.byID[app.ID] = &app
	copy := app
	return &copy, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.byID[id]
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	copy := *app
	return &copy, nil
}

func (r *fakeApplicationRepo) FindByJobAndCandidate(ctx context.Context, jobID, candidateID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.byID {
		if app.JobID == jobID && app.CandidateID == candidateID {
			copy := *app
			return &copy, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.CandidateApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]application.CandidateApplication, 0)
	for _, app := range r.byID {
		if app.CandidateID != candidateID {
			continue
		}
		row := application.CandidateApplication{Application: *app}
		if posting := r.jobs.byID[app.JobID]; posting != nil {
			row.JobTitle = posting.Title
			row.CompanyName = posting.CompanyName
			row.JobLocation = posting.Location
			row.JobType = posting.Type
		}
		items = append(items, row)
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByEmployer(ctx context.Context, employerID common.UUID, statuses []application.Status) ([]application.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]application.Summary, 0)
	for _, app := range r.byID {
		posting := r.jobs.byID[app.JobID]
		if posting == nil || posting.PostedBy != employerID {
			continue
		}
		if len(statuses) > 0 && !containsStatus(statuses, app.Status) {
			continue
		}
		items = append(items, application.Summary{
			ID:             app.ID,
			CandidateName:  app.CandidateName,
			CandidateEmail: app.CandidateEmail,
			JobID:          app.JobID,
			JobTitle:       posting.Title,
			Status:         app.Status,
			CreatedAt:      app.CreatedAt,
		})
	}
	return items, nil
}

func (r *fakeApplicationRepo) UpdateStatusIf(ctx context.Context, id common.UUID, from, to application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.byID[id]
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	if app.Status != from {
		return nil, common.NewError(common.CodeConflict, "already processed", nil)
	}
	app.Status = to
	app.UpdatedAt = time.Now().UTC()
	copy := *app
	return &copy, nil
}

func (r *fakeApplicationRepo) CountByJob(ctx context.Context, jobID common.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, app := range r.byID {
		if app.JobID == jobID {
			count++
		}
	}
	return count, nil
}

func containsStatus(statuses []application.Status, status application.Status) bool {
	for _, candidate := range statuses {
		if candidate == status {
			return true
		}
	}
	return false
}

type fakePostRepo struct {
	mu    sync.Mutex
	byID  map[common.UUID]*post.Post
	order []common.UUID
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{byID: make(map[common.UUID]*post.Post)}
}

func (r *fakePostRepo) Create(ctx context.Context, p post.Post) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = common.NewUUID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Likes == nil {
		p.Likes = []string{}
	}
	if p.Comments == nil {
		p.Comments = []post.Comment{}
	}
	r.byID[p.ID] = &p
	r.order = append(r.order, p.ID)
	return clonePost(&p), nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id common.UUID) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.byID[id]
	if p == nil {
		return nil, common.NewError(common.CodeNotFound, "post not found", nil)
	}
	return clonePost(p), nil
}

func (r *fakePostRepo) List(ctx context.Context, limit int) ([]post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]post.Post, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		items = append(items, *clonePost(r.byID[r.order[i]]))
		if limit > 0 && len(items) >= limit {
			break
		}
	}
	return items, nil
}

func (r *fakePostRepo) AddComment(ctx context.Context, postID common.UUID, comment post.Comment) (*post.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.byID[postID]
	if p == nil {
		return nil, common.NewError(common.CodeNotFound, "post not found", nil)
	}
	comment.ID = common.NewUUID()
	comment.PostID = postID
	comment.CreatedAt = time.Now().UTC()
	p.Comments = append(p.Comments, comment)
	copy := comment
	return &copy, nil
}

func (r *fakePostRepo) ToggleLike(ctx context.Context, postID common.UUID, userName string) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.byID[postID]
	if p == nil {
		return nil, common.NewError(common.CodeNotFound, "post not found", nil)
	}
	for i, name := range p.Likes {
		if name == userName {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return clonePost(p), nil
		}
	}
	p.Likes = append(p.Likes, userName)
	return clonePost(p), nil
}

func clonePost(p *post.Post) *post.Post {
	copy := *p
	if p.Likes != nil {
		copy.Likes = append([]string{}, p.Likes...)
	}
	if p.Comments != nil {
		copy.Comments = append([]post.Comment{}, p.Comments...)
	}
	return &copy
}
