package http

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"hirewire/internal/domain/user"
	"hirewire/internal/http/handlers"
	"hirewire/internal/http/metrics"
	httpmw "hirewire/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler        *handlers.AuthHandler
	JobHandler         *handlers.JobHandler
	ApplicationHandler *handlers.ApplicationHandler
	FeedHandler        *handlers.FeedHandler
	AssistantHandler   *handlers.AssistantHandler
	MetricsHandler     *handlers.MetricsHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	Logger             *zap.Logger
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging(r.deps.Logger), httpmw.BodyLimit(maxBodyBytes), httpmw.Recover(r.deps.Logger), httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/auth/register":
			r.deps.AuthHandler.Register(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodGet && path == "/api/jobs/public":
			r.deps.JobHandler.ListPublic(w, req)
			return
		}

		if strings.HasPrefix(path, "/api/") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/api/auth/me":
		r.deps.AuthHandler.Me(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/applications/check/"):
		httpmw.RequireRole(user.RoleCandidate)(http.HandlerFunc(r.deps.ApplicationHandler.CheckApplied)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/applications":
		httpmw.RequireRole(user.RoleCandidate)(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/applications":
		httpmw.RequireRole(user.RoleCandidate)(http.HandlerFunc(r.deps.ApplicationHandler.ListMine)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/applicants":
		httpmw.RequireRole(user.RoleEmployer)(http.HandlerFunc(r.deps.ApplicationHandler.ListApplicants)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/applicants/status/"):
		httpmw.RequireRole(user.RoleEmployer)(http.HandlerFunc(r.deps.ApplicationHandler.Screen)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/hiring-pipeline":
		httpmw.RequireRole(user.RoleEmployer)(http.HandlerFunc(r.deps.ApplicationHandler.Pipeline)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/hiring-stage/"):
		httpmw.RequireRole(user.RoleEmployer)(http.HandlerFunc(r.deps.ApplicationHandler.Advance)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/applications-per-month":
		httpmw.RequireRole(user.RoleEmployer)(http.HandlerFunc(r.deps.ApplicationHandler.MonthlyCounts)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/employer/jobs/create":
		httpmw.RequireRole(user.RoleEmployer)(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/employer/jobs":
		httpmw.RequireRole(user.RoleEmployer)(http.HandlerFunc(r.deps.JobHandler.ListEmployer)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/employer/dashboard/summary":
		httpmw.RequireRole(user.RoleEmployer)(http.HandlerFunc(r.deps.JobHandler.Dashboard)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/employer/jobs/"):
		httpmw.RequireRole(user.RoleEmployer)(http.HandlerFunc(r.deps.JobHandler.Get)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/posts":
		r.deps.FeedHandler.ListPosts(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/posts":
		r.deps.FeedHandler.CreatePost(w, req)
		return
	case req.Method == http.MethodPost && strings.HasSuffix(path, "/comments") && strings.HasPrefix(path, "/api/posts/"):
		r.deps.FeedHandler.AddComment(w, req)
		return
	case req.Method == http.MethodPost && strings.HasSuffix(path, "/like") && strings.HasPrefix(path, "/api/posts/"):
		r.deps.FeedHandler.ToggleLike(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/assistant/chat":
		r.deps.AssistantHandler.Chat(w, req)
		return
	}

	http.NotFound(w, req)
}
