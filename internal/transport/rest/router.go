package rest

import "net/http"

// Handlers bundles the endpoint groups mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Business    *BusinessHandler
	Link        *LinkHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Audit       *AuditHandler
}

// NewRouter mounts every endpoint on a ServeMux. Cross-cutting middleware
// is applied by the caller around the result.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /businesses", h.Business.Register)
	mux.HandleFunc("GET /businesses/{id}", h.Business.Get)
	mux.HandleFunc("POST /businesses/{id}/approve", h.Business.Approve)
	mux.HandleFunc("POST /businesses/{id}/reject", h.Business.Reject)
	mux.HandleFunc("POST /businesses/{id}/revoke", h.Business.Revoke)
	mux.HandleFunc("GET /businesses/{id}/recruiter-links", h.Link.ListByBusiness)

	mux.HandleFunc("POST /recruiter-links", h.Link.Request)
	mux.HandleFunc("GET /recruiter-links/me", h.Link.Mine)
	mux.HandleFunc("GET /recruiter-links/{id}", h.Link.Get)
	mux.HandleFunc("POST /recruiter-links/{id}/approve", h.Link.Approve)
	mux.HandleFunc("POST /recruiter-links/{id}/reject", h.Link.Reject)
	mux.HandleFunc("POST /recruiter-links/{id}/unlink", h.Link.Unlink)

	mux.HandleFunc("POST /jobs", h.Job.Create)
	mux.HandleFunc("GET /jobs", h.Job.List)
	mux.HandleFunc("GET /jobs/{id}", h.Job.Get)
	mux.HandleFunc("POST /jobs/{id}/approve", h.Job.Approve)
	mux.HandleFunc("POST /jobs/{id}/reject", h.Job.Reject)
	mux.HandleFunc("GET /jobs/{id}/applications", h.Application.ListByJob)
	mux.HandleFunc("GET /me/jobs", h.Job.ListMine)

	mux.HandleFunc("POST /applications", h.Application.Apply)
	mux.HandleFunc("GET /applications/{id}", h.Application.Get)
	mux.HandleFunc("POST /applications/{id}/review", h.Application.Review)
	mux.HandleFunc("POST /applications/{id}/shortlist", h.Application.Shortlist)
	mux.HandleFunc("POST /applications/{id}/reject", h.Application.Reject)
	mux.HandleFunc("PATCH /applications/{id}/round-result", h.Application.RoundResult)
	mux.HandleFunc("PATCH /applications/{id}/withdraw", h.Application.Withdraw)
	mux.HandleFunc("GET /me/applications", h.Application.ListMine)

	mux.HandleFunc("GET /audit/{entityType}/{id}", h.Audit.History)

	return mux
}
