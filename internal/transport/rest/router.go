package rest

import "net/http"

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health *HealthHandler
	Plans  *PlanHandler
	Badges *BadgeHandler
}

// NewRouter mounts the health probes unwrapped and every board endpoint behind
// wrap, which carries the request-scoped middleware (CORS, auth, loaders).
func NewRouter(h Handlers, wrap func(http.Handler) http.Handler) http.Handler {
	board := http.NewServeMux()
	board.HandleFunc("GET /plans", h.Plans.List)
	board.HandleFunc("GET /plans/{id}", h.Plans.Get)
	board.HandleFunc("POST /plans/{id}/transition", h.Plans.Transition)
	board.HandleFunc("GET /plans/{id}/transitions", h.Plans.History)
	board.HandleFunc("GET /plans/{id}/badges", h.Badges.List)
	board.HandleFunc("POST /plans/{id}/badges/{labelId}/toggle", h.Badges.Toggle)
	board.HandleFunc("GET /badges/catalog", h.Badges.Catalog)
	board.HandleFunc("GET /queue/counts", h.Plans.QueueCounts)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if wrap != nil {
		mux.Handle("/", wrap(board))
	} else {
		mux.Handle("/", board)
	}
	return mux
}
