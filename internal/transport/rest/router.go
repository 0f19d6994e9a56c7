package rest

import "net/http"

// Routes lists the handlers mounted by NewRouter. Nil handlers are skipped.
type Routes struct {
	Languages   *LanguageHandler
	Health      *HealthHandler
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers every route on a ServeMux.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	if h := rt.Languages; h != nil {
		mux.HandleFunc("GET /v1/languages", h.List)
		mux.HandleFunc("GET /v1/languages/{value}", h.Get)
		mux.HandleFunc("GET /v1/languages/{value}/individuals", h.Individuals)
		mux.HandleFunc("GET /v1/languages/{value}/macro", h.Macro)
		mux.HandleFunc("GET /v1/check/{value}", h.Check)
	}

	if h := rt.Health; h != nil {
		mux.HandleFunc("GET /live", h.Live)
		mux.HandleFunc("GET /ready", h.Ready)
		mux.HandleFunc("GET /health", h.Health)
	}

	if rt.Metrics != nil {
		path := rt.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, rt.Metrics)
	}

	return mux
}
