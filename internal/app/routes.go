package app

import "net/http"

// RegisterRoutes registers routes and
// assigns custom handler to the HTTP server
func (a *App) RegisterRoutes() *App {
	mux := http.NewServeMux()

	// The pipeline, submit a message with a video URL
	mux.HandleFunc("POST /api/links", a.mw.RequireUser(a.links.ExtractHandler))

	// Filter commands
	mux.HandleFunc("GET /api/filters", a.mw.RequireUser(a.links.FiltersHandler))
	mux.HandleFunc("PUT /api/filters", a.mw.RequireUser(a.links.SetFiltersHandler))
	mux.HandleFunc("DELETE /api/filters", a.mw.RequireUser(a.links.ClearFiltersHandler))
	mux.HandleFunc("POST /api/filters/words", a.mw.RequireUser(a.links.AddFilterHandler))
	mux.HandleFunc("DELETE /api/filters/words/{word}", a.mw.RequireUser(a.links.RemoveFilterHandler))

	// Extraction history
	mux.HandleFunc("GET /api/history", a.mw.RequireUser(a.links.HistoryHandler))

	// Health
	mux.HandleFunc("GET /health", a.misc.HealthHandler)
	mux.HandleFunc("GET /healthcheck", a.misc.HealthCheckHandler)

	// Chain middlewares that apply to all requests.
	// The order is important.
	// Use this custom handler as HTTP server handler
	a.server.Handler = a.mw.ApplyToAll(
		a.mw.RecoverPanic,
		a.mw.CloseBody,
		a.mw.Logging,
		a.mw.AddHeaders,
		a.mw.Compress,
	)(mux)

	return a
}
