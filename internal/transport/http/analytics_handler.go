package httpapi

import (
	"net/http"
)

// dashboardHandler serves the compact admin landing view.
func (a *App) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	rep, err := a.Report.Execute(r.Context(), dashboardTopN, recentN)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

// analyticsHandler serves the full analytics view with the longer ranking.
func (a *App) analyticsHandler(w http.ResponseWriter, r *http.Request) {
	rep, err := a.Report.Execute(r.Context(), analyticsTopN, recentN)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rep)
}
