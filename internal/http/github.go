package http

import (
	"errors"
	"net/http"

	"github.com/bonsa9/portfolio/internal/profile"
	"github.com/bonsa9/portfolio/internal/projects"
)

const (
	profileTokenMissing = "GitHub token not found"
	profileFetchFailed  = "Failed to fetch profile"
)

func (api *API) registerGitHubRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "github")
	if api.projects != nil {
		mux.HandleFunc("GET "+root, api.handleRepositories)
	}
	if api.profile != nil {
		mux.HandleFunc("GET "+root+"/profile", api.handleProfile)
	}
}

func (api *API) handleRepositories(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := projects.Filter{
		Category: query.Get("filter"),
		Query:    query.Get("q"),
	}
	writeJSON(w, http.StatusOK, api.projects.List(r.Context(), filter))
}

func (api *API) handleProfile(w http.ResponseWriter, r *http.Request) {
	result, err := api.profile.Get(r.Context())
	if err != nil {
		message := profileFetchFailed
		if errors.Is(err, profile.ErrTokenMissing) {
			message = profileTokenMissing
		}
		api.logger.Error("http.profile.failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: message})
		return
	}
	writeJSON(w, http.StatusOK, result)
}
