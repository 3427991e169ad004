package http

import (
	"net/http"

	"github.com/bonsa9/portfolio/internal/posts"
)

const noStore = "no-store, no-cache, must-revalidate"

type postDetail struct {
	posts.Record
	HTML string `json:"html"`
}

func (api *API) registerBlogRoutes(mux *http.ServeMux, base string) {
	if api.posts == nil {
		return
	}
	root := joinPath(base, "blog")
	mux.HandleFunc("GET "+root, api.handleBlogList)
	mux.HandleFunc("GET "+root+"/{slug}", api.handleBlogGet)
}

func (api *API) handleBlogList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", noStore)
	writeJSON(w, http.StatusOK, api.posts.Ingest(r.Context()))
}

func (api *API) handleBlogGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", noStore)
	record, ok := api.posts.Find(r.Context(), r.PathValue("slug"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not_found"})
		return
	}

	detail := postDetail{Record: record}
	if api.renderer != nil && record.Body != "" {
		html, err := api.renderer.Render(record.Body)
		if err != nil {
			api.logger.Warn("http.blog.render_failed", "slug", record.Slug, "error", err)
		} else {
			detail.HTML = html
		}
	}
	writeJSON(w, http.StatusOK, detail)
}
