// Package http exposes the portfolio JSON API on a standard ServeMux.
//
// Routes mount under /api:
//   - Blog: /blog, /blog/{slug}
//   - Projects: /github (query: filter, q)
//   - Profile: /github/profile
//   - Chat: /chat (POST), /chat/welcome
//
// plus /healthz at the root. Host applications can register the handlers
// on their own mux.
package http
