// Package chirouter adapts a chi router to [authpages.Router].
package chirouter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackielii/authpages"
)

type chiRouter struct {
	router chi.Router
}

var _ authpages.Router = (*chiRouter)(nil)

func NewChiRouter(r chi.Router) *chiRouter {
	return &chiRouter{router: r}
}

func (r *chiRouter) HandleMethod(method, path string, handler http.Handler) {
	if method == "ALL" || method == "" {
		r.router.Handle(path, handler)
	} else {
		r.router.Method(method, path, handler)
	}
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
