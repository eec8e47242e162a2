package authpages

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackielii/ctxkey"
)

var (
	tableCtx = ctxkey.New[*mountTable]("authpages.mountTable", nil)
	ssrCtx   = ctxkey.New[map[string]any]("authpages.ssrContext", nil)
)

func withMountTable(t *mountTable) MiddlewareFunc {
	return func(next http.Handler, node *RouteNode) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := tableCtx.WithValue(r.Context(), t)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// URLFor returns the path a route was mounted at, looked up by plugin name
// and route key. If the same plugin was mounted more than once, the first
// mount wins.
//
// The context must come from a request served by [Pages] or from
// [Pages.WithContext].
func URLFor(ctx context.Context, plugin, key string) (string, error) {
	t := tableCtx.Value(ctx)
	if t == nil {
		return "", errors.New("urlfor: mount table not found in context")
	}
	node, ok := t.lookup(plugin, key)
	if !ok {
		return "", fmt.Errorf("urlfor: no route %s.%s", plugin, key)
	}
	return node.FullPath, nil
}

// SSRContext returns the Context of the plugin serving the current request.
func SSRContext(ctx context.Context) map[string]any {
	return ssrCtx.Value(ctx)
}
