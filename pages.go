package authpages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"path"
	"slices"
	"sync"
)

// MiddlewareFunc wraps the handler of a mounted route.
type MiddlewareFunc = func(http.Handler, *RouteNode) http.Handler

// Pages mounts plugins onto a [Router] and renders their routes.
type Pages struct {
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []MiddlewareFunc
	layout      Layout
	logger      *slog.Logger
	table       *mountTable
}

// New creates a Pages with the given options applied.
func New(options ...func(*Pages)) *Pages {
	p := &Pages{
		layout: Document,
		logger: slog.Default(),
		table:  newMountTable(),
	}
	p.onError = func(w http.ResponseWriter, r *http.Request, err error) {
		p.logger.ErrorContext(r.Context(), "render page", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// WithErrorHandler sets the handler called when a page fails to render.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) func(*Pages) {
	return func(p *Pages) {
		p.onError = onError
	}
}

// WithMiddlewares adds middlewares applied to every mounted route. The first
// middleware is the outermost.
func WithMiddlewares(middlewares ...MiddlewareFunc) func(*Pages) {
	return func(p *Pages) {
		p.middlewares = append(p.middlewares, middlewares...)
	}
}

// WithLayout replaces the default [Document] layout.
func WithLayout(layout Layout) func(*Pages) {
	return func(p *Pages) {
		p.layout = layout
	}
}

// WithLogger sets the logger used by the default error handler.
func WithLogger(logger *slog.Logger) func(*Pages) {
	return func(p *Pages) {
		p.logger = logger
	}
}

// Mount registers a GET handler for every route of every plugin under prefix.
// Routes are registered in plugin order, then in sorted key order. Mount
// fails without registering anything if two routes resolve to the same path.
func (p *Pages) Mount(router Router, prefix string, plugins ...*Plugin) error {
	type mounted struct {
		plugin *Plugin
		route  Route
		node   *RouteNode
	}
	var pending []mounted
	seen := make(map[string]*RouteNode)
	for _, pl := range plugins {
		routes := pl.Routes()
		for _, key := range slices.Sorted(maps.Keys(routes)) {
			route := routes[key]
			node := &RouteNode{
				Plugin:   pl.Name,
				Key:      key,
				Route:    route.Path,
				FullPath: joinPath(prefix, route.Path),
				HasMeta:  route.Load().Meta != nil,
			}
			if prev, ok := seen[node.FullPath]; ok {
				return fmt.Errorf("conflicting routes for %s: %s.%s and %s.%s",
					node.FullPath, prev.Plugin, prev.Key, node.Plugin, node.Key)
			}
			if p.table.has(node.FullPath) {
				return fmt.Errorf("route %s.%s: path %s already mounted", node.Plugin, node.Key, node.FullPath)
			}
			seen[node.FullPath] = node
			pending = append(pending, mounted{plugin: pl, route: route, node: node})
		}
	}

	for _, m := range pending {
		handler := p.buildHandler(m.plugin, m.route, m.node)
		for _, mw := range slices.Backward(p.middlewares) {
			handler = mw(handler, m.node)
		}
		handler = withMountTable(p.table)(handler, m.node)
		router.HandleMethod(http.MethodGet, m.node.FullPath, handler)
		// only routed paths go into the table
		p.table.add(m.node)
	}
	return nil
}

// Routes returns the mounted routes in registration order.
func (p *Pages) Routes() []RouteNode {
	return p.table.all()
}

// WithContext returns ctx carrying the mount table, so [URLFor] works outside
// of a request served by p.
func (p *Pages) WithContext(ctx context.Context) context.Context {
	return tableCtx.WithValue(ctx, p.table)
}

var errNoPage = errors.New("route definition has no page component")

func (p *Pages) buildHandler(pl *Plugin, route Route, node *RouteNode) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		def := route.Load()
		if def.Page == nil {
			p.onError(w, r, fmt.Errorf("%s.%s: %w", node.Plugin, node.Key, errNoPage))
			return
		}
		if pl.Context != nil {
			r = r.WithContext(ssrCtx.WithValue(r.Context(), pl.Context))
		}
		w.Header().Add("Vary", "HX-Request")
		comp := def.Page
		if !isPartial(r) {
			var meta []MetaTag
			if def.Meta != nil {
				meta = def.Meta()
			}
			comp = p.layout(meta, def.Page)
		}
		if err := renderBuffered(r.Context(), w, comp); err != nil {
			p.onError(w, r, fmt.Errorf("render %s.%s: %w", node.Plugin, node.Key, err))
		}
	})
}

func joinPath(prefix, route string) string {
	return path.Join("/", prefix, route)
}

type mountTable struct {
	mu     sync.RWMutex
	nodes  []*RouteNode
	byPath map[string]*RouteNode
	byKey  map[string]*RouteNode
}

func newMountTable() *mountTable {
	return &mountTable{
		byPath: make(map[string]*RouteNode),
		byKey:  make(map[string]*RouteNode),
	}
}

func (t *mountTable) add(n *RouteNode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nodes = append(t.nodes, n)
	t.byPath[n.FullPath] = n
	if _, ok := t.byKey[n.Plugin+"."+n.Key]; !ok {
		t.byKey[n.Plugin+"."+n.Key] = n
	}
}

func (t *mountTable) has(fullPath string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.byPath[fullPath]
	return ok
}

func (t *mountTable) lookup(plugin, key string) (*RouteNode, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.byKey[plugin+"."+key]
	return n, ok
}

func (t *mountTable) all() []RouteNode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]RouteNode, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = *n
	}
	return out
}
