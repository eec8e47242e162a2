package authpages

import (
	"context"
	"io"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/a-h/templ"
)

// MetaKind is the attribute a meta tag is keyed by.
type MetaKind string

const (
	MetaName     MetaKind = "name"
	MetaProperty MetaKind = "property"
)

// MetaTag is a single SEO or social meta tag, rendered as
// <meta {Kind}="{Key}" content="{Content}">.
type MetaTag struct {
	Kind    MetaKind
	Key     string
	Content string
}

// RouteDefinition is what a route's loader returns. Meta is nil for pages
// that carry no metadata.
type RouteDefinition struct {
	Page templ.Component
	Meta func() []MetaTag
}

// Route maps a URL path to a loader. Load is called on every request and
// must not have side effects beyond building the definition.
type Route struct {
	Path string
	Load func() RouteDefinition
}

// NewRoute creates a route for path.
func NewRoute(path string, load func() RouteDefinition) Route {
	return Route{Path: path, Load: load}
}

// SitemapEntry is a publicly indexable URL.
type SitemapEntry struct {
	URL          string
	LastModified time.Time
	Priority     float64
}

// Plugin is a named bundle of routes and a sitemap generator.
type Plugin struct {
	Name    string
	Routes  func() map[string]Route
	Sitemap func(context.Context) ([]SitemapEntry, error)
	// Context is made available to page components through [SSRContext].
	Context map[string]any
}

// DefinePlugin returns a copy of p ready to be mounted. A nil Routes or
// Sitemap is replaced with one returning an empty result.
func DefinePlugin(p Plugin) *Plugin {
	if p.Routes == nil {
		p.Routes = func() map[string]Route { return map[string]Route{} }
	}
	if p.Sitemap == nil {
		p.Sitemap = func(context.Context) ([]SitemapEntry, error) { return []SitemapEntry{}, nil }
	}
	return &p
}

// RouteKeys returns the plugin's route keys in sorted order.
func (p *Plugin) RouteKeys() []string {
	return slices.Sorted(maps.Keys(p.Routes()))
}

// Lazy returns a component that calls resolve the first time it is rendered
// and reuses the result afterwards.
func Lazy(resolve func() templ.Component) templ.Component {
	get := sync.OnceValue(resolve)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return get().Render(ctx, w)
	})
}
