// Package plugins provides the auth, account and organization page plugins.
//
// Each factory is a pure function of its [Config]:
//
//	cfg := plugins.Config{SiteBaseURL: "https://example.com", SiteBasePath: "/app"}
//	pages := authpages.New()
//	err := pages.Mount(router, cfg.SiteBasePath,
//	    plugins.Auth(cfg), plugins.Account(cfg), plugins.Organization(cfg))
package plugins

// Config is shared by all plugin factories. It is read, never modified.
type Config struct {
	SiteBaseURL  string
	SiteBasePath string
	// Context is handed to page components, see authpages.SSRContext.
	Context map[string]any
	// ViewPaths overrides the path segments of the pages. Nil means
	// DefaultViewPaths.
	ViewPaths *ViewPaths
}

func (c Config) viewPaths() ViewPaths {
	if c.ViewPaths != nil {
		return *c.ViewPaths
	}
	return DefaultViewPaths()
}

// siteURL joins the site base with path. No separators are added or removed.
func (c Config) siteURL(path string) string {
	return c.SiteBaseURL + c.SiteBasePath + path
}
