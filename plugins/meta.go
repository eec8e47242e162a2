package plugins

import (
	"github.com/a-h/templ"
	"github.com/jackielii/authpages"
)

// Meta returns a generator for the page's title, description, Open Graph and
// Twitter Card tags. og:url is cfg.SiteBaseURL + cfg.SiteBasePath + path.
// Strings are used verbatim; escaping happens when the tags are rendered.
func Meta(cfg Config, path, title, description string) func() []authpages.MetaTag {
	return func() []authpages.MetaTag {
		return []authpages.MetaTag{
			{Kind: authpages.MetaName, Key: "title", Content: title},
			{Kind: authpages.MetaName, Key: "description", Content: description},
			{Kind: authpages.MetaProperty, Key: "og:title", Content: title},
			{Kind: authpages.MetaProperty, Key: "og:description", Content: description},
			{Kind: authpages.MetaProperty, Key: "og:type", Content: "website"},
			{Kind: authpages.MetaProperty, Key: "og:url", Content: cfg.siteURL(path)},
			{Kind: authpages.MetaName, Key: "twitter:card", Content: "summary"},
			{Kind: authpages.MetaName, Key: "twitter:title", Content: title},
			{Kind: authpages.MetaName, Key: "twitter:description", Content: description},
		}
	}
}

// pageRoute is a route with metadata.
func pageRoute(cfg Config, path, title, description string, component func() templ.Component) authpages.Route {
	return authpages.NewRoute(path, func() authpages.RouteDefinition {
		return authpages.RouteDefinition{
			Page: authpages.Lazy(component),
			Meta: Meta(cfg, path, title, description),
		}
	})
}

// bareRoute is a route without metadata, for pages search engines never see.
func bareRoute(path string, component func() templ.Component) authpages.Route {
	return authpages.NewRoute(path, func() authpages.RouteDefinition {
		return authpages.RouteDefinition{Page: authpages.Lazy(component)}
	})
}
