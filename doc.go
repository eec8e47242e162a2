// Package authpages provides the building blocks for declaring page plugins: named
// bundles of routes, each mapping a URL path to a lazily resolved [templ.Component]
// and an optional page-metadata generator, plus a sitemap generator for public pages.
//
// Plugins are mounted onto any [Router] with [Pages.Mount]. The plugins for
// authentication, account and organization pages live in the plugins subpackage.
package authpages
