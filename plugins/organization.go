package plugins

import (
	"github.com/a-h/templ"
	"github.com/jackielii/authpages"
	"github.com/jackielii/authpages/views"
)

const OrganizationPluginName = "organization"

// Organization route keys.
const (
	OrganizationSettings = "organizationSettings"
	OrganizationMembers  = "organizationMembers"
	OrganizationAPIKeys  = "organizationApiKeys"
)

func organizationPath(view string) string {
	return "/organization/" + view
}

func organizationView(view string) func() templ.Component {
	return func() templ.Component { return views.OrganizationView(view) }
}

// Organization returns the plugin for the organization management pages. Its
// sitemap is empty.
func Organization(cfg Config) *authpages.Plugin {
	paths := cfg.viewPaths().Organization
	return authpages.DefinePlugin(authpages.Plugin{
		Name:    OrganizationPluginName,
		Context: cfg.Context,
		Routes: func() map[string]authpages.Route {
			return map[string]authpages.Route{
				OrganizationSettings: pageRoute(cfg, organizationPath(paths.Settings),
					"Organization Settings", "Manage your organization settings", organizationView(paths.Settings)),
				OrganizationMembers: pageRoute(cfg, organizationPath(paths.Members),
					"Organization Members", "Manage organization members", organizationView(paths.Members)),
				OrganizationAPIKeys: pageRoute(cfg, organizationPath(paths.APIKeys),
					"Organization API Keys", "Manage organization API keys", organizationView(paths.APIKeys)),
			}
		},
	})
}
