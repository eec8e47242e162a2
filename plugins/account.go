package plugins

import (
	"github.com/a-h/templ"
	"github.com/jackielii/authpages"
	"github.com/jackielii/authpages/views"
)

const AccountPluginName = "account"

// Account route keys.
const (
	AccountSettings      = "accountSettings"
	AccountSecurity      = "accountSecurity"
	AccountAPIKeys       = "accountApiKeys"
	AccountOrganizations = "accountOrganizations"
)

func accountPath(view string) string {
	return "/account/" + view
}

func accountView(view string) func() templ.Component {
	return func() templ.Component { return views.AccountView(view) }
}

// Account returns the plugin for the account settings pages. None of them
// are public, so its sitemap is empty.
func Account(cfg Config) *authpages.Plugin {
	paths := cfg.viewPaths().Account
	return authpages.DefinePlugin(authpages.Plugin{
		Name:    AccountPluginName,
		Context: cfg.Context,
		Routes: func() map[string]authpages.Route {
			return map[string]authpages.Route{
				AccountSettings: pageRoute(cfg, accountPath(paths.Settings),
					"Account Settings", "Manage your account settings", accountView(paths.Settings)),
				AccountSecurity: pageRoute(cfg, accountPath(paths.Security),
					"Security", "Manage your security settings", accountView(paths.Security)),
				AccountAPIKeys: pageRoute(cfg, accountPath(paths.APIKeys),
					"API Keys", "Manage your API keys", accountView(paths.APIKeys)),
				AccountOrganizations: pageRoute(cfg, accountPath(paths.Organizations),
					"Organizations", "Manage your organizations", accountView(paths.Organizations)),
			}
		},
	})
}
