package plugins

import "github.com/jackielii/authpages"

// All returns the auth, account and organization plugins for cfg, in that order.
func All(cfg Config) []*authpages.Plugin {
	return []*authpages.Plugin{
		Auth(cfg),
		Account(cfg),
		Organization(cfg),
	}
}
