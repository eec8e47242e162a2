package authpages

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// PrintRoutes returns a human readable table of the plugins' routes.
func PrintRoutes(plugins ...*Plugin) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	for _, pl := range plugins {
		fmt.Fprintf(tw, "%s\n", pl.Name)
		routes := pl.Routes()
		for _, key := range pl.RouteKeys() {
			route := routes[key]
			meta := "-"
			if route.Load().Meta != nil {
				meta = "meta"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", key, route.Path, meta)
		}
	}
	_ = tw.Flush()
	return sb.String()
}
