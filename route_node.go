package authpages

import (
	"fmt"
	"strings"
)

// RouteNode describes a mounted route. It is passed to middlewares and
// returned by [Pages.Routes].
type RouteNode struct {
	Plugin   string
	Key      string
	Route    string // path as declared by the plugin
	FullPath string // path registered on the router
	HasMeta  bool
}

func (n RouteNode) String() string {
	var sb strings.Builder
	sb.WriteString("RouteNode{")
	sb.WriteString("\n  plugin: " + n.Plugin)
	sb.WriteString("\n  key: " + n.Key)
	sb.WriteString("\n  route: " + n.Route)
	sb.WriteString("\n  full path: " + n.FullPath)
	fmt.Fprintf(&sb, "\n  meta: %t", n.HasMeta)
	sb.WriteString("\n}")
	return sb.String()
}
