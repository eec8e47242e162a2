// Package views holds the page components mounted by the auth, account and
// organization plugins. They render a bare shell that client-side code or a
// host application fills in; each shell carries the view it was mounted for
// in a data-view attribute.
package views

import (
	"bytes"
	"context"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/jackielii/authpages"
)

type link struct {
	plugin, key, label string
}

var authLinks = []link{
	{"auth", "signIn", "Sign in"},
	{"auth", "signUp", "Sign up"},
	{"auth", "forgotPassword", "Forgot password"},
}

var accountLinks = []link{
	{"account", "accountSettings", "Settings"},
	{"account", "accountSecurity", "Security"},
	{"account", "accountApiKeys", "API Keys"},
	{"account", "accountOrganizations", "Organizations"},
}

var organizationLinks = []link{
	{"organization", "organizationSettings", "Settings"},
	{"organization", "organizationMembers", "Members"},
	{"organization", "organizationApiKeys", "API Keys"},
}

// AuthView is the shared page for every credential flow (sign-in, sign-up,
// magic link, OTP, ...). view is the flow's path segment.
func AuthView(view string) templ.Component {
	return shell("auth-view", view, authLinks)
}

// AccountView is the account management page. view is the tab's path segment.
func AccountView(view string) templ.Component {
	return shell("account-view", view, accountLinks)
}

// OrganizationView is the organization management page.
func OrganizationView(view string) templ.Component {
	return shell("organization-view", view, organizationLinks)
}

// AuthCallback is the landing page for OAuth redirects.
func AuthCallback() templ.Component {
	return shell("auth-callback", "callback", nil)
}

// SignOut is rendered while the session is being cleared.
func SignOut() templ.Component {
	return shell("sign-out", "sign-out", nil)
}

// AcceptInvitationCard lets a user accept an organization invitation.
func AcceptInvitationCard() templ.Component {
	return shell("accept-invitation-card", "accept-invitation", nil)
}

func shell(id, view string, links []link) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<main id="` + templ.EscapeString(id) + `" data-view="` + templ.EscapeString(view) + `">`)
		if err := nav(links).Render(ctx, &buf); err != nil {
			return err
		}
		if err := ssrKeys().Render(ctx, &buf); err != nil {
			return err
		}
		buf.WriteString(`</main>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// nav renders the links whose routes are mounted; unmounted ones are skipped.
// Nothing is written when none are mounted.
func nav(links []link) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		for _, l := range links {
			href, err := authpages.URLFor(ctx, l.plugin, l.key)
			if err != nil {
				continue
			}
			buf.WriteString(`<a href="` + templ.EscapeString(href) + `">` + templ.EscapeString(l.label) + `</a>`)
		}
		if buf.Len() == 0 {
			return nil
		}
		_, err := io.WriteString(w, `<nav>`+buf.String()+`</nav>`)
		return err
	})
}

// ssrKeys exposes the names of the SSR context entries; values stay on the server.
func ssrKeys() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		state := authpages.SSRContext(ctx)
		if len(state) == 0 {
			return nil
		}
		keys := strings.Join(slices.Sorted(maps.Keys(state)), " ")
		_, err := io.WriteString(w, `<div hidden data-ssr-keys="`+templ.EscapeString(keys)+`"></div>`)
		return err
	})
}
