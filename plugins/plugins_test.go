package plugins

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackielii/authpages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{SiteBaseURL: "https://example.com", SiteBasePath: "/app"}

func sortedKeys(p *authpages.Plugin) []string {
	return slices.Sorted(maps.Keys(p.Routes()))
}

func TestRouteKeys(t *testing.T) {
	tests := []struct {
		name   string
		plugin *authpages.Plugin
		want   []string
	}{
		{
			name:   AuthPluginName,
			plugin: Auth(testConfig),
			want: []string{
				AcceptInvitation, Callback, EmailOTP, ForgotPassword, MagicLink,
				RecoverAccount, ResetPassword, SignIn, SignOut, SignUp, TwoFactor,
			},
		},
		{
			name:   AccountPluginName,
			plugin: Account(testConfig),
			want:   []string{AccountAPIKeys, AccountOrganizations, AccountSecurity, AccountSettings},
		},
		{
			name:   OrganizationPluginName,
			plugin: Organization(testConfig),
			want:   []string{OrganizationAPIKeys, OrganizationMembers, OrganizationSettings},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.plugin.Name)
			want := slices.Sorted(slices.Values(tt.want))
			if diff := cmp.Diff(sortedKeys(tt.plugin), want); diff != "" {
				t.Errorf("route keys mismatch (-got +want):\n%s", diff)
			}
		})
	}
	assert.Len(t, Auth(testConfig).Routes(), 11)
	assert.Len(t, Account(testConfig).Routes(), 4)
	assert.Len(t, Organization(testConfig).Routes(), 3)
}

func TestRoutePaths(t *testing.T) {
	want := map[string]string{
		SignIn:               "/auth/sign-in",
		SignUp:               "/auth/sign-up",
		ForgotPassword:       "/auth/forgot-password",
		ResetPassword:        "/auth/reset-password",
		MagicLink:            "/auth/magic-link",
		EmailOTP:             "/auth/email-otp",
		TwoFactor:            "/auth/two-factor",
		RecoverAccount:       "/auth/recover-account",
		Callback:             "/auth/callback",
		SignOut:              "/auth/sign-out",
		AcceptInvitation:     "/auth/accept-invitation",
		AccountSettings:      "/account/settings",
		AccountSecurity:      "/account/security",
		AccountAPIKeys:       "/account/api-keys",
		AccountOrganizations: "/account/organizations",
		OrganizationSettings: "/organization/settings",
		OrganizationMembers:  "/organization/members",
		OrganizationAPIKeys:  "/organization/api-keys",
	}
	got := make(map[string]string)
	for _, p := range All(testConfig) {
		for key, route := range p.Routes() {
			got[key] = route.Path
			assert.NotContains(t, route.Path, "//", key)
			assert.True(t, strings.HasPrefix(route.Path, "/"+p.Name+"/"), key)
		}
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("route paths mismatch (-got +want):\n%s", diff)
	}
}

func TestRouteMeta(t *testing.T) {
	type titles struct{ title, description string }
	want := map[string]*titles{
		SignIn:               {"Sign In", "Sign in to your account"},
		SignUp:               {"Sign Up", "Create a new account"},
		ForgotPassword:       {"Forgot Password", "Reset your password"},
		ResetPassword:        {"Reset Password", "Enter your new password"},
		MagicLink:            {"Magic Link", "Sign in with magic link"},
		EmailOTP:             {"Email Code", "Sign in with email code"},
		TwoFactor:            {"Two-Factor Authentication", "Enter your verification code"},
		RecoverAccount:       {"Recover Account", "Recover your account with a backup code"},
		Callback:             nil,
		SignOut:              nil,
		AcceptInvitation:     nil,
		AccountSettings:      {"Account Settings", "Manage your account settings"},
		AccountSecurity:      {"Security", "Manage your security settings"},
		AccountAPIKeys:       {"API Keys", "Manage your API keys"},
		AccountOrganizations: {"Organizations", "Manage your organizations"},
		OrganizationSettings: {"Organization Settings", "Manage your organization settings"},
		OrganizationMembers:  {"Organization Members", "Manage organization members"},
		OrganizationAPIKeys:  {"Organization API Keys", "Manage organization API keys"},
	}
	for _, p := range All(testConfig) {
		for key, route := range p.Routes() {
			t.Run(p.Name+"/"+key, func(t *testing.T) {
				def := route.Load()
				require.NotNil(t, def.Page)
				w, ok := want[key]
				require.True(t, ok, "unexpected route %s", key)
				if w == nil {
					assert.Nil(t, def.Meta, "route must not carry metadata")
					return
				}
				require.NotNil(t, def.Meta)
				tags := def.Meta()
				require.Len(t, tags, 9)
				assert.Equal(t, w.title, authpages.Title(tags))
				assert.Equal(t, w.description, tags[1].Content)
				assert.Equal(t, testConfig.SiteBaseURL+testConfig.SiteBasePath+route.Path, tags[5].Content)
			})
		}
	}
}

func TestSignInOGURL(t *testing.T) {
	def := Auth(Config{SiteBaseURL: "https://example.com", SiteBasePath: "/app"}).Routes()[SignIn].Load()
	require.NotNil(t, def.Meta)
	var ogURL string
	for _, tag := range def.Meta() {
		if tag.Kind == authpages.MetaProperty && tag.Key == "og:url" {
			ogURL = tag.Content
		}
	}
	assert.Equal(t, "https://example.com/app/auth/sign-in", ogURL)
}

func TestAuthSitemap(t *testing.T) {
	before := time.Now()
	entries, err := Auth(testConfig).Sitemap(context.Background())
	after := time.Now()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	want := []authpages.SitemapEntry{
		{URL: "https://example.com/app/sign-in", Priority: 0.8},
		{URL: "https://example.com/app/sign-up", Priority: 0.8},
		{URL: "https://example.com/app/forgot-password", Priority: 0.5},
	}
	for i, e := range entries {
		assert.Equal(t, want[i].URL, e.URL)
		assert.Equal(t, want[i].Priority, e.Priority)
		assert.False(t, e.LastModified.Before(before), "lastModified before call")
		assert.False(t, e.LastModified.After(after), "lastModified after call")
		assert.GreaterOrEqual(t, e.Priority, 0.0)
		assert.LessOrEqual(t, e.Priority, 1.0)
	}

	again, err := Auth(testConfig).Sitemap(context.Background())
	require.NoError(t, err)
	assert.False(t, again[0].LastModified.Before(entries[0].LastModified))
}

func TestAuthSitemapURLs(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "base path",
			cfg:  Config{SiteBaseURL: "https://example.com", SiteBasePath: "/app"},
			want: []string{"https://example.com/app/sign-in", "https://example.com/app/sign-up", "https://example.com/app/forgot-password"},
		},
		{
			name: "no base path",
			cfg:  Config{SiteBaseURL: "https://example.com"},
			want: []string{"https://example.com/sign-in", "https://example.com/sign-up", "https://example.com/forgot-password"},
		},
		{
			name: "trailing slashes kept",
			cfg:  Config{SiteBaseURL: "https://example.com/", SiteBasePath: "/app/"},
			want: []string{"https://example.com//app//sign-in", "https://example.com//app//sign-up", "https://example.com//app//forgot-password"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Auth(tt.cfg).Sitemap(context.Background())
			require.NoError(t, err)
			var got []string
			for _, e := range entries {
				got = append(got, e.URL)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrivateSitemapsEmpty(t *testing.T) {
	configs := []Config{
		{},
		testConfig,
		{SiteBaseURL: "https://other.example", Context: map[string]any{"tenant": "acme"}},
	}
	for _, cfg := range configs {
		for _, p := range []*authpages.Plugin{Account(cfg), Organization(cfg)} {
			entries, err := p.Sitemap(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, entries, p.Name)
			assert.Empty(t, entries, p.Name)
		}
	}
}

func TestFactoriesAreDeterministic(t *testing.T) {
	for i, pair := range [][2]*authpages.Plugin{
		{Auth(testConfig), Auth(testConfig)},
		{Account(testConfig), Account(testConfig)},
		{Organization(testConfig), Organization(testConfig)},
	} {
		a, b := pair[0], pair[1]
		require.Equal(t, sortedKeys(a), sortedKeys(b), "plugin %d", i)
		ra, rb := a.Routes(), b.Routes()
		for key := range ra {
			da, db := ra[key].Load(), rb[key].Load()
			assert.Equal(t, ra[key].Path, rb[key].Path)
			assert.Equal(t, da.Meta == nil, db.Meta == nil, key)
			if da.Meta != nil {
				if diff := cmp.Diff(da.Meta(), db.Meta()); diff != "" {
					t.Errorf("%s meta mismatch (-a +b):\n%s", key, diff)
				}
			}
		}
	}
}

func TestCustomViewPaths(t *testing.T) {
	vp := DefaultViewPaths()
	vp.Auth.SignIn = "login"
	vp.Account.Settings = "profile"
	cfg := testConfig
	cfg.ViewPaths = &vp

	assert.Equal(t, "/auth/login", Auth(cfg).Routes()[SignIn].Path)
	assert.Equal(t, "/account/profile", Account(cfg).Routes()[AccountSettings].Path)
	entries, err := Auth(cfg).Sitemap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/app/login", entries[0].URL)
}

func TestPageComponents(t *testing.T) {
	tests := []struct {
		plugin *authpages.Plugin
		key    string
		want   string
	}{
		{Auth(testConfig), SignIn, `<main id="auth-view" data-view="sign-in"></main>`},
		{Auth(testConfig), Callback, `<main id="auth-callback" data-view="callback"></main>`},
		{Auth(testConfig), SignOut, `<main id="sign-out" data-view="sign-out"></main>`},
		{Auth(testConfig), AcceptInvitation, `<main id="accept-invitation-card" data-view="accept-invitation"></main>`},
		{Account(testConfig), AccountAPIKeys, `<main id="account-view" data-view="api-keys"></main>`},
		{Organization(testConfig), OrganizationMembers, `<main id="organization-view" data-view="members"></main>`},
	}
	for _, tt := range tests {
		t.Run(tt.plugin.Name+"/"+tt.key, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.plugin.Routes()[tt.key].Load().Page.Render(context.Background(), &buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
