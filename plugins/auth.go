package plugins

import (
	"context"
	"time"

	"github.com/a-h/templ"
	"github.com/jackielii/authpages"
	"github.com/jackielii/authpages/views"
)

const AuthPluginName = "auth"

// Auth route keys.
const (
	SignIn           = "signIn"
	SignUp           = "signUp"
	ForgotPassword   = "forgotPassword"
	ResetPassword    = "resetPassword"
	MagicLink        = "magicLink"
	EmailOTP         = "emailOtp"
	TwoFactor        = "twoFactor"
	RecoverAccount   = "recoverAccount"
	Callback         = "callback"
	SignOut          = "signOut"
	AcceptInvitation = "acceptInvitation"
)

func authPath(view string) string {
	return "/auth/" + view
}

func authView(view string) func() templ.Component {
	return func() templ.Component { return views.AuthView(view) }
}

// Auth returns the plugin for sign-in, sign-up, password recovery, magic
// link, email OTP, two-factor, OAuth callback, sign-out and invitation pages.
// Its sitemap lists sign-in, sign-up and forgot-password directly under the
// site base path, without the /auth segment the pages are mounted under.
func Auth(cfg Config) *authpages.Plugin {
	paths := cfg.viewPaths().Auth
	return authpages.DefinePlugin(authpages.Plugin{
		Name:    AuthPluginName,
		Context: cfg.Context,
		Routes: func() map[string]authpages.Route {
			return map[string]authpages.Route{
				SignIn: pageRoute(cfg, authPath(paths.SignIn),
					"Sign In", "Sign in to your account", authView(paths.SignIn)),
				SignUp: pageRoute(cfg, authPath(paths.SignUp),
					"Sign Up", "Create a new account", authView(paths.SignUp)),
				ForgotPassword: pageRoute(cfg, authPath(paths.ForgotPassword),
					"Forgot Password", "Reset your password", authView(paths.ForgotPassword)),
				ResetPassword: pageRoute(cfg, authPath(paths.ResetPassword),
					"Reset Password", "Enter your new password", authView(paths.ResetPassword)),
				MagicLink: pageRoute(cfg, authPath(paths.MagicLink),
					"Magic Link", "Sign in with magic link", authView(paths.MagicLink)),
				EmailOTP: pageRoute(cfg, authPath(paths.EmailOTP),
					"Email Code", "Sign in with email code", authView(paths.EmailOTP)),
				TwoFactor: pageRoute(cfg, authPath(paths.TwoFactor),
					"Two-Factor Authentication", "Enter your verification code", authView(paths.TwoFactor)),
				RecoverAccount: pageRoute(cfg, authPath(paths.RecoverAccount),
					"Recover Account", "Recover your account with a backup code", authView(paths.RecoverAccount)),
				Callback:         bareRoute(authPath(paths.Callback), views.AuthCallback),
				SignOut:          bareRoute(authPath(paths.SignOut), views.SignOut),
				AcceptInvitation: bareRoute(authPath(paths.AcceptInvitation), views.AcceptInvitationCard),
			}
		},
		Sitemap: func(context.Context) ([]authpages.SitemapEntry, error) {
			now := time.Now()
			return []authpages.SitemapEntry{
				{URL: cfg.siteURL("/"+paths.SignIn), LastModified: now, Priority: 0.8},
				{URL: cfg.siteURL("/"+paths.SignUp), LastModified: now, Priority: 0.8},
				{URL: cfg.siteURL("/"+paths.ForgotPassword), LastModified: now, Priority: 0.5},
			}, nil
		},
	})
}
