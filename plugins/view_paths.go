package plugins

// AuthViewPaths are the path segments of the auth pages.
type AuthViewPaths struct {
	SignIn           string `yaml:"sign_in"`
	SignUp           string `yaml:"sign_up"`
	ForgotPassword   string `yaml:"forgot_password"`
	ResetPassword    string `yaml:"reset_password"`
	MagicLink        string `yaml:"magic_link"`
	EmailOTP         string `yaml:"email_otp"`
	TwoFactor        string `yaml:"two_factor"`
	RecoverAccount   string `yaml:"recover_account"`
	Callback         string `yaml:"callback"`
	SignOut          string `yaml:"sign_out"`
	AcceptInvitation string `yaml:"accept_invitation"`
}

// AccountViewPaths are the path segments of the account pages.
type AccountViewPaths struct {
	Settings      string `yaml:"settings"`
	Security      string `yaml:"security"`
	APIKeys       string `yaml:"api_keys"`
	Organizations string `yaml:"organizations"`
}

// OrganizationViewPaths are the path segments of the organization pages.
type OrganizationViewPaths struct {
	Settings string `yaml:"settings"`
	Members  string `yaml:"members"`
	APIKeys  string `yaml:"api_keys"`
}

type ViewPaths struct {
	Auth         AuthViewPaths         `yaml:"auth"`
	Account      AccountViewPaths      `yaml:"account"`
	Organization OrganizationViewPaths `yaml:"organization"`
}

// DefaultViewPaths returns the standard path segments.
func DefaultViewPaths() ViewPaths {
	return ViewPaths{
		Auth: AuthViewPaths{
			SignIn:           "sign-in",
			SignUp:           "sign-up",
			ForgotPassword:   "forgot-password",
			ResetPassword:    "reset-password",
			MagicLink:        "magic-link",
			EmailOTP:         "email-otp",
			TwoFactor:        "two-factor",
			RecoverAccount:   "recover-account",
			Callback:         "callback",
			SignOut:          "sign-out",
			AcceptInvitation: "accept-invitation",
		},
		Account: AccountViewPaths{
			Settings:      "settings",
			Security:      "security",
			APIKeys:       "api-keys",
			Organizations: "organizations",
		},
		Organization: OrganizationViewPaths{
			Settings: "settings",
			Members:  "members",
			APIKeys:  "api-keys",
		},
	}
}
