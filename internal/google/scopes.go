package google

import (
	gmail "google.golang.org/api/gmail/v1"
)

// DefaultOAuthScopes are the Google OAuth scopes stored tokens are expected
// to carry. Full Gmail access covers search, read, label modification,
// drafting and sending; the OpenID Connect scopes identify the user.
var DefaultOAuthScopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	// Full Gmail access (includes send)
	gmail.MailGoogleComScope,
}
