// Package google loads stored Google OAuth2 tokens and turns them into
// authenticated HTTP clients for the Gmail API.
//
// Tokens live in per-account files under the user cache directory
// (google-<account>.token, a single "<access> <refresh>" line). The package
// never runs an authorization flow itself; tokens are provisioned externally
// and refreshed transparently through golang.org/x/oauth2 using client
// credentials from the environment.
package google
