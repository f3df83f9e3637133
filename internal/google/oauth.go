package google

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// accountNamePattern restricts account names to characters that are safe in
// a token filename.
var accountNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// validateAccountName checks that an account name can be used to derive a
// token file path
func validateAccountName(account string) error {
	if account == "" {
		return fmt.Errorf("account name cannot be empty")
	}
	if !accountNamePattern.MatchString(account) {
		return fmt.Errorf("account name %q may only contain letters, digits, hyphens and underscores", account)
	}
	return nil
}

// cacheDir returns the directory where token files are stored
func cacheDir() string {
	return filepath.Join(userCacheDir(), "mailgate")
}

// getTokenFilePath returns the token file path for an account.
// MAILGATE_TOKEN_FILE overrides the path for the default account; named
// accounts always use the per-account file under the cache directory.
func getTokenFilePath(account string) string {
	if account == "default" {
		if override := os.Getenv("MAILGATE_TOKEN_FILE"); override != "" {
			return override
		}
	}
	return filepath.Join(cacheDir(), "google-"+account+".token")
}

// HasTokenForAccount checks if a stored OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	if err := validateAccountName(account); err != nil {
		return false
	}
	if account == "default" {
		// Pick up token files stored under the legacy single-account name.
		_ = MigrateDefaultToken()
	}
	_, err := os.ReadFile(getTokenFilePath(account))
	return err == nil
}

// HasToken checks if a stored OAuth token exists for the default account
func HasToken() bool {
	return HasTokenForAccount("default")
}

// MigrateDefaultToken moves a legacy single-account token file to the
// per-account naming scheme. It is a no-op when there is nothing to migrate
// or the new file already exists.
func MigrateDefaultToken() error {
	oldFile := filepath.Join(cacheDir(), "google.token")
	newFile := filepath.Join(cacheDir(), "google-default.token")

	if _, err := os.Stat(oldFile); os.IsNotExist(err) {
		return nil
	}
	if _, err := os.Stat(newFile); err == nil {
		return nil
	}

	if err := os.Rename(oldFile, newFile); err != nil {
		return fmt.Errorf("failed to migrate token file: %w", err)
	}
	return nil
}

// GetAuthenticationErrorMessage explains how to provision credentials for an
// account. mailgate does not run an OAuth authorization flow itself.
func GetAuthenticationErrorMessage(account string) string {
	return fmt.Sprintf(
		"no Google OAuth token found for account %q. Obtain an OAuth access and refresh token for this account and write them to %s as a single line: \"<access-token> <refresh-token>\". Set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET so stored tokens can be refreshed.",
		account, getTokenFilePath(account))
}

// oauthConfig returns the OAuth2 configuration used to refresh stored tokens.
// Client credentials come from the environment; no secrets are compiled in.
func oauthConfig() (*oauth2.Config, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set to refresh stored tokens")
	}

	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       DefaultOAuthScopes,
	}, nil
}

// GetTokenSourceForAccount returns an OAuth2 token source backed by the
// stored token for the specified account
func GetTokenSourceForAccount(ctx context.Context, account string) (oauth2.TokenSource, error) {
	if err := validateAccountName(account); err != nil {
		return nil, err
	}
	if account == "default" {
		// Pick up token files stored under the legacy single-account name.
		_ = MigrateDefaultToken()
	}

	tokenFile := getTokenFilePath(account)
	slurp, err := os.ReadFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s", account)
	}

	f := strings.Fields(strings.TrimSpace(string(slurp)))
	if len(f) != 2 {
		return nil, fmt.Errorf("invalid token format in %s", tokenFile)
	}

	conf, err := oauthConfig()
	if err != nil {
		return nil, err
	}

	// Expiry in the past forces an immediate refresh on first use.
	ts := conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  f[0],
		TokenType:    "Bearer",
		RefreshToken: f[1],
		Expiry:       time.Unix(1, 0),
	})

	if _, err := ts.Token(); err != nil {
		return nil, fmt.Errorf("cached token for account %s is invalid: %w", account, err)
	}

	return ts, nil
}

// GetTokenSource returns an OAuth2 token source for the default account
func GetTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	return GetTokenSourceForAccount(ctx, "default")
}

// GetHTTPClientForAccount returns an HTTP client configured with OAuth2
// authentication for the specified account. The client is configured to use
// HTTP/1.1 to avoid HTTP/2 protocol errors
func GetHTTPClientForAccount(ctx context.Context, account string) (*http.Client, error) {
	ts, err := GetTokenSourceForAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	return client, nil
}

// GetHTTPClient returns an authenticated HTTP client for the default account
func GetHTTPClient(ctx context.Context) (*http.Client, error) {
	return GetHTTPClientForAccount(ctx, "default")
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
		panic("No Windows TEMP or TMP environment variables found")
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
