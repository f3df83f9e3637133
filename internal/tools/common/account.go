package common

// GetAccountFromArgs extracts the account name from request arguments.
// Falls back to "default" when the request names no account, so every tool
// works out of the box on a single-account setup.
func GetAccountFromArgs(args map[string]interface{}) string {
	if account, ok := args["account"].(string); ok && account != "" {
		return account
	}
	return "default"
}
