// Package logging provides structured logging helpers for mailgate.
//
// It centralizes attribute naming on top of the standard library's slog
// package so every layer (tool handlers, audit logger, servers) emits the
// same keys, and it keeps PII out of log output.
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "search_emails")
//	logger.Info("search finished",
//	    logging.Status(logging.StatusSuccess))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("profile loaded",
//	    logging.UserHash(profile.EmailAddress))
//
// Account email addresses are hashed (sha256 prefix) so entries can be
// correlated without exposing the address itself.
package logging
