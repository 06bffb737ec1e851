// Package logging provides structured logging utilities for k8sobjects.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Host/URL sanitization for security
//   - Credential masking
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "list")
//	logger.Debug("listing resources",
//	    logging.Namespace("default"),
//	    logging.ResourceType("StatefulSet"))
//
// # Security Considerations
//
//   - API server URLs have IP addresses redacted to prevent topology leakage
//   - Credentials and tokens are never logged directly
package logging
