// Package redact scrubs sensitive details from strings before they are
// logged or shown on the terminal. It targets what a database-backed CLI
// tends to leak: connection strings with credentials, file system paths,
// SQL fragments and host addresses.
package redact

import (
	"regexp"
)

// Redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; earlier rules see the raw input.
var rules = []rule{
	// userinfo of a connection URL
	{regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|mysql|sqlite|file)://[^@\s/]+@`), RedactedCredentialPlaceholder},
	// key=value DSN credentials
	{regexp.MustCompile(`(?i)\b(?:password|passwd|pwd)\s*[=:]\s*[^\s&'"]+`), RedactedCredentialPlaceholder},
	// two or more path segments, at least one containing a letter
	{
		regexp.MustCompile(`(?:/[\w.-]+)+/[\w.-]*[A-Za-z][\w.-]*(?:/[\w.-]+)*|/[\w.-]*[A-Za-z][\w.-]*(?:/[\w.-]+)+`),
		RedactedPathPlaceholder,
	},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`), RedactedPathPlaceholder},
	// bare database file names
	{regexp.MustCompile(`\b[\w-]+\.(?:db|sqlite3?)\b`), RedactedPathPlaceholder},
	{
		regexp.MustCompile(
			`(?i)\b(?:SELECT|INSERT|UPDATE|DELETE|TRUNCATE|CREATE|ALTER|DROP)[\s\w,*()]+(?:FROM|INTO|SET|TABLE)(?:[\s\w,*()='"]+)?`,
		),
		RedactedSQLPlaceholder,
	},
	{
		regexp.MustCompile(`\b(?:localhost|(?:\d{1,3}\.){3}\d{1,3}|(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}):\d{1,5}\b`),
		RedactedHostPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
