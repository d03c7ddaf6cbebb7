// Package redact strips sensitive values from strings before they are
// logged. Error messages can carry connection strings, credentials, tokens,
// or email addresses; everything written to the log goes through here first.
package redact

import "regexp"

// Placeholders substituted for matched sensitive values.
const (
	RedactedCredential = "[REDACTED_CREDENTIAL]"
	RedactedToken      = "[REDACTED_TOKEN]"
	RedactedEmail      = "[REDACTED_EMAIL]"
	RedactedHost       = "[REDACTED_HOST]"
)

var (
	// Connection strings with inline credentials, e.g. postgres://user:pw@host.
	connStringRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// password=..., pwd: ... style fragments.
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// Three-part base64url JWTs.
	jwtRegex = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`)

	// Bearer headers and key=value secrets.
	secretRegex = regexp.MustCompile(`(?i)(secret|token|api[_-]?key|bearer)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)

	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	hostPortRegex = regexp.MustCompile(`\b(?:[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?\.)+[A-Za-z]{2,}:\d{1,5}\b`)
)

// String returns s with all recognized sensitive fragments replaced by
// placeholders. Order matters: credentials are stripped before the broader
// email and host patterns run.
func String(s string) string {
	s = connStringRegex.ReplaceAllString(s, RedactedCredential+"@")
	s = passwordRegex.ReplaceAllString(s, "$1$2"+RedactedCredential)
	s = jwtRegex.ReplaceAllString(s, RedactedToken)
	s = secretRegex.ReplaceAllString(s, "$1$2"+RedactedToken)
	s = emailRegex.ReplaceAllString(s, RedactedEmail)
	s = hostPortRegex.ReplaceAllString(s, RedactedHost)
	return s
}

// Error redacts err's message. A nil error yields an empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
