package logger

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// RedactEmail masks the local part of an address for safe logging:
// "john.doe@example.com" becomes "jo***@example.com". Local parts of
// two characters or fewer are masked entirely, and values that are not
// an address at all collapse to "***@***".
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}
	name := parts[0]
	if len(name) > 2 {
		return name[:2] + "***@" + parts[1]
	}
	return "***@" + parts[1]
}

// redactValue applies per-field redaction keyed on the field name.
// Credential fields (cookie, token, password) are never logged, not
// even partially. Email fields are masked, and addresses embedded in
// free-form values are masked in place.
func redactValue(key, val string) string {
	lower := strings.ToLower(key)
	if strings.Contains(lower, "cookie") || strings.Contains(lower, "token") || strings.Contains(lower, "password") {
		return "[redacted]"
	}
	if strings.Contains(lower, "email") || strings.Contains(lower, "recipient") {
		return RedactEmail(val)
	}
	return emailRegex.ReplaceAllStringFunc(val, RedactEmail)
}
