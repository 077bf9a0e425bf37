package logger

import "testing"

func TestRedactEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"john.doe@example.com", "jo***@example.com"},
		{"ab@example.com", "***@example.com"},
		{"a@example.com", "***@example.com"},
		{"not-an-email", "***@***"},
		{"", "***@***"},
	}
	for _, tt := range tests {
		if got := RedactEmail(tt.in); got != tt.want {
			t.Errorf("RedactEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DEBUG},
		{"info", INFO},
		{"warn", WARN},
		{"warning", WARN},
		{"error", ERROR},
		{"ERROR", ERROR},
		{"", INFO},
		{"verbose", INFO},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRedactValue(t *testing.T) {
	if got := redactValue("cookie", "sid=abc123"); got != "[redacted]" {
		t.Errorf("cookie value leaked: %q", got)
	}
	if got := redactValue("token", "tok-1"); got != "[redacted]" {
		t.Errorf("token value leaked: %q", got)
	}
	if got := redactValue("email", "john.doe@example.com"); got != "jo***@example.com" {
		t.Errorf("email not redacted: %q", got)
	}
	if got := redactValue("msg", "wrote to john.doe@example.com today"); got != "wrote to jo***@example.com today" {
		t.Errorf("embedded email not redacted: %q", got)
	}
}
