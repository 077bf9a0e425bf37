package domain

import "time"

// SMTPSettings holds the SMTP endpoint assigned to the account.
type SMTPSettings struct {
	Host  string
	Port  int
	Login string
}

// User is the identity/profile aggregate. It is created on successful
// login or registration, replaced wholesale on profile refresh, and
// cleared on logout. At most one current user exists at a time.
type User struct {
	UUID      string
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time

	// Optional billing address fields. Empty when not set.
	Address    string
	City       string
	PostalCode string
	Country    string

	// RateLimit is the per-hour sending limit, nil when the account
	// has no limit configured.
	RateLimit *int

	SMTP SMTPSettings

	// PermissionObjectCodes is the set of capability strings granted
	// to the account.
	PermissionObjectCodes []string
}

// FullName returns the display name for the user.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// HasPermission reports whether the user holds the given capability code.
func (u User) HasPermission(code string) bool {
	for _, c := range u.PermissionObjectCodes {
		if c == code {
			return true
		}
	}
	return false
}
