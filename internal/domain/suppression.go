package domain

import "time"

// SuppressionType enumerates why a recipient was suppressed.
type SuppressionType string

const (
	SuppressionComplaint   SuppressionType = "complaint"
	SuppressionUnsubscribe SuppressionType = "unsubscribe"
	SuppressionHardBounce  SuppressionType = "hard_bounce"
)

// SuppressionTypeFromString normalizes a wire value to a known type.
// Unrecognized values fall back to hard_bounce.
func SuppressionTypeFromString(s string) SuppressionType {
	switch SuppressionType(s) {
	case SuppressionComplaint, SuppressionUnsubscribe, SuppressionHardBounce:
		return SuppressionType(s)
	default:
		return SuppressionHardBounce
	}
}

// AllDomains is the domain wildcard used when a suppression applies to
// every sending domain on the account.
const AllDomains = "*"

// Suppression is a read-only record of a suppressed recipient.
type Suppression struct {
	ID         int64
	Email      string
	Type       SuppressionType
	DomainName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
