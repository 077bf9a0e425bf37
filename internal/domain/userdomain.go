package domain

import "time"

// UserDomainState enumerates the verification states of a sending domain.
type UserDomainState string

const (
	UserDomainVerified   UserDomainState = "verified"
	UserDomainUnverified UserDomainState = "unverified"
	UserDomainIncorrect  UserDomainState = "incorrect"
	UserDomainDisabled   UserDomainState = "disabled"
)

// UserDomainStateFromString normalizes a wire value to a known state.
// Unrecognized values fall back to disabled.
func UserDomainStateFromString(s string) UserDomainState {
	switch UserDomainState(s) {
	case UserDomainVerified, UserDomainUnverified, UserDomainIncorrect, UserDomainDisabled:
		return UserDomainState(s)
	default:
		return UserDomainDisabled
	}
}

// CNAMERecord is a single DNS CNAME the user must publish.
type CNAMERecord struct {
	Hostname string
	PointTo  string
}

// DNSSettings holds the records required to verify domain ownership
// and authenticate mail sent from the domain.
type DNSSettings struct {
	DKIMDomain           string
	OwnerValidationToken string
	DKIM                 CNAMERecord
	SPF                  CNAMERecord
	Tracking             CNAMERecord
}

// UserDomain is the sending-domain verification aggregate. The verify
// operation re-validates server-side and returns updated flags.
type UserDomain struct {
	UUID       string
	DomainName string
	State      UserDomainState
	CreatedAt  time.Time
	UpdatedAt  time.Time

	SPFValid   bool
	DKIMValid  bool
	OwnerValid bool
	FBLValid   bool

	DNS DNSSettings
}

// FullyValid reports whether every DNS check passed.
func (d UserDomain) FullyValid() bool {
	return d.SPFValid && d.DKIMValid && d.OwnerValid && d.FBLValid
}
