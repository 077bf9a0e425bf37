package domain

import "testing"

func TestTokenStateFromString(t *testing.T) {
	tests := []struct {
		in   string
		want TokenState
	}{
		{"active", TokenStateActive},
		{"inactive", TokenStateInactive},
		{"expired", TokenStateExpired},
		{"suspended", TokenStateSuspended},
		{"", TokenStateInactive},
		{"ACTIVE", TokenStateInactive},
		{"deleted", TokenStateInactive},
	}
	for _, tt := range tests {
		if got := TokenStateFromString(tt.in); got != tt.want {
			t.Errorf("TokenStateFromString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSuppressionTypeFromString(t *testing.T) {
	tests := []struct {
		in   string
		want SuppressionType
	}{
		{"complaint", SuppressionComplaint},
		{"unsubscribe", SuppressionUnsubscribe},
		{"hard_bounce", SuppressionHardBounce},
		{"", SuppressionHardBounce},
		{"soft_bounce", SuppressionHardBounce},
	}
	for _, tt := range tests {
		if got := SuppressionTypeFromString(tt.in); got != tt.want {
			t.Errorf("SuppressionTypeFromString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUserDomainStateFromString(t *testing.T) {
	tests := []struct {
		in   string
		want UserDomainState
	}{
		{"verified", UserDomainVerified},
		{"unverified", UserDomainUnverified},
		{"incorrect", UserDomainIncorrect},
		{"disabled", UserDomainDisabled},
		{"", UserDomainDisabled},
		{"pending", UserDomainDisabled},
	}
	for _, tt := range tests {
		if got := UserDomainStateFromString(tt.in); got != tt.want {
			t.Errorf("UserDomainStateFromString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUserFullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Ada", "Lovelace", "Ada Lovelace"},
		{"Ada", "", "Ada"},
		{"", "Lovelace", "Lovelace"},
		{"", "", ""},
	}
	for _, tt := range tests {
		u := User{FirstName: tt.first, LastName: tt.last}
		if got := u.FullName(); got != tt.want {
			t.Errorf("FullName(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestUserHasPermission(t *testing.T) {
	u := User{PermissionObjectCodes: []string{"token.manage", "domain.manage"}}

	if !u.HasPermission("token.manage") {
		t.Error("expected token.manage to be granted")
	}
	if u.HasPermission("billing.manage") {
		t.Error("expected billing.manage to be denied")
	}
	if (User{}).HasPermission("token.manage") {
		t.Error("expected no permissions on empty user")
	}
}

func TestPageHasMore(t *testing.T) {
	tests := []struct {
		page Page
		want bool
	}{
		{Page{Page: 1, PerPage: 10, ItemsOnCurrentPage: 10, TotalItems: 25}, true},
		{Page{Page: 3, PerPage: 10, ItemsOnCurrentPage: 5, TotalItems: 25}, false},
		{Page{Page: 1, PerPage: 10, ItemsOnCurrentPage: 3, TotalItems: 3}, false},
		{Page{}, false},
	}
	for _, tt := range tests {
		if got := tt.page.HasMore(); got != tt.want {
			t.Errorf("HasMore(%+v) = %v, want %v", tt.page, got, tt.want)
		}
	}
}

func TestTokenIsUsable(t *testing.T) {
	if !(Token{State: TokenStateActive}).IsUsable() {
		t.Error("active token should be usable")
	}
	for _, state := range []TokenState{TokenStateInactive, TokenStateExpired, TokenStateSuspended} {
		if (Token{State: state}).IsUsable() {
			t.Errorf("%s token should not be usable", state)
		}
	}
}

func TestUserDomainFullyValid(t *testing.T) {
	d := UserDomain{SPFValid: true, DKIMValid: true, OwnerValid: true, FBLValid: true}
	if !d.FullyValid() {
		t.Error("expected fully valid domain")
	}
	d.FBLValid = false
	if d.FullyValid() {
		t.Error("expected FBL failure to invalidate the domain")
	}
}
