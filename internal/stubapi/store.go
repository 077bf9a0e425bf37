package stubapi

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// stubUser is an account record with fields the user payload exposes
// plus the credentials the auth routes check.
type stubUser struct {
	UUID       string
	Email      string
	Password   string
	FirstName  string
	LastName   string
	CreatedAt  time.Time
	Activated  bool
	ResetToken string
	SMTPHost   string
	SMTPPort   int
	SMTPLogin  string
	Perms      []string
}

type stubToken struct {
	Name      string
	Value     string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type stubSuppression struct {
	ID         int64
	Email      string
	Type       string
	DomainName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type stubDomain struct {
	UUID       string
	Name       string
	State      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	SPFValid   bool
	DKIMValid  bool
	OwnerValid bool
	FBLValid   bool
}

// memoryStore holds all fixture state behind one lock. The stub serves
// a single tenant, so per-collection locking would buy nothing.
type memoryStore struct {
	mu           sync.Mutex
	users        map[string]*stubUser // keyed by lowercase email
	sessions     map[string]string    // session id -> user uuid
	tokens       []*stubToken
	suppressions []*stubSuppression
	domains      []*stubDomain
}

func newMemoryStore() *memoryStore {
	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	s := &memoryStore{
		users:    make(map[string]*stubUser),
		sessions: make(map[string]string),
	}
	s.users["demo@example.com"] = &stubUser{
		UUID:       uuid.NewString(),
		Email:      "demo@example.com",
		Password:   "password123",
		FirstName:  "Demo",
		LastName:   "Sender",
		CreatedAt:  now.AddDate(-1, 0, 0),
		Activated:  true,
		ResetToken: "reset-demo-1",
		SMTPHost:   "smtp.example.com",
		SMTPPort:   587,
		SMTPLogin:  "demo@example.com",
		Perms:      []string{"token.manage", "domain.manage", "suppression.read"},
	}
	s.users["pending@example.com"] = &stubUser{
		UUID:      uuid.NewString(),
		Email:     "pending@example.com",
		Password:  "password123",
		FirstName: "Pending",
		LastName:  "Signup",
		CreatedAt: now,
		Activated: false,
	}
	s.tokens = []*stubToken{
		{Name: "production", Value: uuid.NewString(), State: "active", CreatedAt: now.AddDate(0, -6, 0), UpdatedAt: now.AddDate(0, -1, 0)},
		{Name: "staging", Value: uuid.NewString(), State: "inactive", CreatedAt: now.AddDate(0, -3, 0), UpdatedAt: now},
	}
	s.suppressions = []*stubSuppression{
		{ID: 101, Email: "bounce@remote.test", Type: "hard_bounce", DomainName: "mail.example.com", CreatedAt: now.AddDate(0, 0, -20), UpdatedAt: now.AddDate(0, 0, -20)},
		{ID: 102, Email: "complainer@remote.test", Type: "complaint", DomainName: "", CreatedAt: now.AddDate(0, 0, -10), UpdatedAt: now.AddDate(0, 0, -10)},
		{ID: 103, Email: "gone@remote.test", Type: "unsubscribe", DomainName: "mail.example.com", CreatedAt: now.AddDate(0, 0, -2), UpdatedAt: now.AddDate(0, 0, -1)},
	}
	s.domains = []*stubDomain{
		{
			UUID: uuid.NewString(), Name: "mail.example.com", State: "verified",
			CreatedAt: now.AddDate(0, -8, 0), UpdatedAt: now.AddDate(0, -1, 0),
			SPFValid: true, DKIMValid: true, OwnerValid: true, FBLValid: true,
		},
		{
			UUID: uuid.NewString(), Name: "news.example.com", State: "unverified",
			CreatedAt: now.AddDate(0, 0, -5), UpdatedAt: now.AddDate(0, 0, -5),
		},
	}
	return s
}

func (s *memoryStore) findUserByEmail(email string) *stubUser {
	return s.users[strings.ToLower(strings.TrimSpace(email))]
}

func (s *memoryStore) findUserByUUID(id string) *stubUser {
	for _, u := range s.users {
		if u.UUID == id {
			return u
		}
	}
	return nil
}

func (s *memoryStore) openSession(userUUID string) string {
	id := uuid.NewString()
	s.sessions[id] = userUUID
	return id
}

func (s *memoryStore) findToken(value string) *stubToken {
	for _, t := range s.tokens {
		if t.Value == value {
			return t
		}
	}
	return nil
}

func (s *memoryStore) findDomain(id string) *stubDomain {
	for _, d := range s.domains {
		if d.UUID == id {
			return d
		}
	}
	return nil
}
