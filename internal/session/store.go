package session

// Store bundles the three persistence regions and the in-memory current
// user cell. One Store is created at the composition root and shared by
// the network client and the auth use cases.
type Store struct {
	Cookie   *CookieStore
	User     *UserStore
	Settings *SettingsStore
	Current  *CurrentUser
}

// New creates all regions over a single backend.
func New(backend Backend) *Store {
	return &Store{
		Cookie:   NewCookieStore(backend),
		User:     NewUserStore(backend),
		Settings: NewSettingsStore(backend),
		Current:  NewCurrentUser(),
	}
}
