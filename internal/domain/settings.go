package domain

// AppSettings holds small client-side UI preferences. Unlike the wire
// DTOs, settings round-trip through persistence deliberately.
type AppSettings struct {
	MainCurrentTab int
}
