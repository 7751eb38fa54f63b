package domain

// ProviderProfile is the minimal identity an external OAuth provider must
// supply. A profile without an email cannot be bridged to a local account.
type ProviderProfile struct {
	Email         string
	DisplayName   string
	FirstName     string
	LastName      string
	EmailVerified bool
}
