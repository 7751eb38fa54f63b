package domain

// UserRole is the authorization role carried in token claims.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// AuthProvider tags how an account was created.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
	ProviderGithub AuthProvider = "github"
)

// User represents an identity and credential record.
// Emails are unique case-insensitively. PasswordHash is empty for accounts
// created through an external OAuth provider and is never serialized.
type User struct {
	UserID        string       `json:"id"`
	Email         string       `json:"email"`
	PasswordHash  string       `json:"-"`
	FirstName     string       `json:"firstName"`
	LastName      string       `json:"lastName"`
	CompanyName   string       `json:"companyName,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	Role          UserRole     `json:"role"`
	Status        string       `json:"status"`
	EmailVerified bool         `json:"emailVerified"`
	Provider      AuthProvider `json:"provider"`
	Timestamps
}

// DisplayName returns the user's name for OAuth redirects and greetings.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}
