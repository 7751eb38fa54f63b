// Package client is a Go SDK for the Sovereon portal API. It mirrors the
// web frontend's session handling: the bearer token is the whole session,
// held in a TokenStore, attached to every request and discarded the moment
// the server answers 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrUnauthorized is returned when the server rejects the session. The
// stored token has already been cleared by the time the caller sees it.
var ErrUnauthorized = errors.New("client: unauthorized")

// APIError is a non-2xx answer from the portal, carrying the server's
// machine-readable code.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: %s (%s)", e.Message, e.Code)
}

// User is the profile shape the portal returns.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	CompanyName string    `json:"companyName,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	Provider    string    `json:"provider"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Session is the client's view of who is logged in.
type Session struct {
	User            *User
	IsAuthenticated bool
}

// envelope mirrors the portal's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Timestamp string `json:"timestamp"`
}

// authPayload is the data of register/login/refresh responses.
type authPayload struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// Client talks to a portal instance. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      TokenStore

	mu   sync.RWMutex
	user *User
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenStore replaces the default in-memory token store.
func WithTokenStore(store TokenStore) Option {
	return func(c *Client) { c.store = store }
}

// New creates a Client for the portal at baseURL, e.g.
// "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		store:      NewMemoryStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the current session. The user is only populated after a
// successful Login, Register or Load.
func (c *Client) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return Session{}
	}
	u := *c.user
	return Session{User: &u, IsAuthenticated: true}
}

// Register creates an account and starts a session with the returned token.
func (c *Client) Register(ctx context.Context, email, password, firstName, lastName string) (*User, error) {
	body := map[string]string{
		"email":     email,
		"password":  password,
		"firstName": firstName,
		"lastName":  lastName,
	}
	return c.authenticate(ctx, "/api/auth/register", body)
}

// Login starts a session with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	return c.authenticate(ctx, "/api/auth/login", body)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*User, error) {
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, path, body, &payload, false); err != nil {
		return nil, err
	}
	if err := c.store.Save(payload.Token); err != nil {
		return nil, fmt.Errorf("saving token: %w", err)
	}
	return c.Load(ctx)
}

// Load resolves the current user from the stored token. Call it after
// constructing a Client over a persistent store to resume a session.
func (c *Client) Load(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user, true); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.user = &user
	c.mu.Unlock()
	return &user, nil
}

// UpdateProfile changes the caller's profile fields. Nil fields are left
// untouched.
func (c *Client) UpdateProfile(ctx context.Context, firstName, lastName, companyName, phone *string) (*User, error) {
	body := map[string]*string{}
	if firstName != nil {
		body["firstName"] = firstName
	}
	if lastName != nil {
		body["lastName"] = lastName
	}
	if companyName != nil {
		body["companyName"] = companyName
	}
	if phone != nil {
		body["phone"] = phone
	}
	var user User
	if err := c.do(ctx, http.MethodPut, "/api/auth/me", body, &user, true); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.user = &user
	c.mu.Unlock()
	return &user, nil
}

// Logout acknowledges the logout with the server and discards the local
// session. The server holds no session state, so the local discard is the
// operative part.
func (c *Client) Logout(ctx context.Context) error {
	// Best effort; the session is gone either way.
	_ = c.do(ctx, http.MethodPost, "/api/oauth/logout", nil, nil, true)
	c.clearSession()
	return nil
}

// Get performs an authenticated GET against an API path and decodes the
// envelope's data into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, true)
}

// Post performs an authenticated POST against an API path and decodes the
// envelope's data into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, true)
}

// do runs one request through the envelope protocol. A 401 clears the
// stored token and the cached user before reporting ErrUnauthorized.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if authed {
		token, err := c.store.Token()
		if err != nil {
			if errors.Is(err, ErrNoToken) {
				return ErrUnauthorized
			}
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.clearSession()
		return ErrUnauthorized
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
	}
	return nil
}

func (c *Client) clearSession() {
	_ = c.store.Clear()
	c.mu.Lock()
	c.user = nil
	c.mu.Unlock()
}
