package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
	"github.com/mdfaizanashrafi/sovereon/internal/handlers"
	"github.com/mdfaizanashrafi/sovereon/internal/platform/config"
)

// --- Mock OAuthProvider ---
type MockOAuthProvider struct {
	mock.Mock
}

func (m *MockOAuthProvider) Name() domain.AuthProvider {
	args := m.Called()
	return args.Get(0).(domain.AuthProvider)
}

func (m *MockOAuthProvider) AuthCodeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockOAuthProvider) ExchangeCode(ctx context.Context, code string) (*domain.ProviderProfile, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderProfile), args.Error(1)
}

var _ portssvc.OAuthProvider = (*MockOAuthProvider)(nil)

// --- Mock OAuthService ---
type MockOAuthService struct {
	mock.Mock
}

func (m *MockOAuthService) Provider(name string) (portssvc.OAuthProvider, bool) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(portssvc.OAuthProvider), args.Bool(1)
}

func (m *MockOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

var _ portssvc.OAuthSvcFacade = (*MockOAuthService)(nil)

// --- Test Suite ---
type OAuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockOAuthService *MockOAuthService
	mockProvider     *MockOAuthProvider
	mockAuthService  *MockAuthService
}

func (s *OAuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockOAuthService = new(MockOAuthService)
	s.mockProvider = new(MockOAuthProvider)
	s.mockAuthService = new(MockAuthService)

	cfg := &config.Config{
		JWTSecret:       testSecret,
		IsProduction:    true,
		FrontendBaseURL: "http://localhost:5173",
	}
	services := &portssvc.ServiceContainer{
		Auth:  s.mockAuthService,
		OAuth: s.mockOAuthService,
		User:  new(MockUserService),
	}
	handlers.RegisterRoutes(s.router, cfg, services)
}

func (s *OAuthHandlerTestSuite) TestRedirect_SetsStateAndLocation() {
	s.mockOAuthService.On("Provider", "google").Return(s.mockProvider, true).Once()
	s.mockOAuthService.On("GenerateStateString", mock.Anything).Return("random-state", nil).Once()
	s.mockProvider.On("AuthCodeURL", "random-state").
		Return("https://accounts.google.com/o/oauth2/auth?state=random-state").Once()

	req := httptest.NewRequest(http.MethodGet, "/api/oauth/google", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusFound, w.Code)
	s.Equal("https://accounts.google.com/o/oauth2/auth?state=random-state", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	s.Require().NotEmpty(cookies)
	s.Equal("oauth_state", cookies[0].Name)
	s.Equal("random-state", cookies[0].Value)
	s.True(cookies[0].HttpOnly)
}

func (s *OAuthHandlerTestSuite) TestRedirect_UnknownProvider() {
	s.mockOAuthService.On("Provider", "myspace").Return(nil, false).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/oauth/myspace", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *OAuthHandlerTestSuite) TestCallback_Success() {
	userID := uuid.NewString()
	profile := &domain.ProviderProfile{
		Email:       "oauth@example.com",
		DisplayName: "OAuth User",
	}

	s.mockOAuthService.On("Provider", "google").Return(s.mockProvider, true).Once()
	s.mockProvider.On("Name").Return(domain.ProviderGoogle)
	s.mockProvider.On("ExchangeCode", mock.Anything, "auth-code").Return(profile, nil).Once()
	s.mockAuthService.On("LoginWithProvider", mock.Anything, domain.ProviderGoogle, *profile).
		Return(&dto.AuthResponse{
			User:  dto.AuthUser{UserID: userID, Email: "oauth@example.com", Role: "user"},
			Token: "issued-token",
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/oauth/google/callback?code=auth-code&state=random-state", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "random-state"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	s.Contains(location, "http://localhost:5173/auth/callback?")
	s.Contains(location, "token=issued-token")
	s.Contains(location, "email=oauth%40example.com")
	s.Contains(location, "name=OAuth+User")
}

func (s *OAuthHandlerTestSuite) TestCallback_StateMismatchRedirectsToLogin() {
	s.mockOAuthService.On("Provider", "google").Return(s.mockProvider, true).Once()
	s.mockProvider.On("Name").Return(domain.ProviderGoogle)

	req := httptest.NewRequest(http.MethodGet, "/api/oauth/google/callback?code=auth-code&state=forged", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "random-state"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusFound, w.Code)
	s.Equal("http://localhost:5173/auth/login?error=true", w.Header().Get("Location"))
	s.mockProvider.AssertNotCalled(s.T(), "ExchangeCode", mock.Anything, mock.Anything)
}

func (s *OAuthHandlerTestSuite) TestCallback_BridgeFailureRedirectsToLogin() {
	s.mockOAuthService.On("Provider", "github").Return(s.mockProvider, true).Once()
	s.mockProvider.On("Name").Return(domain.ProviderGithub)
	s.mockProvider.On("ExchangeCode", mock.Anything, "auth-code").
		Return(&domain.ProviderProfile{}, nil).Once()
	s.mockAuthService.On("LoginWithProvider", mock.Anything, domain.ProviderGithub, domain.ProviderProfile{}).
		Return(nil, errors.New("no email")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/oauth/github/callback?code=auth-code&state=random-state", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "random-state"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusFound, w.Code)
	s.Equal("http://localhost:5173/auth/login?error=true", w.Header().Get("Location"))
}

func (s *OAuthHandlerTestSuite) TestLogout_StatelessAck() {
	req := httptest.NewRequest(http.MethodPost, "/api/oauth/logout", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
}

func TestOAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OAuthHandlerTestSuite))
}
