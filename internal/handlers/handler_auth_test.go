package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mdfaizanashrafi/sovereon/internal/apperrors"
	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
	"github.com/mdfaizanashrafi/sovereon/internal/handlers"
	"github.com/mdfaizanashrafi/sovereon/internal/platform/config"
	"github.com/mdfaizanashrafi/sovereon/internal/utils"
)

const testSecret = "test-secret-key-that-is-long-enough"

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) LoginWithProvider(ctx context.Context, provider domain.AuthProvider, profile domain.ProviderProfile) (*dto.AuthResponse, error) {
	args := m.Called(ctx, provider, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockAuthService *MockAuthService
	mockUserService *MockUserService
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockAuthService = new(MockAuthService)
	s.mockUserService = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:       testSecret,
		IsProduction:    true, // keeps swagger off the test router
		FrontendBaseURL: "http://localhost:5173",
	}
	services := &portssvc.ServiceContainer{
		Auth: s.mockAuthService,
		User: s.mockUserService,
	}
	handlers.RegisterRoutes(s.router, cfg, services)
}

func (s *AuthHandlerTestSuite) postJSON(path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthHandlerTestSuite) get(path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthHandlerTestSuite) decodeEnvelope(w *httptest.ResponseRecorder) dto.Response {
	var resp dto.Response
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *AuthHandlerTestSuite) bearerToken(userID string) string {
	token, err := utils.GenerateJWT(userID, "user@example.com", "user", testSecret, time.Hour, "sovereon-test")
	s.Require().NoError(err)
	return "Bearer " + token
}

func sampleAuthResponse(userID, email string) *dto.AuthResponse {
	return &dto.AuthResponse{
		User:         dto.AuthUser{UserID: userID, Email: email, Role: "user"},
		Token:        "access-token",
		RefreshToken: "refresh-token",
	}
}

// --- Register ---

func (s *AuthHandlerTestSuite) TestRegister_Created() {
	userID := uuid.NewString()
	s.mockAuthService.On("Register", mock.Anything, dto.RegisterRequest{
		Email:     "new@example.com",
		Password:  "password123",
		FirstName: "New",
		LastName:  "User",
	}).Return(sampleAuthResponse(userID, "new@example.com"), nil).Once()

	w := s.postJSON("/api/auth/register",
		`{"email":"new@example.com","password":"password123","firstName":"New","lastName":"User"}`, nil)

	s.Equal(http.StatusCreated, w.Code)
	resp := s.decodeEnvelope(w)
	s.True(resp.Success)
	s.Nil(resp.Error)
	s.False(resp.Timestamp.IsZero())

	data := resp.Data.(map[string]any)
	s.Equal("access-token", data["token"])
	s.Equal("refresh-token", data["refreshToken"])
}

func (s *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	s.mockAuthService.On("Register", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewEmailExistsError()).Once()

	w := s.postJSON("/api/auth/register",
		`{"email":"taken@example.com","password":"password123"}`, nil)

	s.Equal(http.StatusConflict, w.Code)
	resp := s.decodeEnvelope(w)
	s.False(resp.Success)
	s.Require().NotNil(resp.Error)
	s.Equal("EMAIL_EXISTS", resp.Error.Code)
}

func (s *AuthHandlerTestSuite) TestRegister_ValidationFailures() {
	cases := map[string]string{
		"invalid email":  `{"email":"not-an-email","password":"password123"}`,
		"short password": `{"email":"ok@example.com","password":"short"}`,
		"unknown field":  `{"email":"ok@example.com","password":"password123","admin":true}`,
		"not json":       `email=x`,
	}

	for name, body := range cases {
		w := s.postJSON("/api/auth/register", body, nil)
		s.Equal(http.StatusBadRequest, w.Code, name)

		resp := s.decodeEnvelope(w)
		s.Require().NotNil(resp.Error, name)
		s.Equal("VALIDATION_ERROR", resp.Error.Code, name)
	}
	s.mockAuthService.AssertNotCalled(s.T(), "Register", mock.Anything, mock.Anything)
}

// --- Login ---

func (s *AuthHandlerTestSuite) TestLogin_OK() {
	userID := uuid.NewString()
	s.mockAuthService.On("Login", mock.Anything, dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	}).Return(sampleAuthResponse(userID, "user@example.com"), nil).Once()

	w := s.postJSON("/api/auth/login",
		`{"email":"user@example.com","password":"password123"}`, nil)

	s.Equal(http.StatusOK, w.Code)
	s.True(s.decodeEnvelope(w).Success)
}

func (s *AuthHandlerTestSuite) TestLogin_FailureBodyIsIdentical() {
	// Unknown account and wrong password surface as the same error body;
	// only the timestamp may differ.
	s.mockAuthService.On("Login", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewInvalidCredentialsError()).Twice()

	w1 := s.postJSON("/api/auth/login", `{"email":"unknown@example.com","password":"password123"}`, nil)
	w2 := s.postJSON("/api/auth/login", `{"email":"known@example.com","password":"wrong-pass1"}`, nil)

	s.Equal(http.StatusUnauthorized, w1.Code)
	s.Equal(http.StatusUnauthorized, w2.Code)

	r1, r2 := s.decodeEnvelope(w1), s.decodeEnvelope(w2)
	s.Require().NotNil(r1.Error)
	s.Require().NotNil(r2.Error)
	s.Equal(*r1.Error, *r2.Error)
	s.Equal("INVALID_CREDENTIALS", r1.Error.Code)
}

// --- Refresh ---

func (s *AuthHandlerTestSuite) TestRefresh_InvalidToken() {
	s.mockAuthService.On("Refresh", mock.Anything, "stale-token").
		Return(nil, apperrors.NewUnauthorizedError("")).Once()

	w := s.postJSON("/api/auth/refresh", `{"refreshToken":"stale-token"}`, nil)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("UNAUTHORIZED", s.decodeEnvelope(w).Error.Code)
}

// --- Me ---

func (s *AuthHandlerTestSuite) TestMe_NeverLeaksPasswordHash() {
	userID := uuid.NewString()
	now := time.Now()
	s.mockUserService.On("GetUserByID", mock.Anything, userID).Return(&domain.User{
		UserID:       userID,
		Email:        "user@example.com",
		PasswordHash: "$2a$12$supersecrethash",
		FirstName:    "Test",
		Role:         domain.RoleUser,
		Status:       "active",
		Provider:     domain.ProviderLocal,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}, nil).Once()

	w := s.get("/api/auth/me", map[string]string{"Authorization": s.bearerToken(userID)})

	s.Equal(http.StatusOK, w.Code)
	s.NotContains(w.Body.String(), "supersecrethash")
	s.NotContains(w.Body.String(), "password")

	resp := s.decodeEnvelope(w)
	data := resp.Data.(map[string]any)
	s.Equal("user@example.com", data["email"])
}

func (s *AuthHandlerTestSuite) TestMe_RequiresToken() {
	w := s.get("/api/auth/me", nil)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("UNAUTHORIZED", s.decodeEnvelope(w).Error.Code)
	s.mockUserService.AssertNotCalled(s.T(), "GetUserByID", mock.Anything, mock.Anything)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
