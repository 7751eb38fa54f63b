package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/core/services"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	userService  portssvc.UserSvcFacade
	ctx          context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.userService = services.NewUserService(s.mockUserRepo)
	s.ctx = context.Background()
}

func strPtr(v string) *string { return &v }

func (s *UserServiceTestSuite) TestUpdateProfile_AppliesOnlyProvidedFields() {
	userID := uuid.NewString()
	now := time.Now()
	existing := &domain.User{
		UserID:      userID,
		Email:       "user@example.com",
		FirstName:   "Old",
		LastName:    "Name",
		CompanyName: "Old Co",
		Phone:       "111",
		Role:        domain.RoleUser,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	s.mockUserRepo.On("FindUserByID", s.ctx, userID).Return(existing, nil).Once()
	s.mockUserRepo.On("UpdateUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.FirstName == "New" &&
			u.LastName == "Name" && // untouched
			u.CompanyName == "New Co" &&
			u.Phone == "111" && // untouched
			u.Email == "user@example.com"
	})).Return(nil).Once()

	updated, err := s.userService.UpdateProfile(s.ctx, userID, dto.UpdateProfileRequest{
		FirstName:   strPtr("New"),
		CompanyName: strPtr("New Co"),
	})

	s.Require().NoError(err)
	s.Equal("New", updated.FirstName)
	s.Equal("111", updated.Phone)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestListUsers_ClampsPagination() {
	s.mockUserRepo.On("FindUsers", s.ctx, 20, 0).Return([]domain.User{}, nil).Times(3)

	_, err := s.userService.ListUsers(s.ctx, 0, 0)
	s.Require().NoError(err)
	_, err = s.userService.ListUsers(s.ctx, 5000, -3)
	s.Require().NoError(err)
	_, err = s.userService.ListUsers(s.ctx, -1, 0)
	s.Require().NoError(err)

	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestListUsers_PassesThroughValidRange() {
	s.mockUserRepo.On("FindUsers", s.ctx, 50, 100).Return([]domain.User{}, nil).Once()

	_, err := s.userService.ListUsers(s.ctx, 50, 100)
	s.Require().NoError(err)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
