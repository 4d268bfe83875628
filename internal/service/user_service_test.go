package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/lodes-affiliate/internal/service/mocks"
	"github.com/fsdevblog/lodes-affiliate/internal/service/tokens"
	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
	uowmocks "github.com/fsdevblog/lodes-affiliate/pkg/uow/mocks"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUOW      *uowmocks.MockUOW
	mockUserRepo *mocks.MockUserRepository
	jwtSecret    []byte
	userService  *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.jwtSecret = []byte("secret")

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	userService, servErr := NewUserService(s.mockUOW, s.jwtSecret)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TestLogin() {
	password := "admin123"
	hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(hashErr)

	savedUser := domain.User{
		ID:        1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Email:     "admin@lodes.com",
		Password:  string(hash),
		Role:      domain.RoleAdmin,
	}

	s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), savedUser.Email).
		Return(&savedUser, nil).Times(2)
	s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), "wrong@lodes.com").
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "ok", email: savedUser.Email, password: password},
		{name: "wrong email", email: "wrong@lodes.com", password: password, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", email: savedUser.Email, password: "nope", wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Login(context.Background(), t.email, t.password)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Equal(savedUser.ID, user.ID)
				s.Require().NotEmpty(tokenStr)

				token, tokenErr := tokens.ValidateActorJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				claims := token.Claims.(*tokens.ActorClaims) //nolint:errcheck
				s.Equal(savedUser.ID, claims.ID)
				s.Equal(domain.RoleAdmin, claims.Role)
			}
		})
	}
}
