package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/lodes-affiliate/internal/service/tokens"
	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
)

// UserService аутентификация администраторов. Регистрации нет - дефолтный
// администратор создается миграцией.
type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

// Login аутентификация администратора по паре email/пароль.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, userErr := s.userRepo.FindByEmail(ctx, email)
	if userErr != nil {
		return nil, "", fmt.Errorf("admin login: %w", userErr)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", fmt.Errorf("admin login: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateActorJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("admin login: %w", tokenErr)
	}
	return user, token, nil
}
