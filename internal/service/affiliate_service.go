package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/lodes-affiliate/internal/service/tokens"
	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
)

const JWTTokenExpire = 7 * 24 * time.Hour

// codeIssueAttempts кол-во попыток сгенерировать уникальный партнерский код.
// Коллизия на 32^5 вариантах практически невозможна, но уникальный индекс
// кода может ее вернуть.
const codeIssueAttempts = 5

type AffiliateService struct {
	uow            uow.UOW
	affRepo        AffiliateRepository
	jwtTokenSecret []byte
}

func NewAffiliateService(u uow.UOW, jwtTokenSecret []byte) (*AffiliateService, error) {
	affRepo, err := uow.GetRepositoryAs[AffiliateRepository](u, uow.RepositoryName(repoargs.AffiliateRepoName))
	if err != nil {
		return nil, err
	}
	return &AffiliateService{
		uow:            u,
		affRepo:        affRepo,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterAffiliateArgs struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Register создает партнера с новым уникальным кодом и аутентифицирует его.
// Возвращает 3 значения: созданный партнер, jwt-токен и ошибку. Занятый email
// возвращается как domain.ErrDuplicateKey.
func (s *AffiliateService) Register(
	ctx context.Context,
	args RegisterAffiliateArgs,
) (*domain.Affiliate, string, error) {
	password, hashErr := s.hashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering affiliate: %s", hashErr.Error())
	}

	if _, err := s.affRepo.FindByEmail(ctx, args.Email); err == nil {
		return nil, "", fmt.Errorf("registering affiliate: email `%s` taken: %w", args.Email, domain.ErrDuplicateKey)
	} else if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("registering affiliate: %w", err)
	}

	var affiliate *domain.Affiliate
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		affRepo, affRepoErr := uow.GetAs[AffiliateRepository](tx, uow.RepositoryName(repoargs.AffiliateRepoName))
		if affRepoErr != nil {
			return affRepoErr //nolint:wrapcheck
		}

		var createErr error
		for i := 0; i < codeIssueAttempts; i++ {
			affiliate, createErr = affRepo.Create(c, repoargs.AffiliateCreate{
				Name:     args.Name,
				Email:    args.Email,
				Password: password,
				Phone:    args.Phone,
				Code:     newAffiliateCode(),
			})
			if createErr == nil || !errors.Is(createErr, domain.ErrDuplicateKey) {
				break
			}
		}
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		var tokenErr error
		token, tokenErr = tokens.GenerateActorJWT(affiliate.ID, domain.RoleAffiliate, JWTTokenExpire, s.jwtTokenSecret)
		return tokenErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, "", fmt.Errorf("registering affiliate: %w", txErr)
	}
	return affiliate, token, nil
}

// Login аутентификация партнера по паре email/пароль.
func (s *AffiliateService) Login(ctx context.Context, email, password string) (*domain.Affiliate, string, error) {
	affiliate, affErr := s.affRepo.FindByEmail(ctx, email)
	if affErr != nil {
		return nil, "", fmt.Errorf("affiliate login: %w", affErr)
	}
	if !s.comparePasswords(affiliate.Password, password) {
		return nil, "", fmt.Errorf("affiliate login: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateActorJWT(affiliate.ID, domain.RoleAffiliate, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("affiliate login: %w", tokenErr)
	}
	return affiliate, token, nil
}

func (s *AffiliateService) FindByID(ctx context.Context, id int64) (*domain.Affiliate, error) {
	affiliate, err := s.affRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return affiliate, nil
}

func (s *AffiliateService) GetAll(ctx context.Context) ([]domain.Affiliate, error) {
	affiliates, err := s.affRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return affiliates, nil
}

// SetActive включает/выключает партнера. Деактивированный партнер сохраняет
// баланс и историю, но его код перестает привязывать новые продажи.
func (s *AffiliateService) SetActive(ctx context.Context, id int64, active bool) (*domain.Affiliate, error) {
	affiliate, err := s.affRepo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return affiliate, nil
}

func (s *AffiliateService) hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (s *AffiliateService) comparePasswords(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
