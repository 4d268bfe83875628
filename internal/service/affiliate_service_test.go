package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
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

type AffiliateServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockUOW     *uowmocks.MockUOW
	mockTX      *uowmocks.MockTX
	mockAffRepo *mocks.MockAffiliateRepository
	jwtSecret   []byte
	service     *AffiliateService
}

func TestAffiliateServiceSuite(t *testing.T) {
	suite.Run(t, new(AffiliateServiceTestSuite))
}

func (s *AffiliateServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAffRepo = mocks.NewMockAffiliateRepository(s.mockCtrl)
	s.jwtSecret = []byte("secret")

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AffiliateRepoName)).
		Return(s.mockAffRepo, nil).AnyTimes()

	service, servErr := NewAffiliateService(s.mockUOW, s.jwtSecret)
	s.Require().NoError(servErr)
	s.service = service
}

func (s *AffiliateServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AffiliateServiceTestSuite) expectTransaction() {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AffiliateRepoName)).
		Return(s.mockAffRepo, nil).AnyTimes()
}

func (s *AffiliateServiceTestSuite) TestRegister() {
	args := RegisterAffiliateArgs{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
		Phone:    gofakeit.Phone(),
	}

	s.expectTransaction()
	s.mockAffRepo.EXPECT().FindByEmail(gomock.Any(), args.Email).
		Return(nil, domain.ErrRecordNotFound)

	s.mockAffRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.AffiliateCreate) (*domain.Affiliate, error) {
			s.Equal(args.Email, createArgs.Email)
			// пароль уходит в хранилище только хешированным
			s.NoError(bcrypt.CompareHashAndPassword([]byte(createArgs.Password), []byte(args.Password)))
			s.True(strings.HasPrefix(createArgs.Code, "LODES-"))
			s.Len(createArgs.Code, len("LODES-")+5)

			return &domain.Affiliate{
				ID:        1,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
				Name:      createArgs.Name,
				Email:     createArgs.Email,
				Password:  createArgs.Password,
				Code:      createArgs.Code,
				Active:    true,
			}, nil
		})

	affiliate, tokenStr, err := s.service.Register(context.Background(), args)
	s.Require().NoError(err)
	s.Require().NotNil(affiliate)
	s.Require().NotEmpty(tokenStr)

	token, tokenErr := tokens.ValidateActorJWT(tokenStr, s.jwtSecret)
	s.Require().NoError(tokenErr)
	claims := token.Claims.(*tokens.ActorClaims) //nolint:errcheck
	s.Equal(affiliate.ID, claims.ID)
	s.Equal(domain.RoleAffiliate, claims.Role)
}

func (s *AffiliateServiceTestSuite) TestRegister_DuplicateEmail() {
	email := gofakeit.Email()

	s.mockAffRepo.EXPECT().FindByEmail(gomock.Any(), email).
		Return(&domain.Affiliate{ID: 1, Email: email}, nil)

	_, _, err := s.service.Register(context.Background(), RegisterAffiliateArgs{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: "password123",
	})
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *AffiliateServiceTestSuite) TestRegister_RetriesCodeCollision() {
	args := RegisterAffiliateArgs{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: "password123",
	}

	s.expectTransaction()
	s.mockAffRepo.EXPECT().FindByEmail(gomock.Any(), args.Email).
		Return(nil, domain.ErrRecordNotFound)

	var codes []string
	gomock.InOrder(
		s.mockAffRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, createArgs repoargs.AffiliateCreate) (*domain.Affiliate, error) {
				codes = append(codes, createArgs.Code)
				return nil, domain.ErrDuplicateKey
			}),
		s.mockAffRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, createArgs repoargs.AffiliateCreate) (*domain.Affiliate, error) {
				codes = append(codes, createArgs.Code)
				return &domain.Affiliate{ID: 2, Code: createArgs.Code, Active: true}, nil
			}),
	)

	affiliate, _, err := s.service.Register(context.Background(), args)
	s.Require().NoError(err)
	s.Require().Len(codes, 2)
	// при коллизии генерируется новый код
	s.NotEqual(codes[0], codes[1])
	s.Equal(codes[1], affiliate.Code)
}

func (s *AffiliateServiceTestSuite) TestLogin() {
	password := "password123"
	hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(hashErr)

	saved := domain.Affiliate{
		ID:       1,
		Email:    gofakeit.Email(),
		Password: string(hash),
		Code:     "LODES-AB2C3",
		Active:   true,
	}

	s.mockAffRepo.EXPECT().FindByEmail(gomock.Any(), saved.Email).
		Return(&saved, nil).Times(2)
	s.mockAffRepo.EXPECT().FindByEmail(gomock.Any(), "unknown@lodes.com").
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "ok", email: saved.Email, password: password},
		{name: "wrong password", email: saved.Email, password: "wrong", wantErr: domain.ErrPasswordMissMatch},
		{name: "unknown email", email: "unknown@lodes.com", password: password, wantErr: domain.ErrRecordNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			affiliate, tokenStr, err := s.service.Login(context.Background(), t.email, t.password)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Equal(saved.ID, affiliate.ID)
				s.NotEmpty(tokenStr)

				token, tokenErr := tokens.ValidateActorJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(domain.RoleAffiliate, token.Claims.(*tokens.ActorClaims).Role) //nolint:errcheck
			}
		})
	}
}
