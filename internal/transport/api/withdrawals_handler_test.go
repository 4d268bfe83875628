package api

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/logger"
	"github.com/fsdevblog/lodes-affiliate/internal/service/tokens"
	"github.com/fsdevblog/lodes-affiliate/internal/transport/api/mocks"
	"github.com/fsdevblog/lodes-affiliate/internal/transport/api/testutils"
)

type WithdrawalsHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockWithdrawal *mocks.MockWithdrawalServicer
	jwtSecret      []byte
	affiliateToken string
	adminToken     string
}

func TestWithdrawalsHandlerSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalsHandlerTestSuite))
}

func (s *WithdrawalsHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())

	s.mockWithdrawal = mocks.NewMockWithdrawalServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:            logger.New(os.Stdout),
		WithdrawalService: s.mockWithdrawal,
		JWTSecretKey:      s.jwtSecret,
	})

	affiliateToken, affErr := tokens.GenerateActorJWT(1, domain.RoleAffiliate, time.Hour, s.jwtSecret)
	s.Require().NoError(affErr)
	s.affiliateToken = affiliateToken

	adminToken, admErr := tokens.GenerateActorJWT(100, domain.RoleAdmin, time.Hour, s.jwtSecret)
	s.Require().NoError(admErr)
	s.adminToken = adminToken
}

func (s *WithdrawalsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *WithdrawalsHandlerTestSuite) TestCreate() {
	var affiliateID int64 = 1
	okAmount := decimal.RequireFromString("60")
	belowMin := decimal.RequireFromString("10")
	tooMuch := decimal.RequireFromString("1000")

	s.mockWithdrawal.EXPECT().
		Create(gomock.Any(), affiliateID, okAmount, gomock.Any()).
		Return(&domain.Withdrawal{
			ID:          1,
			AffiliateID: affiliateID,
			Amount:      okAmount,
			Status:      domain.WithdrawalStatusPending,
		}, nil)
	s.mockWithdrawal.EXPECT().
		Create(gomock.Any(), affiliateID, belowMin, gomock.Any()).
		Return(nil, domain.NewBelowMinimumError(decimal.RequireFromString("50")))
	s.mockWithdrawal.EXPECT().
		Create(gomock.Any(), affiliateID, tooMuch, gomock.Any()).
		Return(nil, domain.ErrNotEnoughBalance)
	s.mockWithdrawal.EXPECT().
		Create(gomock.Any(), affiliateID, decimal.RequireFromString("0"), gomock.Any()).
		Return(nil, domain.ErrInvalidArgument)

	cases := []struct {
		name       string
		body       string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"amount": "60", "paymentDetails": {"bankName": "Maybank"}}`,
			jwtToken:   s.affiliateToken,
			wantStatus: http.StatusCreated,
		}, {
			name:       "below minimum",
			body:       `{"amount": "10"}`,
			jwtToken:   s.affiliateToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "not enough balance",
			body:       `{"amount": "1000"}`,
			jwtToken:   s.affiliateToken,
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "missing amount",
			body:       `{}`,
			jwtToken:   s.affiliateToken,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "zero amount",
			body:       `{"amount": "0"}`,
			jwtToken:   s.affiliateToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "not authorized",
			body:       `{"amount": "60"}`,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "admin token on affiliate route",
			body:       `{"amount": "60"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + AffiliateWithdrawalsRoute,
				Body:   bytes.NewReader([]byte(t.body)),
			}
			reqOpts := []func(*testutils.RequestOptions){testutils.WithJSON()}
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", "Bearer "+t.jwtToken))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *WithdrawalsHandlerTestSuite) TestUpdateStatus() {
	paid := domain.Withdrawal{
		ID:          5,
		AffiliateID: 1,
		Amount:      decimal.RequireFromString("60"),
		Status:      domain.WithdrawalStatusPaid,
	}

	s.mockWithdrawal.EXPECT().
		SetStatus(gomock.Any(), paid.ID, domain.WithdrawalStatusPaid, "done").
		Return(&paid, nil)
	s.mockWithdrawal.EXPECT().
		SetStatus(gomock.Any(), int64(6), domain.WithdrawalStatusRejected, gomock.Any()).
		Return(nil, domain.ErrInvalidState)
	s.mockWithdrawal.EXPECT().
		SetStatus(gomock.Any(), int64(404), gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		id         string
		body       string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "paid",
			id:         "5",
			body:       `{"status": "paid", "adminNote": "done"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "terminal state conflict",
			id:         "6",
			body:       `{"status": "rejected"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusConflict,
		}, {
			name:       "unknown withdrawal",
			id:         "404",
			body:       `{"status": "paid"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "invalid id",
			id:         "abc",
			body:       `{"status": "paid"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "affiliate token on admin route",
			id:         "5",
			body:       `{"status": "paid"}`,
			jwtToken:   s.affiliateToken,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPut,
				URL:    fmt.Sprintf("%s/admin/withdrawals/%s", RouteGroup, t.id),
				Body:   bytes.NewReader([]byte(t.body)),
			}
			res, err := testutils.MakeRequest(args,
				testutils.WithJSON(),
				testutils.WithHeader("Authorization", "Bearer "+t.jwtToken),
			)
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
