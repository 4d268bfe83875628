package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/logger"
	"github.com/fsdevblog/lodes-affiliate/internal/service"
	"github.com/fsdevblog/lodes-affiliate/internal/transport/api/mocks"
	"github.com/fsdevblog/lodes-affiliate/internal/transport/api/testutils"
)

type PublicHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockSaleService *mocks.MockSaleServicer
	mockProductSvs  *mocks.MockProductServicer
}

func TestPublicHandlerSuite(t *testing.T) {
	suite.Run(t, new(PublicHandlerTestSuite))
}

func (s *PublicHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())

	s.mockSaleService = mocks.NewMockSaleServicer(s.mockCtrl)
	s.mockProductSvs = mocks.NewMockProductServicer(s.mockCtrl)

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		SaleService:    s.mockSaleService,
		ProductService: s.mockProductSvs,
		JWTSecretKey:   []byte("super secret key"),
	})
}

func (s *PublicHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PublicHandlerTestSuite) TestCreateOrder() {
	s.mockSaleService.EXPECT().
		CreatePublicOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.PublicOrderArgs) (*domain.Sale, error) {
			s.Equal(int64(3), args.ProductID)
			s.Equal("LODES-AB2C3", args.AffiliateCode)
			return &domain.Sale{
				ID:        1,
				OrderCode: "ORD-1001",
				Amount:    decimal.RequireFromString("51.00"),
				Status:    domain.SaleStatusPending,
			}, nil
		})
	s.mockSaleService.EXPECT().
		CreatePublicOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.PublicOrderArgs) (*domain.Sale, error) {
			s.Equal(int64(404), args.ProductID)
			return nil, domain.ErrRecordNotFound
		})

	validBody := `{
		"productId": 3,
		"quantity": 2,
		"customerName": "Mei Lin",
		"customerPhone": "+60123456789",
		"customerAddress": "12 Jalan Besar",
		"affiliateCode": "LODES-AB2C3"
	}`
	unknownProductBody := `{
		"productId": 404,
		"quantity": 1,
		"customerName": "Mei Lin",
		"customerPhone": "+60123456789",
		"customerAddress": "12 Jalan Besar"
	}`
	invalidBody := `{"productId": 3, "quantity": 0, "customerName": ""}`

	cases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "created", body: validBody, wantStatus: http.StatusCreated},
		{name: "unknown product", body: unknownProductBody, wantStatus: http.StatusNotFound},
		{name: "validation failed", body: invalidBody, wantStatus: http.StatusUnprocessableEntity},
		{name: "malformed json", body: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + PublicOrderRoute,
				Body:   bytes.NewReader([]byte(t.body)),
			}, testutils.WithJSON())
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusCreated {
				var response PublicOrderResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
				s.Equal("ORD-1001", response.OrderCode)
				s.InDelta(51.0, response.Amount, 0.001)
			}
		})
	}
}

func (s *PublicHandlerTestSuite) TestProducts() {
	products := []domain.Product{
		{
			ID:                3,
			Name:              "Pandan Cake",
			Price:             decimal.RequireFromString("25.50"),
			CommissionPercent: decimal.RequireFromString("10"),
			Active:            true,
		},
	}
	s.mockProductSvs.EXPECT().GetAll(gomock.Any(), true).Return(products, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + PublicProductsRoute,
	})
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var response []PublicProductResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
	s.Require().Len(response, 1)
	s.Equal("Pandan Cake", response[0].Name)
}
