package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/lodes-affiliate/internal/service/mocks"
	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
	uowmocks "github.com/fsdevblog/lodes-affiliate/pkg/uow/mocks"
)

type SaleServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockSaleRepo    *mocks.MockSaleRepository
	mockAffRepo     *mocks.MockAffiliateRepository
	mockProductRepo *mocks.MockProductRepository
	mockSink        *mocks.MockSaleSink
	service         *SaleService
}

func TestSaleServiceSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}

func (s *SaleServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockSaleRepo = mocks.NewMockSaleRepository(s.mockCtrl)
	s.mockAffRepo = mocks.NewMockAffiliateRepository(s.mockCtrl)
	s.mockProductRepo = mocks.NewMockProductRepository(s.mockCtrl)
	s.mockSink = mocks.NewMockSaleSink(s.mockCtrl)

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.SaleRepoName)).
		Return(s.mockSaleRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AffiliateRepoName)).
		Return(s.mockAffRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ProductRepoName)).
		Return(s.mockProductRepo, nil).AnyTimes()

	service, servErr := NewSaleService(s.mockUOW, s.mockSink, logrus.New())
	s.Require().NoError(servErr)
	s.service = service
}

func (s *SaleServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTransaction настраивает прозрачный проход через uow: переданная
// функция выполняется сразу на mockTX.
func (s *SaleServiceTestSuite) expectTransaction(times int) {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).Times(times)
}

func (s *SaleServiceTestSuite) expectTXRepos() {
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.SaleRepoName)).
		Return(s.mockSaleRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AffiliateRepoName)).
		Return(s.mockAffRepo, nil).AnyTimes()
}

func (s *SaleServiceTestSuite) TestCreate_PendingDoesNotCreditBalance() {
	affiliateID := int64(7)
	affiliate := domain.Affiliate{ID: affiliateID, Code: "LODES-AB2C3", Active: true}

	args := CreateSaleArgs{
		AffiliateID:       &affiliateID,
		OrderCode:         "ORD-1001",
		ProductID:         3,
		ProductName:       "Pandan Cake",
		CustomerName:      "Mei Lin",
		Quantity:          2,
		Price:             decimal.RequireFromString("25.50"),
		CommissionPercent: decimal.RequireFromString("10"),
	}
	wantCommission := decimal.RequireFromString("5.10") // 51.00 * 10%

	s.expectTransaction(1)
	s.expectTXRepos()

	s.mockAffRepo.EXPECT().FindByID(gomock.Any(), affiliateID).Return(&affiliate, nil)
	s.mockAffRepo.EXPECT().
		RegisterSale(gomock.Any(), affiliateID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, commission decimal.Decimal) error {
			s.True(wantCommission.Equal(commission), "want %s, got %s", wantCommission, commission)
			return nil
		})
	// Баланс по pending-продаже не пополняется.
	s.mockAffRepo.EXPECT().CreditBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.mockSaleRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.SaleCreate) (*domain.Sale, error) {
			s.Equal(args.OrderCode, createArgs.OrderCode)
			s.Equal(affiliate.Code, createArgs.AffiliateCode)
			s.Equal(domain.SaleStatusPending, createArgs.Status)
			s.True(decimal.RequireFromString("51.00").Equal(createArgs.Amount))
			s.True(wantCommission.Equal(createArgs.Commission))
			return &domain.Sale{
				ID:          1,
				OrderCode:   createArgs.OrderCode,
				AffiliateID: createArgs.AffiliateID,
				Commission:  createArgs.Commission,
				Status:      createArgs.Status,
			}, nil
		})

	s.mockSink.EXPECT().AppendSale(gomock.Any(), gomock.Any()).Return(nil)

	sale, err := s.service.Create(context.Background(), args)
	s.Require().NoError(err)
	s.Equal(domain.SaleStatusPending, sale.Status)
}

func (s *SaleServiceTestSuite) TestCreate_CompletedCreditsImmediately() {
	affiliateID := int64(7)
	affiliate := domain.Affiliate{ID: affiliateID, Code: "LODES-AB2C3", Active: true}
	wantCommission := decimal.RequireFromString("1.67") // 33.33 * 5% = 1.6665 -> 1.67

	s.expectTransaction(1)
	s.expectTXRepos()

	s.mockAffRepo.EXPECT().FindByID(gomock.Any(), affiliateID).Return(&affiliate, nil)
	s.mockAffRepo.EXPECT().RegisterSale(gomock.Any(), affiliateID, gomock.Any()).Return(nil)
	s.mockAffRepo.EXPECT().
		CreditBalance(gomock.Any(), affiliateID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, amount decimal.Decimal) error {
			s.True(wantCommission.Equal(amount), "want %s, got %s", wantCommission, amount)
			return nil
		})
	s.mockSaleRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.SaleCreate) (*domain.Sale, error) {
			return &domain.Sale{ID: 2, Status: createArgs.Status, Commission: createArgs.Commission}, nil
		})
	s.mockSink.EXPECT().AppendSale(gomock.Any(), gomock.Any()).Return(nil)

	sale, err := s.service.Create(context.Background(), CreateSaleArgs{
		AffiliateID:       &affiliateID,
		OrderCode:         "ORD-1002",
		ProductID:         3,
		Quantity:          1,
		Price:             decimal.RequireFromString("33.33"),
		CommissionPercent: decimal.RequireFromString("5"),
		Status:            domain.SaleStatusCompleted,
	})
	s.Require().NoError(err)
	s.Equal(domain.SaleStatusCompleted, sale.Status)
}

func (s *SaleServiceTestSuite) TestCreate_WithoutAffiliate() {
	s.expectTransaction(1)
	s.expectTXRepos()

	s.mockSaleRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.SaleCreate) (*domain.Sale, error) {
			s.Nil(createArgs.AffiliateID)
			s.Empty(createArgs.AffiliateCode)
			return &domain.Sale{ID: 3, Status: createArgs.Status}, nil
		})
	s.mockSink.EXPECT().AppendSale(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.service.Create(context.Background(), CreateSaleArgs{
		OrderCode:         "ORD-1003",
		ProductID:         3,
		Quantity:          1,
		Price:             decimal.RequireFromString("10"),
		CommissionPercent: decimal.RequireFromString("10"),
	})
	s.Require().NoError(err)
}

func (s *SaleServiceTestSuite) TestCreate_AffiliateNotFound() {
	affiliateID := int64(404)

	s.expectTransaction(1)
	s.expectTXRepos()

	s.mockAffRepo.EXPECT().FindByID(gomock.Any(), affiliateID).Return(nil, domain.ErrRecordNotFound)
	s.mockSaleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	s.mockSink.EXPECT().AppendSale(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Create(context.Background(), CreateSaleArgs{
		AffiliateID:       &affiliateID,
		OrderCode:         "ORD-1004",
		ProductID:         3,
		Quantity:          1,
		Price:             decimal.RequireFromString("10"),
		CommissionPercent: decimal.RequireFromString("10"),
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *SaleServiceTestSuite) TestCreate_InvalidArgs() {
	cases := []struct {
		name string
		args CreateSaleArgs
	}{
		{
			name: "zero quantity",
			args: CreateSaleArgs{Quantity: 0, Price: decimal.RequireFromString("10")},
		},
		{
			name: "negative price",
			args: CreateSaleArgs{Quantity: 1, Price: decimal.RequireFromString("-10")},
		},
		{
			name: "percent out of range",
			args: CreateSaleArgs{
				Quantity:          1,
				Price:             decimal.RequireFromString("10"),
				CommissionPercent: decimal.RequireFromString("101"),
			},
		},
		{
			name: "unknown status",
			args: CreateSaleArgs{
				Quantity: 1,
				Price:    decimal.RequireFromString("10"),
				Status:   domain.SaleStatusType("bogus"),
			},
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.service.Create(context.Background(), t.args)
			s.Require().ErrorIs(err, domain.ErrInvalidArgument)
		})
	}
}

func (s *SaleServiceTestSuite) TestSetStatus_CompleteCreditsOnce() {
	affiliateID := int64(7)
	commission := decimal.RequireFromString("5.10")
	pendingSale := domain.Sale{
		ID:          10,
		AffiliateID: &affiliateID,
		Commission:  commission,
		Status:      domain.SaleStatusPending,
	}
	completedSale := pendingSale
	completedSale.Status = domain.SaleStatusCompleted
	completedSale.UpdatedAt = time.Now()

	s.expectTransaction(2)
	s.expectTXRepos()

	gomock.InOrder(
		s.mockSaleRepo.EXPECT().FindByIDForUpdate(gomock.Any(), pendingSale.ID).
			Return(&pendingSale, nil),
		s.mockSaleRepo.EXPECT().FindByIDForUpdate(gomock.Any(), pendingSale.ID).
			Return(&completedSale, nil),
	)

	// Комиссия зачисляется ровно один раз: повторный запрос того же статуса - no-op.
	s.mockAffRepo.EXPECT().CreditBalance(gomock.Any(), affiliateID, commission).Return(nil).Times(1)
	s.mockSaleRepo.EXPECT().UpdateStatus(gomock.Any(), pendingSale.ID, domain.SaleStatusCompleted).
		Return(&completedSale, nil).Times(1)

	first, err := s.service.SetStatus(context.Background(), pendingSale.ID, domain.SaleStatusCompleted)
	s.Require().NoError(err)
	s.Equal(domain.SaleStatusCompleted, first.Status)

	second, err := s.service.SetStatus(context.Background(), pendingSale.ID, domain.SaleStatusCompleted)
	s.Require().NoError(err)
	s.Equal(domain.SaleStatusCompleted, second.Status)
}

func (s *SaleServiceTestSuite) TestSetStatus_CancelDoesNotTouchBalance() {
	affiliateID := int64(7)
	pendingSale := domain.Sale{
		ID:          11,
		AffiliateID: &affiliateID,
		Commission:  decimal.RequireFromString("5.10"),
		Status:      domain.SaleStatusPending,
	}
	cancelledSale := pendingSale
	cancelledSale.Status = domain.SaleStatusCancelled

	s.expectTransaction(1)
	s.expectTXRepos()

	s.mockSaleRepo.EXPECT().FindByIDForUpdate(gomock.Any(), pendingSale.ID).Return(&pendingSale, nil)
	s.mockAffRepo.EXPECT().CreditBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockSaleRepo.EXPECT().UpdateStatus(gomock.Any(), pendingSale.ID, domain.SaleStatusCancelled).
		Return(&cancelledSale, nil)

	result, err := s.service.SetStatus(context.Background(), pendingSale.ID, domain.SaleStatusCancelled)
	s.Require().NoError(err)
	s.Equal(domain.SaleStatusCancelled, result.Status)
}

func (s *SaleServiceTestSuite) TestSetStatus_TerminalGuard() {
	completedSale := domain.Sale{ID: 12, Status: domain.SaleStatusCompleted}
	pendingSale := domain.Sale{ID: 13, Status: domain.SaleStatusPending}

	s.expectTransaction(1)
	s.expectTXRepos()

	s.mockSaleRepo.EXPECT().FindByIDForUpdate(gomock.Any(), completedSale.ID).Return(&completedSale, nil)
	s.mockSaleRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// из конечного статуса пути нет
	_, err := s.service.SetStatus(context.Background(), completedSale.ID, domain.SaleStatusCancelled)
	s.Require().ErrorIs(err, domain.ErrInvalidState)

	// цель pending отклоняется до открытия транзакции, даже для pending-заявки
	_, err = s.service.SetStatus(context.Background(), pendingSale.ID, domain.SaleStatusPending)
	s.Require().ErrorIs(err, domain.ErrInvalidState)
}

func (s *SaleServiceTestSuite) TestCreatePublicOrder() {
	product := domain.Product{
		ID:                3,
		Name:              "Pandan Cake",
		Price:             decimal.RequireFromString("25.50"),
		CommissionPercent: decimal.RequireFromString("10"),
		Active:            true,
	}
	activeAffiliate := domain.Affiliate{ID: 7, Code: "LODES-AB2C3", Active: true}
	inactiveAffiliate := domain.Affiliate{ID: 8, Code: "LODES-XY9Z7", Active: false}

	s.mockProductRepo.EXPECT().FindByID(gomock.Any(), product.ID).Return(&product, nil).Times(3)
	s.mockProductRepo.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound)

	s.mockAffRepo.EXPECT().FindByCode(gomock.Any(), activeAffiliate.Code).Return(&activeAffiliate, nil)
	s.mockAffRepo.EXPECT().FindByCode(gomock.Any(), inactiveAffiliate.Code).Return(&inactiveAffiliate, nil)
	s.mockAffRepo.EXPECT().FindByCode(gomock.Any(), "LODES-WRONG").Return(nil, domain.ErrRecordNotFound)

	s.expectTransaction(3)
	s.expectTXRepos()

	// статистика инкрементируется только для заказа с активным кодом
	s.mockAffRepo.EXPECT().FindByID(gomock.Any(), activeAffiliate.ID).Return(&activeAffiliate, nil)
	s.mockAffRepo.EXPECT().RegisterSale(gomock.Any(), activeAffiliate.ID, gomock.Any()).Return(nil)

	s.mockSaleRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.SaleCreate) (*domain.Sale, error) {
			s.NotEmpty(createArgs.OrderCode)
			s.Equal(product.Name, createArgs.ProductName)
			return &domain.Sale{ID: 20, AffiliateID: createArgs.AffiliateID, Status: createArgs.Status}, nil
		}).Times(3)
	s.mockSink.EXPECT().AppendSale(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	cases := []struct {
		name          string
		productID     int64
		affiliateCode string
		wantErr       error
		wantLinked    bool
	}{
		{name: "active code links sale", productID: product.ID, affiliateCode: activeAffiliate.Code, wantLinked: true},
		{name: "inactive code is ignored", productID: product.ID, affiliateCode: inactiveAffiliate.Code},
		{name: "unknown code is ignored", productID: product.ID, affiliateCode: "LODES-WRONG"},
		{name: "unknown product", productID: 404, wantErr: domain.ErrRecordNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			sale, err := s.service.CreatePublicOrder(context.Background(), PublicOrderArgs{
				ProductID:     t.productID,
				Quantity:      1,
				CustomerName:  "Mei Lin",
				AffiliateCode: t.affiliateCode,
			})
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
			if t.wantLinked {
				s.Require().NotNil(sale.AffiliateID)
				s.Equal(activeAffiliate.ID, *sale.AffiliateID)
			} else {
				s.Nil(sale.AffiliateID)
			}
		})
	}
}

func (s *SaleServiceTestSuite) TestCreate_SinkFailureDoesNotFailSale() {
	s.expectTransaction(1)
	s.expectTXRepos()

	s.mockSaleRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.SaleCreate) (*domain.Sale, error) {
			return &domain.Sale{ID: 30, Status: createArgs.Status}, nil
		})
	s.mockSink.EXPECT().AppendSale(gomock.Any(), gomock.Any()).
		Return(context.DeadlineExceeded)

	_, err := s.service.Create(context.Background(), CreateSaleArgs{
		OrderCode:         "ORD-1030",
		ProductID:         3,
		Quantity:          1,
		Price:             decimal.RequireFromString("10"),
		CommissionPercent: decimal.RequireFromString("10"),
	})
	s.Require().NoError(err)
}
