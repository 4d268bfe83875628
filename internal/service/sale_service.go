package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
)

const sinkTimeout = 5 * time.Second

type SaleService struct {
	uow      uow.UOW
	saleRepo SaleRepository
	sink     SaleSink
	l        logrus.FieldLogger
}

// NewSaleService создает сервис продаж. sink может быть nil - тогда
// бухгалтерская запись не ведется.
func NewSaleService(u uow.UOW, sink SaleSink, l logrus.FieldLogger) (*SaleService, error) {
	saleRepo, err := uow.GetRepositoryAs[SaleRepository](u, uow.RepositoryName(repoargs.SaleRepoName))
	if err != nil {
		return nil, err
	}
	return &SaleService{
		uow:      u,
		saleRepo: saleRepo,
		sink:     sink,
		l:        l,
	}, nil
}

type CreateSaleArgs struct {
	AffiliateID       *int64
	OrderCode         string
	ProductID         int64
	ProductName       string
	CustomerName      string
	CustomerPhone     string
	CustomerAddress   string
	Quantity          int32
	Price             decimal.Decimal
	CommissionPercent decimal.Decimal
	Status            domain.SaleStatusType
}

// Create создает продажу и фиксирует ее в статистике партнера одной транзакцией.
//
// Двухфазное начисление комиссии:
//  1. При создании инкрементируются total_sales и total_earnings партнера.
//     Баланс НЕ меняется - комиссия еще не доступна для вывода.
//  2. Баланс пополняется только при переходе продажи в статус completed (см. SetStatus).
//
// Исключение - продажа, созданная сразу в статусе completed: комиссия
// зачисляется на баланс немедленно.
//
// После успешного коммита строка продажи отправляется во внешний бухгалтерский
// приемник. Ошибка приемника логируется и не влияет на результат.
func (s *SaleService) Create(ctx context.Context, args CreateSaleArgs) (*domain.Sale, error) {
	if args.Quantity <= 0 {
		return nil, fmt.Errorf("creating sale: non-positive quantity %d: %w", args.Quantity, domain.ErrInvalidArgument)
	}
	if !args.Price.IsPositive() {
		return nil, fmt.Errorf("creating sale: non-positive price %s: %w", args.Price, domain.ErrInvalidArgument)
	}
	status := args.Status
	if status == "" {
		status = domain.SaleStatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("creating sale: unknown status `%s`: %w", status, domain.ErrInvalidArgument)
	}

	orderCode := args.OrderCode
	if orderCode == "" {
		orderCode = newOrderCode()
	}

	amount := args.Price.Mul(decimal.NewFromInt32(args.Quantity))
	commission, commissionErr := Commission(amount, args.CommissionPercent)
	if commissionErr != nil {
		return nil, fmt.Errorf("creating sale: %w", commissionErr)
	}
	commission = roundMoney(commission)

	var sale *domain.Sale
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		saleRepo, saleRepoErr := uow.GetAs[SaleRepository](tx, uow.RepositoryName(repoargs.SaleRepoName))
		if saleRepoErr != nil {
			return saleRepoErr //nolint:wrapcheck
		}

		var affiliateCode string
		if args.AffiliateID != nil {
			affRepo, affRepoErr := uow.GetAs[AffiliateRepository](tx, uow.RepositoryName(repoargs.AffiliateRepoName))
			if affRepoErr != nil {
				return affRepoErr //nolint:wrapcheck
			}
			affiliate, affErr := affRepo.FindByID(c, *args.AffiliateID)
			if affErr != nil {
				return affErr //nolint:wrapcheck
			}
			affiliateCode = affiliate.Code

			if regErr := affRepo.RegisterSale(c, affiliate.ID, commission); regErr != nil {
				return regErr //nolint:wrapcheck
			}
			if status == domain.SaleStatusCompleted {
				if creditErr := affRepo.CreditBalance(c, affiliate.ID, commission); creditErr != nil {
					return creditErr //nolint:wrapcheck
				}
			}
		}

		var createErr error
		sale, createErr = saleRepo.Create(c, repoargs.SaleCreate{
			OrderCode:         orderCode,
			AffiliateID:       args.AffiliateID,
			AffiliateCode:     affiliateCode,
			ProductID:         args.ProductID,
			ProductName:       args.ProductName,
			CustomerName:      args.CustomerName,
			CustomerPhone:     args.CustomerPhone,
			CustomerAddress:   args.CustomerAddress,
			Quantity:          args.Quantity,
			Price:             args.Price,
			Amount:            amount,
			CommissionPercent: args.CommissionPercent,
			Commission:        commission,
			Status:            status,
		})
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("creating sale: %w", txErr)
	}

	s.appendToSink(sale)
	return sale, nil
}

type PublicOrderArgs struct {
	ProductID       int64
	Quantity        int32
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	AffiliateCode   string
}

// CreatePublicOrder оформляет заказ покупателя. Цена и процент комиссии
// берутся из продукта. Неизвестный или деактивированный реферальный код не
// является ошибкой - продажа просто создается без партнера.
func (s *SaleService) CreatePublicOrder(ctx context.Context, args PublicOrderArgs) (*domain.Sale, error) {
	productRepo, productRepoErr :=
		uow.GetRepositoryAs[ProductRepository](s.uow, uow.RepositoryName(repoargs.ProductRepoName))
	if productRepoErr != nil {
		return nil, productRepoErr //nolint:wrapcheck
	}

	product, productErr := productRepo.FindByID(ctx, args.ProductID)
	if productErr != nil {
		return nil, fmt.Errorf("creating public order: %w", productErr)
	}

	var affiliateID *int64
	if args.AffiliateCode != "" {
		affRepo, affRepoErr :=
			uow.GetRepositoryAs[AffiliateRepository](s.uow, uow.RepositoryName(repoargs.AffiliateRepoName))
		if affRepoErr != nil {
			return nil, affRepoErr //nolint:wrapcheck
		}
		affiliate, affErr := affRepo.FindByCode(ctx, args.AffiliateCode)
		switch {
		case affErr == nil && affiliate.Active:
			affiliateID = &affiliate.ID
		case affErr != nil && !errors.Is(affErr, domain.ErrRecordNotFound):
			return nil, fmt.Errorf("creating public order: %w", affErr)
		}
	}

	return s.Create(ctx, CreateSaleArgs{
		AffiliateID:       affiliateID,
		OrderCode:         newOrderCode(),
		ProductID:         product.ID,
		ProductName:       product.Name,
		CustomerName:      args.CustomerName,
		CustomerPhone:     args.CustomerPhone,
		CustomerAddress:   args.CustomerAddress,
		Quantity:          args.Quantity,
		Price:             product.Price,
		CommissionPercent: product.CommissionPercent,
	})
}

// SetStatus переводит продажу в новый статус.
//
// Машина состояний: pending -> completed | cancelled, оба конечные.
// Повторная установка текущего конечного статуса - no-op (идемпотентность:
// два запроса "completed" подряд не зачислят комиссию дважды). Целевой статус
// pending, равно как и любой другой переход из конечного статуса,
// отклоняется с domain.ErrInvalidState.
//
// При переходе pending -> completed комиссия зачисляется на баланс партнера.
// Отмена баланс не меняет и накопленную total_earnings не откатывает - это
// зафиксированное поведение, согласованное с владельцем продукта.
func (s *SaleService) SetStatus(
	ctx context.Context,
	id int64,
	status domain.SaleStatusType,
) (*domain.Sale, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("setting sale status: unknown status `%s`: %w", status, domain.ErrInvalidArgument)
	}
	if status == domain.SaleStatusPending {
		return nil, fmt.Errorf("setting sale status: target `%s`: %w", status, domain.ErrInvalidState)
	}

	var result *domain.Sale
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		saleRepo, saleRepoErr := uow.GetAs[SaleRepository](tx, uow.RepositoryName(repoargs.SaleRepoName))
		if saleRepoErr != nil {
			return saleRepoErr //nolint:wrapcheck
		}

		sale, saleErr := saleRepo.FindByIDForUpdate(c, id)
		if saleErr != nil {
			return saleErr //nolint:wrapcheck
		}

		if sale.Status == status {
			result = sale
			return nil
		}
		if sale.Status.Terminal() {
			return fmt.Errorf("sale %d: transition %s -> %s: %w", id, sale.Status, status, domain.ErrInvalidState)
		}

		if status == domain.SaleStatusCompleted && sale.AffiliateID != nil {
			affRepo, affRepoErr := uow.GetAs[AffiliateRepository](tx, uow.RepositoryName(repoargs.AffiliateRepoName))
			if affRepoErr != nil {
				return affRepoErr //nolint:wrapcheck
			}
			if creditErr := affRepo.CreditBalance(c, *sale.AffiliateID, sale.Commission); creditErr != nil {
				return creditErr //nolint:wrapcheck
			}
		}

		var updErr error
		result, updErr = saleRepo.UpdateStatus(c, id, status)
		return updErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("setting sale status: %w", txErr)
	}
	return result, nil
}

func (s *SaleService) GetAll(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.saleRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return sales, nil
}

// GetByAffiliateID возвращает продажи партнера, отсортированные по дате создания по убыванию.
func (s *SaleService) GetByAffiliateID(ctx context.Context, affiliateID int64) ([]domain.Sale, error) {
	sales, err := s.saleRepo.GetByAffiliateID(ctx, affiliateID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return sales, nil
}

// appendToSink отправляет продажу во внешний бухгалтерский приемник.
// Ошибки проглатываются и только логируются: запись не входит в
// транзакционную гарантию продажи.
func (s *SaleService) appendToSink(sale *domain.Sale) {
	if s.sink == nil || sale == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
	defer cancel()

	if err := s.sink.AppendSale(ctx, *sale); err != nil {
		s.l.WithError(err).WithField("saleID", sale.ID).Warn("append sale to bookkeeping sink")
	}
}

func newOrderCode() string {
	return fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
}
