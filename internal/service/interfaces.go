package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type AffiliateRepository interface {
	Create(ctx context.Context, args repoargs.AffiliateCreate) (*domain.Affiliate, error)
	FindByID(ctx context.Context, id int64) (*domain.Affiliate, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Affiliate, error)
	FindByEmail(ctx context.Context, email string) (*domain.Affiliate, error)
	FindByCode(ctx context.Context, code string) (*domain.Affiliate, error)
	GetAll(ctx context.Context) ([]domain.Affiliate, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Affiliate, error)
	RegisterSale(ctx context.Context, id int64, commission decimal.Decimal) error
	CreditBalance(ctx context.Context, id int64, amount decimal.Decimal) error
	DebitBalance(ctx context.Context, id int64, amount decimal.Decimal) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProductRepository interface {
	Create(ctx context.Context, args repoargs.ProductCreate) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	GetAll(ctx context.Context, onlyActive bool) ([]domain.Product, error)
	Update(ctx context.Context, args repoargs.ProductUpdate) (*domain.Product, error)
}

type SaleRepository interface {
	Create(ctx context.Context, args repoargs.SaleCreate) (*domain.Sale, error)
	FindByID(ctx context.Context, id int64) (*domain.Sale, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Sale, error)
	GetAll(ctx context.Context) ([]domain.Sale, error)
	GetByAffiliateID(ctx context.Context, affiliateID int64) ([]domain.Sale, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SaleStatusType) (*domain.Sale, error)
}

type WithdrawalRepository interface {
	Create(ctx context.Context, args repoargs.WithdrawalCreate) (*domain.Withdrawal, error)
	FindByID(ctx context.Context, id int64) (*domain.Withdrawal, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Withdrawal, error)
	GetAll(ctx context.Context) ([]domain.Withdrawal, error)
	GetByAffiliateID(ctx context.Context, affiliateID int64) ([]domain.Withdrawal, error)
	UpdateStatus(ctx context.Context, args repoargs.WithdrawalStatusUpdate) (*domain.Withdrawal, error)
}

// SaleSink внешний приемник бухгалтерских записей о продажах. Запись
// best-effort: ошибка приемника логируется и никогда не отменяет продажу.
type SaleSink interface {
	AppendSale(ctx context.Context, sale domain.Sale) error
}
