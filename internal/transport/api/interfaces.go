package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type AffiliateServicer interface {
	Register(ctx context.Context, args service.RegisterAffiliateArgs) (*domain.Affiliate, string, error)
	Login(ctx context.Context, email, password string) (*domain.Affiliate, string, error)
	FindByID(ctx context.Context, id int64) (*domain.Affiliate, error)
	GetAll(ctx context.Context) ([]domain.Affiliate, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Affiliate, error)
}

type ProductServicer interface {
	Create(ctx context.Context, args service.ProductArgs) (*domain.Product, error)
	Update(ctx context.Context, id int64, args service.ProductArgs) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	GetAll(ctx context.Context, onlyActive bool) ([]domain.Product, error)
}

type SaleServicer interface {
	Create(ctx context.Context, args service.CreateSaleArgs) (*domain.Sale, error)
	CreatePublicOrder(ctx context.Context, args service.PublicOrderArgs) (*domain.Sale, error)
	SetStatus(ctx context.Context, id int64, status domain.SaleStatusType) (*domain.Sale, error)
	GetAll(ctx context.Context) ([]domain.Sale, error)
	GetByAffiliateID(ctx context.Context, affiliateID int64) ([]domain.Sale, error)
}

type WithdrawalServicer interface {
	Create(
		ctx context.Context,
		affiliateID int64,
		amount decimal.Decimal,
		details domain.PaymentInfo,
	) (*domain.Withdrawal, error)
	SetStatus(
		ctx context.Context,
		id int64,
		status domain.WithdrawalStatusType,
		adminNote string,
	) (*domain.Withdrawal, error)
	GetAll(ctx context.Context) ([]domain.Withdrawal, error)
	GetByAffiliateID(ctx context.Context, affiliateID int64) ([]domain.Withdrawal, error)
}
