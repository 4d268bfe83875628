package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
)

type ProductService struct {
	uow         uow.UOW
	productRepo ProductRepository
}

func NewProductService(u uow.UOW) (*ProductService, error) {
	productRepo, err := uow.GetRepositoryAs[ProductRepository](u, uow.RepositoryName(repoargs.ProductRepoName))
	if err != nil {
		return nil, err
	}
	return &ProductService{
		uow:         u,
		productRepo: productRepo,
	}, nil
}

type ProductArgs struct {
	Name              string
	Description       string
	Price             decimal.Decimal
	CommissionPercent decimal.Decimal
	Active            bool
}

func (s *ProductService) Create(ctx context.Context, args ProductArgs) (*domain.Product, error) {
	if err := validateProductArgs(args); err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	product, err := s.productRepo.Create(ctx, repoargs.ProductCreate{
		Name:              args.Name,
		Description:       args.Description,
		Price:             args.Price,
		CommissionPercent: args.CommissionPercent,
		Active:            args.Active,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, args ProductArgs) (*domain.Product, error) {
	if err := validateProductArgs(args); err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}
	product, err := s.productRepo.Update(ctx, repoargs.ProductUpdate{
		ID:                id,
		Name:              args.Name,
		Description:       args.Description,
		Price:             args.Price,
		CommissionPercent: args.CommissionPercent,
		Active:            args.Active,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return product, nil
}

func (s *ProductService) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return product, nil
}

func (s *ProductService) GetAll(ctx context.Context, onlyActive bool) ([]domain.Product, error) {
	products, err := s.productRepo.GetAll(ctx, onlyActive)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return products, nil
}

func validateProductArgs(args ProductArgs) error {
	if !args.Price.IsPositive() {
		return fmt.Errorf("non-positive price %s: %w", args.Price, domain.ErrInvalidArgument)
	}
	if args.CommissionPercent.IsNegative() || args.CommissionPercent.GreaterThan(hundred) {
		return fmt.Errorf("percent %s out of range: %w", args.CommissionPercent, domain.ErrInvalidArgument)
	}
	return nil
}
