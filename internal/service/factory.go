package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
)

type AppServices struct {
	UserService       *UserService
	AffiliateService  *AffiliateService
	ProductService    *ProductService
	SaleService       *SaleService
	WithdrawalService *WithdrawalService
}

type FactoryArgs struct {
	JWTSecret     []byte
	MinWithdrawal decimal.Decimal
	Sink          SaleSink
	Logger        logrus.FieldLogger
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, args.JWTSecret)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	affiliateService, affiliateServiceErr := NewAffiliateService(unitOfWork, args.JWTSecret)
	if affiliateServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", affiliateServiceErr.Error())
	}

	productService, productServiceErr := NewProductService(unitOfWork)
	if productServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", productServiceErr.Error())
	}

	saleService, saleServiceErr := NewSaleService(unitOfWork, args.Sink, args.Logger)
	if saleServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", saleServiceErr.Error())
	}

	withdrawalService, withdrawalServiceErr := NewWithdrawalService(unitOfWork, args.MinWithdrawal)
	if withdrawalServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", withdrawalServiceErr.Error())
	}

	return &AppServices{
		UserService:       userService,
		AffiliateService:  affiliateService,
		ProductService:    productService,
		SaleService:       saleService,
		WithdrawalService: withdrawalService,
	}, nil
}
