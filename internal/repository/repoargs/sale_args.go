package repoargs

import (
	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/shopspring/decimal"
)

type SaleCreate struct {
	OrderCode         string
	AffiliateID       *int64
	AffiliateCode     string
	ProductID         int64
	ProductName       string
	CustomerName      string
	CustomerPhone     string
	CustomerAddress   string
	Quantity          int32
	Price             decimal.Decimal
	Amount            decimal.Decimal
	CommissionPercent decimal.Decimal
	Commission        decimal.Decimal
	Status            domain.SaleStatusType
}
