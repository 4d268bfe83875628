package repoargs

import "github.com/shopspring/decimal"

type ProductCreate struct {
	Name              string
	Description       string
	Price             decimal.Decimal
	CommissionPercent decimal.Decimal
	Active            bool
}

type ProductUpdate struct {
	ID                int64
	Name              string
	Description       string
	Price             decimal.Decimal
	CommissionPercent decimal.Decimal
	Active            bool
}
