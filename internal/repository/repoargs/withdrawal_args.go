package repoargs

import (
	"time"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/shopspring/decimal"
)

type WithdrawalCreate struct {
	AffiliateID    int64
	Amount         decimal.Decimal
	PaymentDetails domain.PaymentInfo
}

type WithdrawalStatusUpdate struct {
	ID          int64
	Status      domain.WithdrawalStatusType
	AdminNote   string
	ProcessedAt *time.Time
}
