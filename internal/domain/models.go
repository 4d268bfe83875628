package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

// User администратор системы. Партнеры хранятся отдельно (Affiliate).
type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Password  string
	Role      RoleType
}

// Affiliate партнер, привлекающий покупателей по своему коду.
// Balance - доступные для вывода средства, TotalEarnings - комиссия за все время.
// Инвариант: 0 <= Balance <= TotalEarnings.
type Affiliate struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Name          string
	Email         string
	Password      string
	Phone         string
	Code          string
	Active        bool
	Balance       decimal.Decimal
	TotalEarnings decimal.Decimal
	TotalSales    int64
	PaymentInfo   PaymentInfo
}

// PaymentInfo платежные реквизиты партнера. Для леджера это непрозрачные данные.
type PaymentInfo struct {
	BankName      string
	AccountNumber string
	AccountHolder string
	EwalletType   string
}

type Product struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Name              string
	Description       string
	Price             decimal.Decimal
	CommissionPercent decimal.Decimal
	Active            bool
}

// Sale продажа. AffiliateID может быть nil - заказ без реферального кода.
// Commission = Amount * CommissionPercent / 100, округлена до 2 знаков при записи.
type Sale struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
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
	Status            SaleStatusType
}

// Withdrawal заявка партнера на вывод средств. Сумма резервируется на балансе
// в момент создания заявки и возвращается при отклонении.
type Withdrawal struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AffiliateID    int64
	Amount         decimal.Decimal
	PaymentDetails PaymentInfo
	AdminNote      string
	Status         WithdrawalStatusType
	ProcessedAt    *time.Time
}
