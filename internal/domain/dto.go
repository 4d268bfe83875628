package domain

type RoleType string

const (
	RoleAdmin     RoleType = "admin"
	RoleAffiliate RoleType = "affiliate"
)

type SaleStatusType string

const (
	SaleStatusPending   SaleStatusType = "pending"
	SaleStatusCompleted SaleStatusType = "completed"
	SaleStatusCancelled SaleStatusType = "cancelled"
)

// Terminal возвращает true для конечных статусов продажи. Из конечного статуса
// переходов нет.
func (s SaleStatusType) Terminal() bool {
	return s == SaleStatusCompleted || s == SaleStatusCancelled
}

func (s SaleStatusType) Valid() bool {
	return s == SaleStatusPending || s == SaleStatusCompleted || s == SaleStatusCancelled
}

type WithdrawalStatusType string

const (
	WithdrawalStatusPending  WithdrawalStatusType = "pending"
	WithdrawalStatusPaid     WithdrawalStatusType = "paid"
	WithdrawalStatusRejected WithdrawalStatusType = "rejected"
)

func (s WithdrawalStatusType) Terminal() bool {
	return s == WithdrawalStatusPaid || s == WithdrawalStatusRejected
}
