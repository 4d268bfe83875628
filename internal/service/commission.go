package service

import (
	"fmt"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/shopspring/decimal"
)

const moneyScale = 2

var hundred = decimal.NewFromInt(100) //nolint:mnd

// Commission вычисляет комиссию партнера: amount * percent / 100.
// Возвращает domain.ErrInvalidArgument для отрицательной суммы или процента
// вне диапазона [0, 100]. Результат НЕ округляется - округление выполняется
// один раз, в момент записи продажи (см. roundMoney), чтобы ошибка округления
// не накапливалась при повторных чтениях.
func Commission(amount, percent decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("commission: negative amount %s: %w", amount, domain.ErrInvalidArgument)
	}
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return decimal.Zero, fmt.Errorf("commission: percent %s out of range: %w", percent, domain.ErrInvalidArgument)
	}
	return amount.Mul(percent).Div(hundred), nil
}

// roundMoney округляет денежное значение до 2 знаков. decimal.Round округляет
// "половину" от нуля, что для неотрицательных денег совпадает с round half up.
func roundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(moneyScale)
}
