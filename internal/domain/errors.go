package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidState     = errors.New("invalid state transition")
	ErrNotEnoughBalance = errors.New("not enough balance")
)

// BelowMinimumError сумма вывода меньше сконфигурированного порога.
type BelowMinimumError struct {
	Minimum decimal.Decimal
}

func NewBelowMinimumError(minimum decimal.Decimal) error {
	return &BelowMinimumError{Minimum: minimum}
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("withdrawal amount is below the minimum of %s", e.Minimum.StringFixed(2)) //nolint:mnd
}
