package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
)

func TestCommission(t *testing.T) {
	cases := []struct {
		name    string
		amount  string
		percent string
		want    string
		wantErr error
	}{
		{name: "ok", amount: "100", percent: "10", want: "10"},
		{name: "fractional result", amount: "33.33", percent: "10", want: "3.333"},
		{name: "zero percent", amount: "100", percent: "0", want: "0"},
		{name: "full percent", amount: "49.90", percent: "100", want: "49.90"},
		{name: "zero amount", amount: "0", percent: "15", want: "0"},
		{name: "negative amount", amount: "-1", percent: "10", wantErr: domain.ErrInvalidArgument},
		{name: "negative percent", amount: "100", percent: "-5", wantErr: domain.ErrInvalidArgument},
		{name: "percent above 100", amount: "100", percent: "100.01", wantErr: domain.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Commission(decimal.RequireFromString(c.amount), decimal.RequireFromString(c.percent))
			if c.wantErr != nil {
				require.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(c.want).Equal(got), "want %s, got %s", c.want, got)
		})
	}
}

// roundMoney округляет до 2 знаков по правилу половина вверх.
func TestRoundMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "3.333", want: "3.33"},
		{in: "3.335", want: "3.34"},
		{in: "3.3349", want: "3.33"},
		{in: "10", want: "10"},
		{in: "0.005", want: "0.01"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got := roundMoney(decimal.RequireFromString(c.in))
			assert.True(t, decimal.RequireFromString(c.want).Equal(got), "want %s, got %s", c.want, got)
		})
	}
}
