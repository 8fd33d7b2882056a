package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOutstanding(t *testing.T) {
	tests := []struct {
		name string
		txn  Transaction
		want string
	}{
		{
			name: "partial payment",
			txn: Transaction{
				Amount:        decimal.NewFromInt(500),
				AmountPaid:    decimal.NewFromInt(300),
				PaymentStatus: PaymentPartial,
			},
			want: "200",
		},
		{
			name: "fully paid",
			txn: Transaction{
				Amount:        decimal.NewFromInt(500),
				AmountPaid:    decimal.NewFromInt(500),
				PaymentStatus: PaymentPaid,
			},
			want: "0",
		},
		{
			name: "credit owes everything",
			txn: Transaction{
				Amount:        decimal.NewFromInt(750),
				PaymentStatus: PaymentCredit,
			},
			want: "750",
		},
		{
			name: "overpaid data clamps to zero",
			txn: Transaction{
				Amount:        decimal.NewFromInt(100),
				AmountPaid:    decimal.NewFromInt(150),
				PaymentStatus: PaymentPartial,
			},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txn.Outstanding().String())
		})
	}
}

func TestNormalizeDefaultsToPaid(t *testing.T) {
	txn := Transaction{Amount: decimal.NewFromInt(400)}
	txn.Normalize()

	assert.Equal(t, PaymentPaid, txn.PaymentStatus)
	assert.True(t, txn.AmountPaid.Equal(txn.Amount))
	assert.True(t, txn.Outstanding().IsZero())
}

func TestNormalizeCreditClearsAmountPaid(t *testing.T) {
	txn := Transaction{
		Amount:        decimal.NewFromInt(400),
		AmountPaid:    decimal.NewFromInt(100),
		PaymentStatus: PaymentCredit,
	}
	txn.Normalize()

	assert.True(t, txn.AmountPaid.IsZero())
	assert.Equal(t, "400", txn.Outstanding().String())
}

func TestMarkPaid(t *testing.T) {
	txn := Transaction{
		Amount:        decimal.NewFromInt(250),
		PaymentStatus: PaymentCredit,
	}
	txn.MarkPaid()

	assert.Equal(t, PaymentPaid, txn.PaymentStatus)
	assert.True(t, txn.Outstanding().IsZero())
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, "1234.56", ParseAmount("1,234.56").String())
	assert.Equal(t, "100", ParseAmount(" 100 ").String())
	assert.True(t, ParseAmount("abc").IsZero())
	assert.True(t, ParseAmount("").IsZero())
}
