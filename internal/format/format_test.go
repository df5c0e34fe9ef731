package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"plain", "1500", "LKR 1,500.00"},
		{"cents kept", "1234.5", "LKR 1,234.50"},
		{"rounds to two digits", "0.005", "LKR 0.01"},
		{"millions", "12345678.91", "LKR 12,345,678.91"},
		{"negative", "-45000.25", "LKR -45,000.25"},
		{"zero", "0", "LKR 0.00"},
		{"non-numeric renders zero", "abc", "LKR 0.00"},
		{"empty renders zero", "", "LKR 0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency("LKR", tt.amount))
		})
	}
}

func TestCurrencyDecimal(t *testing.T) {
	assert.Equal(t, "USD 2,000.00", CurrencyDecimal("USD", decimal.NewFromInt(2000)))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "Mar 05, 2024", Date("2024-03-05", DefaultDateLayout))
	assert.Equal(t, "Mar 05, 2024", Date("2024-03-05T10:30:00Z", DefaultDateLayout))
	assert.Equal(t, "N/A", Date("", DefaultDateLayout))
	assert.Equal(t, "not-a-date", Date("not-a-date", DefaultDateLayout))
}

func TestDateTime(t *testing.T) {
	assert.Equal(t, "Mar 05, 2024 10:30", DateTime("2024-03-05T10:30:00Z"))
}

func TestDueDate(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	iso := func(d time.Time) string { return d.Format(time.RFC3339) }

	tenOut := DueDate(iso(now.AddDate(0, 0, 10)), now)
	assert.Equal(t, DueCurrent, tenOut.Status)
	assert.Equal(t, 10, tenOut.Days)

	threeOut := DueDate(iso(now.AddDate(0, 0, 3)), now)
	assert.Equal(t, DueSoon, threeOut.Status)
	assert.Equal(t, 3, threeOut.Days)

	fivePast := DueDate(iso(now.AddDate(0, 0, -5)), now)
	assert.Equal(t, DueOverdue, fivePast.Status)
	assert.Equal(t, 5, fivePast.Days)

	missing := DueDate("", now)
	assert.Equal(t, DueNone, missing.Status)
	assert.Equal(t, 0, missing.Days)

	garbage := DueDate("not-a-date", now)
	assert.Equal(t, DueNone, garbage.Status)
}

func TestDaysUntilDueCeilsFractions(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	// Due tomorrow morning: a fraction of a day still counts as 1.
	days, ok := DaysUntilDue("2024-03-16", now)
	assert.True(t, ok)
	assert.Equal(t, 1, days)
}

func TestTransactionTypeColor(t *testing.T) {
	assert.Equal(t, colorGreen, TransactionTypeColor("SALE"))
	assert.Equal(t, colorRed, TransactionTypeColor("PURCHASE"))
	assert.Equal(t, colorBlue, TransactionTypeColor("RECEIPT"))
	assert.Equal(t, colorNeutral, TransactionTypeColor("SOMETHING_ELSE"))
}

func TestPaymentTermsColor(t *testing.T) {
	assert.Equal(t, colorGreen, PaymentTermsColor("CASH"))
	assert.Equal(t, colorRed, PaymentTermsColor("CREDIT"))
	assert.Equal(t, colorNeutral, PaymentTermsColor("NET90"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long ...", Truncate("long description", 5))
	assert.Equal(t, "héllo", Truncate("héllo", 5))
}

func pages(items []PageItem) []int {
	out := make([]int, len(items))
	for i, it := range items {
		if it.Gap {
			out[i] = -1
		} else {
			out[i] = it.Page
		}
	}
	return out
}

func TestWindow(t *testing.T) {
	assert.Equal(t, []int{1}, pages(Window(1, 1)))
	assert.Equal(t, []int{1}, pages(Window(1, 0)))
	assert.Equal(t, []int{1, -1, 3, 4, 5, 6, 7, -1, 10}, pages(Window(5, 10)))
	assert.Equal(t, []int{1, 2, 3, -1, 20}, pages(Window(1, 20)))
	assert.Equal(t, []int{1, -1, 18, 19, 20}, pages(Window(20, 20)))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, pages(Window(3, 5)))
}
