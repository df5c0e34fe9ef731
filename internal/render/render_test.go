package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableAligned(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "LKR", "Jan 02, 2006", false)

	r.Table(
		[]string{"DATE", "CUSTOMER", "AMOUNT"},
		[][]string{
			{"Mar 05, 2024", "Acme", "LKR 1,500.00"},
			{"Mar 06, 2024", "Globex Corporation", "LKR 25.00"},
		},
	)

	out := buf.String()
	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "Globex Corporation")
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 3)
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "LKR", "Jan 02, 2006", false)
	r.Table([]string{"A"}, nil)
	assert.Contains(t, buf.String(), "(no records)")
}

func TestBadgeColorToggle(t *testing.T) {
	var buf bytes.Buffer
	colored := New(&buf, "LKR", "Jan 02, 2006", true)
	plain := New(&buf, "LKR", "Jan 02, 2006", false)

	assert.Equal(t, "\x1b[32mSALE\x1b[0m", colored.Badge("SALE", "\x1b[32m"))
	assert.Equal(t, "SALE", plain.Badge("SALE", "\x1b[32m"))
	assert.Equal(t, "X", colored.Badge("X", ""))
}

func TestPaginationFooter(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "LKR", "Jan 02, 2006", false)

	r.PaginationFooter(5, 10, 97)
	out := buf.String()
	assert.Contains(t, out, "1 ... 3 4 [5] 6 7 ... 10")
	assert.Contains(t, out, "97 records")
	assert.Contains(t, out, "p: prev")
	assert.Contains(t, out, "n: next")
}

func TestPaginationFooterSuppressedForSinglePage(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "LKR", "Jan 02, 2006", false)
	r.PaginationFooter(1, 1, 4)
	assert.Empty(t, buf.String())
}

func TestPaginationFooterEdgesDisableHints(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "LKR", "Jan 02, 2006", false)
	r.PaginationFooter(1, 3, 30)
	out := buf.String()
	assert.NotContains(t, out, "p: prev")
	assert.Contains(t, out, "n: next")

	buf.Reset()
	r.PaginationFooter(3, 3, 30)
	out = buf.String()
	assert.Contains(t, out, "p: prev")
	assert.NotContains(t, out, "n: next")
}

func TestCurrencyAndDateUseConfig(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "USD", "2006-01-02", false)
	assert.Equal(t, "USD 12.00", r.Currency("12"))
	assert.Equal(t, "2024-03-05", r.Date("2024-03-05T00:00:00Z"))
}

func TestCards(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "LKR", "Jan 02, 2006", false)
	r.Cards([]Card{
		{Label: "Total Sales Balance", Value: "LKR 1,500.00"},
		{Label: "Total Customers", Value: "3"},
	})
	out := buf.String()
	assert.Contains(t, out, "Total Sales Balance:")
	assert.Contains(t, out, "3")
}
