// Package format holds the pure formatting and derivation helpers shared by
// every ledger view. Nothing here touches the network or mutates state.
package format

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mystra-dev/ledgerscope/internal/model"
)

// Display layouts applied to server dates.
const (
	DefaultDateLayout     = "Jan 02, 2006"
	DefaultDateTimeLayout = "Jan 02, 2006 15:04"
)

// datePlaceholder is rendered for a missing date value.
const datePlaceholder = "N/A"

// Currency renders a decimal-string amount with the given currency code,
// two fraction digits and thousands separators. Anything unparseable renders
// as the zero amount rather than an error.
func Currency(code, amount string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		d = decimal.Zero
	}
	return code + " " + groupThousands(d.StringFixed(2))
}

// CurrencyDecimal renders an already-parsed amount.
func CurrencyDecimal(code string, d decimal.Decimal) string {
	return code + " " + groupThousands(d.StringFixed(2))
}

// groupThousands inserts comma separators into a fixed-point decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "." + fracPart
}

// dateLayouts are the accepted wire formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 date string.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date renders a server date in the given display layout. A missing value
// renders as the placeholder; an unparseable one is returned unchanged so the
// raw value stays visible.
func Date(s, layout string) string {
	if s == "" {
		return datePlaceholder
	}
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format(layout)
}

// DateTime renders a server timestamp with the default datetime layout.
func DateTime(s string) string {
	return Date(s, DefaultDateTimeLayout)
}

// DueStatus buckets a due date relative to now.
type DueStatus string

const (
	DueOverdue DueStatus = "overdue"
	DueSoon    DueStatus = "due-soon"
	DueCurrent DueStatus = "current"
	// DueNone marks a transaction with no (or unparseable) due date. Kept
	// distinct from DueCurrent so "no due date" never reads as "due today".
	DueNone DueStatus = "no-due-date"
)

// DueDateInfo is the derived due-date classification for one transaction.
type DueDateInfo struct {
	Status DueStatus
	Days   int // positive magnitude for overdue, days remaining otherwise
	Color  string
}

// DaysUntilDue returns the signed whole-day distance from now to the due
// date, rounding day fractions up. ok is false for a missing or unparseable
// date, in which case days is 0.
func DaysUntilDue(dueDate string, now time.Time) (days int, ok bool) {
	if dueDate == "" {
		return 0, false
	}
	due, parsed := ParseDate(dueDate)
	if !parsed {
		return 0, false
	}
	diff := due.Sub(now)
	return int(math.Ceil(diff.Hours() / 24)), true
}

// DueDate classifies a due date: negative days are overdue (magnitude
// reported positive), 0..7 days out is due-soon, beyond that current.
func DueDate(dueDate string, now time.Time) DueDateInfo {
	days, ok := DaysUntilDue(dueDate, now)
	if !ok {
		return DueDateInfo{Status: DueNone, Days: 0, Color: colorNeutral}
	}
	switch {
	case days < 0:
		return DueDateInfo{Status: DueOverdue, Days: -days, Color: colorRed}
	case days <= 7:
		return DueDateInfo{Status: DueSoon, Days: days, Color: colorYellow}
	default:
		return DueDateInfo{Status: DueCurrent, Days: days, Color: colorGreen}
	}
}

// ANSI styles used for badges. Neutral is a dim gray, never an error.
const (
	colorGreen   = "\x1b[32m"
	colorRed     = "\x1b[31m"
	colorBlue    = "\x1b[34m"
	colorYellow  = "\x1b[33m"
	colorMagenta = "\x1b[35m"
	colorNeutral = "\x1b[90m"

	// ColorReset ends any style emitted by the lookups below.
	ColorReset = "\x1b[0m"
)

var transactionTypeColors = map[model.TransactionType]string{
	model.TypeSale:     colorGreen,
	model.TypePurchase: colorRed,
	model.TypeReceipt:  colorBlue,
	model.TypePayment:  colorYellow,
}

// TransactionTypeColor maps a transaction type to its badge style. Unknown
// codes get the neutral style.
func TransactionTypeColor(transactionType string) string {
	if c, ok := transactionTypeColors[model.TransactionType(transactionType)]; ok {
		return c
	}
	return colorNeutral
}

var paymentTermsColors = map[model.PaymentTerms]string{
	model.TermsCash:   colorGreen,
	model.TermsNet15:  colorYellow,
	model.TermsNet30:  colorMagenta,
	model.TermsCredit: colorRed,
}

// PaymentTermsColor maps payment terms to their badge style. Unknown codes
// get the neutral style.
func PaymentTermsColor(terms string) string {
	if c, ok := paymentTermsColors[model.PaymentTerms(terms)]; ok {
		return c
	}
	return colorNeutral
}

// Truncate shortens text to maxLen runes, appending an ellipsis when cut.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
