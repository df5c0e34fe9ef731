package commands

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mystra-dev/ledgerscope/internal/api"
	"github.com/mystra-dev/ledgerscope/internal/fetch"
	"github.com/mystra-dev/ledgerscope/internal/format"
	"github.com/mystra-dev/ledgerscope/internal/model"
	"github.com/mystra-dev/ledgerscope/internal/render"
)

func newCashBookCommand() *cobra.Command {
	var opts ledgerOpts

	cmd := &cobra.Command{
		Use:   "cashbook",
		Short: "Cash book receipts, payments and running balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return runCashBook(cmd.Context(), a, cmd.InOrStdin(), opts)
		},
	}
	addLedgerFlags(cmd, &opts, "account", "filter by account code")
	return cmd
}

// runCashBook lists cash transactions through the server-paginated table
// endpoint, unlike sales/purchase which read their overview payloads.
func runCashBook(ctx context.Context, a *app, in io.Reader, opts ledgerOpts) error {
	if opts.limit <= 0 {
		opts.limit = a.cfg.PageSize
	}

	f := fetch.New(a.store, func(ctx context.Context, page int, filters, headers map[string]string) (*model.Response[model.Page[model.CashTransaction]], error) {
		return a.client.GetCashBookTable(ctx, api.LedgerParams{
			Page:        page,
			Limit:       opts.limit,
			StartDate:   filters["startDate"],
			EndDate:     filters["endDate"],
			AccountCode: filters["accountCode"],
		}, headers)
	})
	f.SetFilter("accountCode", opts.party)
	f.SetFilter("startDate", opts.from)
	f.SetFilter("endDate", opts.to)
	f.SetSearch(opts.search)
	f.SetPage(opts.page)

	show := func(st fetch.State[model.Response[model.Page[model.CashTransaction]]]) int {
		return renderCashBook(a, f, st)
	}
	if opts.interactive {
		return interactiveLoop(ctx, a.out, in, f, show)
	}
	show(f.Fetch(ctx))
	return nil
}

// renderCashBook draws one cash book page and returns the server's page count.
func renderCashBook(a *app, f *fetch.Fetcher[model.Response[model.Page[model.CashTransaction]]], st fetch.State[model.Response[model.Page[model.CashTransaction]]]) int {
	a.r.Title("Cash Book")
	if st.Err == fetch.ErrNotConfigured.Error() {
		a.r.NotConfigured()
		return 0
	}
	if st.Err != "" {
		a.r.Error(st.Err)
		return 0
	}
	if st.Data == nil {
		a.r.Loading()
		return 0
	}

	data := st.Data.Data
	a.r.Cards([]render.Card{
		{Label: "Transactions On Page", Value: strconv.Itoa(len(data.Transactions))},
		{Label: "Total Records", Value: strconv.Itoa(data.Total)},
		{Label: "Total Pages", Value: strconv.Itoa(data.TotalPages)},
	})

	rows := make([][]string, 0, len(data.Transactions))
	for _, t := range data.Transactions {
		if !cashMatches(t, f.Search()) {
			continue
		}
		rows = append(rows, []string{
			a.r.Date(t.TransactionDate),
			t.AccountCode,
			format.Truncate(t.PartyName, 24),
			t.ReferenceNumber,
			a.r.Badge(t.TransactionType, format.TransactionTypeColor(t.TransactionType)),
			flowAmount(a, t.ReceiptAmount),
			flowAmount(a, t.PaymentAmount),
			a.r.Currency(t.RunningBalance),
			format.Truncate(t.Description, 28),
		})
	}
	a.r.Table([]string{"DATE", "ACCOUNT", "PARTY", "REFERENCE", "TYPE", "RECEIPT", "PAYMENT", "BALANCE", "DESCRIPTION"}, rows)
	// Server-paginated endpoint; trust its page math.
	a.r.PaginationFooter(data.PageNum, data.TotalPages, data.Total)
	return data.TotalPages
}

// flowAmount renders a receipt or payment cell. Zero and unparseable flows
// stay blank so each row reads as one-directional.
func flowAmount(a *app, amount string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || !d.IsPositive() {
		return ""
	}
	return a.r.Currency(amount)
}

func cashMatches(t model.CashTransaction, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(t.PartyName, term) ||
		containsFold(t.AccountName, term) ||
		containsFold(t.ReferenceNumber, term) ||
		containsFold(t.Description, term)
}
