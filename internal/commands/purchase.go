package commands

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mystra-dev/ledgerscope/internal/api"
	"github.com/mystra-dev/ledgerscope/internal/fetch"
	"github.com/mystra-dev/ledgerscope/internal/format"
	"github.com/mystra-dev/ledgerscope/internal/model"
	"github.com/mystra-dev/ledgerscope/internal/render"
)

func newPurchaseCommand() *cobra.Command {
	var opts ledgerOpts

	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Purchase ledger transactions and supplier balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return runPurchase(cmd.Context(), a, cmd.InOrStdin(), opts)
		},
	}
	addLedgerFlags(cmd, &opts, "supplier", "filter by supplier ID")
	return cmd
}

func runPurchase(ctx context.Context, a *app, in io.Reader, opts ledgerOpts) error {
	if opts.limit <= 0 {
		opts.limit = a.cfg.PageSize
	}

	f := fetch.New(a.store, func(ctx context.Context, page int, filters, headers map[string]string) (*model.Response[model.PurchaseLedgerData], error) {
		return a.client.GetPurchaseLedger(ctx, api.LedgerParams{
			Page:       page,
			Limit:      opts.limit,
			StartDate:  filters["startDate"],
			EndDate:    filters["endDate"],
			SupplierID: filters["supplierId"],
		}, headers)
	})
	f.SetFilter("supplierId", opts.party)
	f.SetFilter("startDate", opts.from)
	f.SetFilter("endDate", opts.to)
	f.SetSearch(opts.search)
	f.SetPage(opts.page)

	show := func(st fetch.State[model.Response[model.PurchaseLedgerData]]) int {
		return renderPurchase(a, f, st, opts.limit)
	}
	if opts.interactive {
		return interactiveLoop(ctx, a.out, in, f, show)
	}
	show(f.Fetch(ctx))
	return nil
}

// renderPurchase draws one purchase ledger state and returns the derived
// page count.
func renderPurchase(a *app, f *fetch.Fetcher[model.Response[model.PurchaseLedgerData]], st fetch.State[model.Response[model.PurchaseLedgerData]], limit int) int {
	a.r.Title("Purchase Ledger")
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
		{Label: "Total Purchase Balance", Value: a.r.Currency(data.TotalBalance)},
		{Label: "Total Suppliers", Value: strconv.Itoa(data.TotalSuppliers)},
		{Label: "Total Transactions", Value: strconv.Itoa(data.TotalTransactions)},
	})

	now := time.Now()
	rows := make([][]string, 0, len(data.Transactions))
	for _, t := range data.Transactions {
		if !purchaseMatches(t, f.Search()) {
			continue
		}
		due := format.DueDate(t.DueDate, now)
		rows = append(rows, []string{
			a.r.Date(t.TransactionDate),
			format.Truncate(t.SupplierName, 24),
			a.r.Badge(t.TransactionType, format.TransactionTypeColor(t.TransactionType)),
			t.ReferenceNumber,
			a.r.Currency(t.NetAmount),
			a.r.Currency(t.RunningBalance),
			a.r.Badge(t.PaymentTerms, format.PaymentTermsColor(t.PaymentTerms)),
			dueLabel(a, t.DueDate, due),
		})
	}
	a.r.Table([]string{"DATE", "SUPPLIER", "TYPE", "REFERENCE", "NET", "BALANCE", "TERMS", "DUE"}, rows)
	pages := pageCount(data.TotalTransactions, limit)
	a.r.PaginationFooter(f.Page(), pages, data.TotalTransactions)
	return pages
}

func purchaseMatches(t model.PurchaseTransaction, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(t.SupplierName, term) ||
		containsFold(t.ReferenceNumber, term) ||
		containsFold(t.Description, term)
}
