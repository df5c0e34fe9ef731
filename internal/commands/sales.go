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

type ledgerOpts struct {
	page        int
	limit       int
	party       string // customer/supplier/account filter
	from        string
	to          string
	search      string
	interactive bool
}

func addLedgerFlags(cmd *cobra.Command, opts *ledgerOpts, partyFlag, partyUsage string) {
	cmd.Flags().IntVar(&opts.page, "page", 1, "page number (1-indexed)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "records per page (default from config)")
	cmd.Flags().StringVar(&opts.party, partyFlag, "", partyUsage)
	cmd.Flags().StringVar(&opts.from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.search, "search", "", "filter the current page by name, reference or description")
	cmd.Flags().BoolVar(&opts.interactive, "interactive", false, "page through results interactively")
}

func newSalesCommand() *cobra.Command {
	var opts ledgerOpts

	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Sales ledger transactions and customer balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return runSales(cmd.Context(), a, cmd.InOrStdin(), opts)
		},
	}
	addLedgerFlags(cmd, &opts, "customer", "filter by customer ID")
	return cmd
}

func runSales(ctx context.Context, a *app, in io.Reader, opts ledgerOpts) error {
	if opts.limit <= 0 {
		opts.limit = a.cfg.PageSize
	}

	f := fetch.New(a.store, func(ctx context.Context, page int, filters, headers map[string]string) (*model.Response[model.SalesLedgerData], error) {
		return a.client.GetSalesLedger(ctx, api.LedgerParams{
			Page:       page,
			Limit:      opts.limit,
			StartDate:  filters["startDate"],
			EndDate:    filters["endDate"],
			CustomerID: filters["customerId"],
		}, headers)
	})
	f.SetFilter("customerId", opts.party)
	f.SetFilter("startDate", opts.from)
	f.SetFilter("endDate", opts.to)
	f.SetSearch(opts.search)
	f.SetPage(opts.page)

	show := func(st fetch.State[model.Response[model.SalesLedgerData]]) int {
		return renderSales(a, f, st, opts.limit)
	}
	if opts.interactive {
		return interactiveLoop(ctx, a.out, in, f, show)
	}
	show(f.Fetch(ctx))
	return nil
}

// renderSales draws one sales ledger state and returns the derived page count.
func renderSales(a *app, f *fetch.Fetcher[model.Response[model.SalesLedgerData]], st fetch.State[model.Response[model.SalesLedgerData]], limit int) int {
	a.r.Title("Sales Ledger")
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
		{Label: "Total Sales Balance", Value: a.r.Currency(data.TotalBalance)},
		{Label: "Total Customers", Value: strconv.Itoa(data.TotalCustomers)},
		{Label: "Total Transactions", Value: strconv.Itoa(data.TotalTransactions)},
	})

	now := time.Now()
	rows := make([][]string, 0, len(data.Transactions))
	for _, t := range data.Transactions {
		if !salesMatches(t, f.Search()) {
			continue
		}
		due := format.DueDate(t.DueDate, now)
		rows = append(rows, []string{
			a.r.Date(t.TransactionDate),
			format.Truncate(t.CustomerName, 24),
			a.r.Badge(t.TransactionType, format.TransactionTypeColor(t.TransactionType)),
			t.ReferenceNumber,
			a.r.Currency(t.NetAmount),
			a.r.Currency(t.RunningBalance),
			a.r.Badge(t.PaymentTerms, format.PaymentTermsColor(t.PaymentTerms)),
			dueLabel(a, t.DueDate, due),
		})
	}
	a.r.Table([]string{"DATE", "CUSTOMER", "TYPE", "REFERENCE", "NET", "BALANCE", "TERMS", "DUE"}, rows)
	pages := pageCount(data.TotalTransactions, limit)
	a.r.PaginationFooter(f.Page(), pages, data.TotalTransactions)
	return pages
}

func salesMatches(t model.SalesTransaction, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(t.CustomerName, term) ||
		containsFold(t.ReferenceNumber, term) ||
		containsFold(t.Description, term)
}

// dueLabel renders the due date with its derived status badge.
func dueLabel(a *app, dueDate string, info format.DueDateInfo) string {
	switch info.Status {
	case format.DueNone:
		return a.r.Badge("no due date", info.Color)
	case format.DueOverdue:
		return a.r.Badge("overdue "+strconv.Itoa(info.Days)+"d", info.Color)
	case format.DueSoon:
		return a.r.Badge("due in "+strconv.Itoa(info.Days)+"d", info.Color)
	default:
		return a.r.Date(dueDate)
	}
}
