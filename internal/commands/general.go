package commands

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mystra-dev/ledgerscope/internal/api"
	"github.com/mystra-dev/ledgerscope/internal/fetch"
	"github.com/mystra-dev/ledgerscope/internal/format"
	"github.com/mystra-dev/ledgerscope/internal/model"
	"github.com/mystra-dev/ledgerscope/internal/render"
)

func newGeneralCommand() *cobra.Command {
	var opts ledgerOpts
	var sourceModule string

	cmd := &cobra.Command{
		Use:   "general",
		Short: "General ledger transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return runGeneral(cmd.Context(), a, cmd.InOrStdin(), opts, sourceModule)
		},
	}
	addLedgerFlags(cmd, &opts, "account", "filter by account code")
	cmd.Flags().StringVar(&sourceModule, "source", "", "filter by source module")

	cmd.AddCommand(newGeneralEntriesCommand())
	return cmd
}

func runGeneral(ctx context.Context, a *app, in io.Reader, opts ledgerOpts, sourceModule string) error {
	if opts.limit <= 0 {
		opts.limit = a.cfg.PageSize
	}

	f := fetch.New(a.store, func(ctx context.Context, page int, filters, headers map[string]string) (*model.Response[model.GLTransactionsData], error) {
		return a.client.GetGLTransactions(ctx, api.GLParams{
			Page:         page,
			Limit:        opts.limit,
			StartDate:    filters["startDate"],
			EndDate:      filters["endDate"],
			AccountCode:  filters["accountCode"],
			SourceModule: filters["sourceModule"],
		}, headers)
	})
	f.SetFilter("accountCode", opts.party)
	f.SetFilter("sourceModule", sourceModule)
	f.SetFilter("startDate", opts.from)
	f.SetFilter("endDate", opts.to)
	f.SetSearch(opts.search)
	f.SetPage(opts.page)

	show := func(st fetch.State[model.Response[model.GLTransactionsData]]) int {
		return renderGeneral(a, f, st)
	}
	if opts.interactive {
		return interactiveLoop(ctx, a.out, in, f, show)
	}
	show(f.Fetch(ctx))
	return nil
}

// renderGeneral draws one general ledger state and returns the server's
// page count.
func renderGeneral(a *app, f *fetch.Fetcher[model.Response[model.GLTransactionsData]], st fetch.State[model.Response[model.GLTransactionsData]]) int {
	a.r.Title("General Ledger")
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
		{Label: "Total Transactions", Value: strconv.Itoa(data.Total)},
	})

	rows := make([][]string, 0, len(data.Transactions))
	for _, t := range data.Transactions {
		if !glMatches(t, f.Search()) {
			continue
		}
		posted := "draft"
		if t.IsPosted {
			posted = "posted"
		}
		rows = append(rows, []string{
			a.r.Date(t.TransactionDate),
			t.ReferenceNumber,
			format.Truncate(t.Description, 32),
			t.SourceModule,
			a.r.Currency(t.TotalDebit),
			a.r.Currency(t.TotalCredit),
			posted,
			t.ID,
		})
	}
	a.r.Table([]string{"DATE", "REFERENCE", "DESCRIPTION", "SOURCE", "DEBIT", "CREDIT", "STATUS", "ID"}, rows)
	// The GL listing is server-paginated; trust its page math.
	a.r.PaginationFooter(data.PageNum, data.TotalPages, data.Total)
	return data.TotalPages
}

func glMatches(t model.GLTransaction, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(t.ReferenceNumber, term) ||
		containsFold(t.Description, term) ||
		containsFold(t.SourceModule, term)
}

func newGeneralEntriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries <transaction-id>",
		Short: "Debit/credit entries of one general-ledger transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return runGeneralEntries(cmd.Context(), a, args[0])
		},
	}
	return cmd
}

func runGeneralEntries(ctx context.Context, a *app, transactionID string) error {
	f := fetch.New(a.store, func(ctx context.Context, page int, filters, headers map[string]string) (*model.Response[model.GLEntriesData], error) {
		return a.client.GetGLEntries(ctx, transactionID, headers)
	})

	st := f.Fetch(ctx)
	a.r.Title("GL Entries: " + transactionID)
	if st.Err == fetch.ErrNotConfigured.Error() {
		a.r.NotConfigured()
		return nil
	}
	if st.Err != "" {
		a.r.Error(st.Err)
		return nil
	}

	data := st.Data.Data
	rows := make([][]string, 0, len(data.Entries))
	for _, e := range data.Entries {
		rows = append(rows, []string{
			e.AccountCode,
			format.Truncate(e.AccountName, 28),
			e.EntryType,
			a.r.Currency(e.DebitAmount),
			a.r.Currency(e.CreditAmount),
			format.Truncate(e.EntryDescription, 32),
		})
	}
	a.r.Table([]string{"ACCOUNT", "NAME", "TYPE", "DEBIT", "CREDIT", "DESCRIPTION"}, rows)
	return nil
}
