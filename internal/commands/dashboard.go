package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mystra-dev/ledgerscope/internal/api"
	"github.com/mystra-dev/ledgerscope/internal/fetch"
	"github.com/mystra-dev/ledgerscope/internal/model"
	"github.com/mystra-dev/ledgerscope/internal/render"
)

func newDashboardCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Cross-ledger balances and general-ledger activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return runDashboard(cmd.Context(), a, from, to)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "GL summary start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "GL summary end date (YYYY-MM-DD)")
	return cmd
}

// runDashboard fetches the ledger summaries and the GL summary in parallel.
// The two slots are independent: either can fail without hiding the other.
func runDashboard(ctx context.Context, a *app, from, to string) error {
	summaries := fetch.New(a.store, func(ctx context.Context, page int, filters, headers map[string]string) (*model.Response[model.LedgerSummary], error) {
		return a.client.GetLedgerSummaries(ctx, headers)
	})
	glSummary := fetch.New(a.store, func(ctx context.Context, page int, filters, headers map[string]string) (*model.Response[model.GLSummaryData], error) {
		return a.client.GetGLSummary(ctx, api.DateRangeParams{
			StartDate: filters["startDate"],
			EndDate:   filters["endDate"],
		}, headers)
	})
	glSummary.SetFilter("startDate", from)
	glSummary.SetFilter("endDate", to)

	var sumState fetch.State[model.Response[model.LedgerSummary]]
	var glState fetch.State[model.Response[model.GLSummaryData]]

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sumState = summaries.Fetch(gctx)
		return nil
	})
	g.Go(func() error {
		glState = glSummary.Fetch(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	a.r.Title("Dashboard")
	if sumState.Err == fetch.ErrNotConfigured.Error() {
		a.r.NotConfigured()
		return nil
	}

	if sumState.Err != "" {
		a.r.Error(sumState.Err)
	} else if sumState.Data != nil {
		s := sumState.Data.Data
		a.r.Cards([]render.Card{
			{Label: "Sales Balance", Value: a.r.Currency(s.Summary.TotalSalesBalance)},
			{Label: "Purchase Balance", Value: a.r.Currency(s.Summary.TotalPurchaseBalance)},
			{Label: "Cash Balance", Value: a.r.Currency(s.Summary.TotalCashBalance)},
			{Label: "Net Position", Value: a.r.Currency(s.Summary.NetPosition)},
		})
		a.r.Table(
			[]string{"LEDGER", "BALANCE", "COUNTERPARTIES"},
			[][]string{
				{"Sales", a.r.Currency(s.SalesLedger.TotalBalance), strconv.Itoa(s.SalesLedger.TotalCustomers)},
				{"Purchase", a.r.Currency(s.PurchaseLedger.TotalBalance), strconv.Itoa(s.PurchaseLedger.TotalSuppliers)},
				{"Cash Book", a.r.Currency(s.CashBook.TotalBalance), strconv.Itoa(s.CashBook.TotalAccounts)},
			},
		)
	}

	if glState.Err != "" && glState.Err != fetch.ErrNotConfigured.Error() {
		a.r.Error(glState.Err)
	} else if glState.Data != nil {
		gl := glState.Data.Data
		a.r.Cards([]render.Card{
			{Label: "GL Transactions", Value: strconv.Itoa(gl.TotalTransactions)},
			{Label: "Period", Value: a.r.Date(gl.Period.StartDate) + " - " + a.r.Date(gl.Period.EndDate)},
		})
	}
	return nil
}
