package commands

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mystra-dev/ledgerscope/internal/api"
	"github.com/mystra-dev/ledgerscope/internal/fetch"
	"github.com/mystra-dev/ledgerscope/internal/format"
	"github.com/mystra-dev/ledgerscope/internal/model"
	"github.com/mystra-dev/ledgerscope/internal/render"
)

func newTrialBalanceCommand() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Account balances as of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return runTrialBalance(cmd.Context(), a, asOf)
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "reporting date (YYYY-MM-DD, default today on the server)")
	return cmd
}

func runTrialBalance(ctx context.Context, a *app, asOf string) error {
	f := fetch.New(a.store, func(ctx context.Context, page int, filters, headers map[string]string) (*model.Response[model.TrialBalanceData], error) {
		return a.client.GetTrialBalance(ctx, api.TrialBalanceParams{AsOfDate: filters["asOfDate"]}, headers)
	})
	f.SetFilter("asOfDate", asOf)

	st := f.Fetch(ctx)
	a.r.Title("Trial Balance")
	if st.Err == fetch.ErrNotConfigured.Error() {
		a.r.NotConfigured()
		return nil
	}
	if st.Err != "" {
		a.r.Error(st.Err)
		return nil
	}

	data := st.Data.Data
	a.r.Cards([]render.Card{
		{Label: "As Of", Value: a.r.Date(data.AsOfDate)},
	})

	totalDebit, totalCredit := trialBalanceTotals(data.Accounts)
	rows := make([][]string, 0, len(data.Accounts))
	for _, acct := range data.Accounts {
		rows = append(rows, []string{
			acct.AccountCode,
			format.Truncate(acct.AccountName, 32),
			acct.AccountType,
			a.r.Currency(acct.DebitBalance),
			a.r.Currency(acct.CreditBalance),
		})
	}
	a.r.Table([]string{"ACCOUNT", "NAME", "TYPE", "DEBIT", "CREDIT"}, rows)

	a.r.Cards([]render.Card{
		{Label: "Total Debits", Value: format.CurrencyDecimal(a.cfg.CurrencyCode, totalDebit)},
		{Label: "Total Credits", Value: format.CurrencyDecimal(a.cfg.CurrencyCode, totalCredit)},
		{Label: "Status", Value: balanceStatus(totalDebit, totalCredit)},
	})
	return nil
}

// trialBalanceTotals sums the debit and credit columns. Display only; an
// out-of-balance book is reported, never rejected.
func trialBalanceTotals(accounts []model.TrialBalanceAccount) (debit, credit decimal.Decimal) {
	for _, acct := range accounts {
		if d, err := decimal.NewFromString(acct.DebitBalance); err == nil {
			debit = debit.Add(d)
		}
		if c, err := decimal.NewFromString(acct.CreditBalance); err == nil {
			credit = credit.Add(c)
		}
	}
	return debit, credit
}

func balanceStatus(debit, credit decimal.Decimal) string {
	if debit.Equal(credit) {
		return "in balance"
	}
	return "OUT OF BALANCE by " + debit.Sub(credit).Abs().StringFixed(2)
}
