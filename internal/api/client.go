package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mystra-dev/ledgerscope/internal/model"
)

// Resource paths under the accounting API.
const (
	PathSalesLedger         = "/api/accounting/subsidiary-ledgers/sales-ledger"
	PathSalesLedgerTable    = "/api/accounting/subsidiary-ledgers/sales-ledger/table"
	PathPurchaseLedger      = "/api/accounting/subsidiary-ledgers/purchase-ledger"
	PathPurchaseLedgerTable = "/api/accounting/subsidiary-ledgers/purchase-ledger/table"
	PathCashBook            = "/api/accounting/subsidiary-ledgers/cash-book"
	PathCashBookTable       = "/api/accounting/subsidiary-ledgers/cash-book/table"
	PathSummaries           = "/api/accounting/subsidiary-ledgers/summaries"
	PathGLTransactions      = "/api/accounting/general-ledger/transactions"
	PathTrialBalance        = "/api/accounting/general-ledger/trial-balance"
	PathGLSummary           = "/api/accounting/general-ledger/summary"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.Status)
}

// Client is a read-only client for the accounting API. One GET per call; no
// retries, no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a Client for the given base URL.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// get performs one GET against path and decodes the response envelope.
func get[T any](ctx context.Context, c *Client, path string, params url.Values, headers map[string]string) (*model.Response[T], error) {
	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.log.Debug().Str("url", req.URL.String()).Msg("api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Debug().Int("status", resp.StatusCode).Str("url", req.URL.String()).Msg("api error response")
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	var envelope model.Response[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", path, err)
	}
	return &envelope, nil
}

// GetSalesLedger fetches the sales ledger overview with transactions.
func (c *Client) GetSalesLedger(ctx context.Context, params LedgerParams, headers map[string]string) (*model.Response[model.SalesLedgerData], error) {
	return get[model.SalesLedgerData](ctx, c, PathSalesLedger, params.Values(), headers)
}

// GetPurchaseLedger fetches the purchase ledger overview with transactions.
func (c *Client) GetPurchaseLedger(ctx context.Context, params LedgerParams, headers map[string]string) (*model.Response[model.PurchaseLedgerData], error) {
	return get[model.PurchaseLedgerData](ctx, c, PathPurchaseLedger, params.Values(), headers)
}

// GetCashBook fetches the cash book overview with transactions.
func (c *Client) GetCashBook(ctx context.Context, params LedgerParams, headers map[string]string) (*model.Response[model.CashBookData], error) {
	return get[model.CashBookData](ctx, c, PathCashBook, params.Values(), headers)
}

// GetSalesLedgerTable fetches a server-paginated page of sales transactions.
func (c *Client) GetSalesLedgerTable(ctx context.Context, params LedgerParams, headers map[string]string) (*model.Response[model.Page[model.SalesTransaction]], error) {
	return get[model.Page[model.SalesTransaction]](ctx, c, PathSalesLedgerTable, params.Values(), headers)
}

// GetPurchaseLedgerTable fetches a server-paginated page of purchase transactions.
func (c *Client) GetPurchaseLedgerTable(ctx context.Context, params LedgerParams, headers map[string]string) (*model.Response[model.Page[model.PurchaseTransaction]], error) {
	return get[model.Page[model.PurchaseTransaction]](ctx, c, PathPurchaseLedgerTable, params.Values(), headers)
}

// GetCashBookTable fetches a server-paginated page of cash transactions.
func (c *Client) GetCashBookTable(ctx context.Context, params LedgerParams, headers map[string]string) (*model.Response[model.Page[model.CashTransaction]], error) {
	return get[model.Page[model.CashTransaction]](ctx, c, PathCashBookTable, params.Values(), headers)
}

// GetLedgerSummaries fetches the cross-ledger summary for the dashboard.
func (c *Client) GetLedgerSummaries(ctx context.Context, headers map[string]string) (*model.Response[model.LedgerSummary], error) {
	return get[model.LedgerSummary](ctx, c, PathSummaries, nil, headers)
}

// GetGLTransactions fetches a page of general-ledger transactions.
func (c *Client) GetGLTransactions(ctx context.Context, params GLParams, headers map[string]string) (*model.Response[model.GLTransactionsData], error) {
	return get[model.GLTransactionsData](ctx, c, PathGLTransactions, params.Values(), headers)
}

// GetGLEntries fetches the entries of one general-ledger transaction.
func (c *Client) GetGLEntries(ctx context.Context, transactionID string, headers map[string]string) (*model.Response[model.GLEntriesData], error) {
	path := fmt.Sprintf("%s/%s/entries", PathGLTransactions, url.PathEscape(transactionID))
	return get[model.GLEntriesData](ctx, c, path, nil, headers)
}

// GetTrialBalance fetches the trial balance as of a date.
func (c *Client) GetTrialBalance(ctx context.Context, params TrialBalanceParams, headers map[string]string) (*model.Response[model.TrialBalanceData], error) {
	return get[model.TrialBalanceData](ctx, c, PathTrialBalance, params.Values(), headers)
}

// GetGLSummary fetches the general-ledger activity summary.
func (c *Client) GetGLSummary(ctx context.Context, params DateRangeParams, headers map[string]string) (*model.Response[model.GLSummaryData], error) {
	return get[model.GLSummaryData](ctx, c, PathGLSummary, params.Values(), headers)
}
