package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, zerolog.Nop())
}

func TestGetSalesLedger(t *testing.T) {
	var gotPath, gotQuery, gotTenant, gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotTenant = r.Header.Get("X-Tenant-Id")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"message": "ok",
			"statusCode": 200,
			"data": {
				"totalBalance": "1500.00",
				"totalCustomers": 3,
				"transactions": [{"id": "tx-1", "customerName": "Acme", "netAmount": "500.00"}],
				"totalTransactions": 1
			}
		}`))
	})

	headers := map[string]string{
		"X-Tenant-Id":   "t1",
		"Authorization": "Bearer b1",
	}
	resp, err := c.GetSalesLedger(context.Background(), LedgerParams{Page: 2, Limit: 10, CustomerID: "c9"}, headers)
	require.NoError(t, err)

	assert.Equal(t, PathSalesLedger, gotPath)
	assert.Equal(t, "customerId=c9&limit=10&page=2", gotQuery)
	assert.Equal(t, "t1", gotTenant)
	assert.Equal(t, "Bearer b1", gotAuth)

	assert.Equal(t, "ok", resp.Message)
	assert.Equal(t, "1500.00", resp.Data.TotalBalance)
	require.Len(t, resp.Data.Transactions, 1)
	assert.Equal(t, "Acme", resp.Data.Transactions[0].CustomerName)
}

func TestOmittedParamsAbsentFromQuery(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"message":"ok","statusCode":200,"data":{}}`))
	})

	_, err := c.GetCashBook(context.Background(), LedgerParams{}, nil)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestNon2xxReturnsStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"nope","statusCode":403}`, http.StatusForbidden)
	})

	_, err := c.GetTrialBalance(context.Background(), TrialBalanceParams{AsOfDate: "2024-03-31"}, nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.Status)
	assert.Contains(t, err.Error(), "403")
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	c := New(srv.URL, time.Second, zerolog.Nop())

	_, err := c.GetLedgerSummaries(context.Background(), nil)
	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestGetGLEntriesPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"message":"ok","statusCode":200,"data":{"transactionId":"gl-7","entries":[],"totalEntries":0}}`))
	})

	resp, err := c.GetGLEntries(context.Background(), "gl-7", nil)
	require.NoError(t, err)
	assert.Equal(t, PathGLTransactions+"/gl-7/entries", gotPath)
	assert.Equal(t, "gl-7", resp.Data.TransactionID)
}

func TestGetSalesLedgerTablePageShape(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{
			"message": "ok",
			"statusCode": 200,
			"data": {
				"transactions": [{"id": "tx-1"}, {"id": "tx-2"}],
				"total": 42,
				"page": 3,
				"limit": 10,
				"totalPages": 5
			}
		}`))
	})

	resp, err := c.GetSalesLedgerTable(context.Background(), LedgerParams{Page: 3, Limit: 10}, nil)
	require.NoError(t, err)
	assert.Equal(t, PathSalesLedgerTable, gotPath)
	assert.Len(t, resp.Data.Transactions, 2)
	assert.Equal(t, 42, resp.Data.Total)
	assert.Equal(t, 3, resp.Data.PageNum)
	assert.Equal(t, 5, resp.Data.TotalPages)
}

func TestMalformedEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message": `))
	})

	_, err := c.GetGLSummary(context.Background(), DateRangeParams{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}
