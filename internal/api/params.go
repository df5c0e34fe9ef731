package api

import (
	"net/url"
	"strconv"
)

// LedgerParams filters a subsidiary-ledger listing. Zero values are omitted
// from the query string; the server applies its own defaults.
type LedgerParams struct {
	Page        int
	Limit       int
	StartDate   string
	EndDate     string
	CustomerID  string // sales ledger
	SupplierID  string // purchase ledger
	AccountCode string // cash book
}

// Values encodes the defined parameters as a query string.
func (p LedgerParams) Values() url.Values {
	v := url.Values{}
	setInt(v, "page", p.Page)
	setInt(v, "limit", p.Limit)
	setStr(v, "startDate", p.StartDate)
	setStr(v, "endDate", p.EndDate)
	setStr(v, "customerId", p.CustomerID)
	setStr(v, "supplierId", p.SupplierID)
	setStr(v, "accountCode", p.AccountCode)
	return v
}

// GLParams filters the general-ledger transaction listing.
type GLParams struct {
	Page         int
	Limit        int
	StartDate    string
	EndDate      string
	AccountCode  string
	SourceModule string
}

// Values encodes the defined parameters as a query string.
func (p GLParams) Values() url.Values {
	v := url.Values{}
	setInt(v, "page", p.Page)
	setInt(v, "limit", p.Limit)
	setStr(v, "startDate", p.StartDate)
	setStr(v, "endDate", p.EndDate)
	setStr(v, "accountCode", p.AccountCode)
	setStr(v, "sourceModule", p.SourceModule)
	return v
}

// TrialBalanceParams selects the trial balance reporting date.
type TrialBalanceParams struct {
	AsOfDate string
}

// Values encodes the defined parameters as a query string.
func (p TrialBalanceParams) Values() url.Values {
	v := url.Values{}
	setStr(v, "asOfDate", p.AsOfDate)
	return v
}

// DateRangeParams bounds a summary period.
type DateRangeParams struct {
	StartDate string
	EndDate   string
}

// Values encodes the defined parameters as a query string.
func (p DateRangeParams) Values() url.Values {
	v := url.Values{}
	setStr(v, "startDate", p.StartDate)
	setStr(v, "endDate", p.EndDate)
	return v
}

func setStr(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setInt(v url.Values, key string, val int) {
	if val > 0 {
		v.Set(key, strconv.Itoa(val))
	}
}
