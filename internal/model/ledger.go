package model

// Response is the envelope every API endpoint returns.
type Response[T any] struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Data       T      `json:"data"`
	Error      string `json:"error,omitempty"`
}

// TransactionType classifies ledger transactions.
type TransactionType string

const (
	TypeSale       TransactionType = "SALE"
	TypeReturn     TransactionType = "RETURN"
	TypeAdjustment TransactionType = "ADJUSTMENT"
	TypeRefund     TransactionType = "REFUND"
	TypePayment    TransactionType = "PAYMENT"
	TypePurchase   TransactionType = "PURCHASE"
	TypeReceipt    TransactionType = "RECEIPT"
	TypeTransfer   TransactionType = "TRANSFER"
	TypeBankCharge TransactionType = "BANK_CHARGE"
)

// PaymentTerms classifies credit arrangements on a transaction.
type PaymentTerms string

const (
	TermsNet30  PaymentTerms = "NET30"
	TermsNet15  PaymentTerms = "NET15"
	TermsCash   PaymentTerms = "CASH"
	TermsCredit PaymentTerms = "CREDIT"
)

// SalesTransaction is one row of the sales (receivables) ledger. Amounts are
// decimal strings as sent by the server; the running balance is server-owned
// and never recomputed here.
type SalesTransaction struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customerId"`
	CustomerName    string `json:"customerName"`
	TransactionType string `json:"transactionType"`
	TransactionDate string `json:"transactionDate"`
	ReferenceNumber string `json:"referenceNumber"`
	SourceDocument  string `json:"sourceDocumentId"`
	SourceModule    string `json:"sourceModule"`
	InvoiceNumber   string `json:"invoiceNumber"`
	SalesAmount     string `json:"salesAmount"`
	TaxAmount       string `json:"taxAmount"`
	DiscountAmount  string `json:"discountAmount"`
	NetAmount       string `json:"netAmount"`
	RunningBalance  string `json:"runningBalance"`
	PaymentTerms    string `json:"paymentTerms"`
	DueDate         string `json:"dueDate"`
	Description     string `json:"description"`
	GLTransactionID string `json:"glTransactionId"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// PurchaseTransaction is one row of the purchase (payables) ledger.
type PurchaseTransaction struct {
	ID              string `json:"id"`
	SupplierID      string `json:"supplierId"`
	SupplierName    string `json:"supplierName"`
	TransactionType string `json:"transactionType"`
	TransactionDate string `json:"transactionDate"`
	ReferenceNumber string `json:"referenceNumber"`
	SourceDocument  string `json:"sourceDocumentId"`
	SourceModule    string `json:"sourceModule"`
	InvoiceNumber   string `json:"invoiceNumber"`
	PurchaseAmount  string `json:"purchaseAmount"`
	TaxAmount       string `json:"taxAmount"`
	DiscountAmount  string `json:"discountAmount"`
	NetAmount       string `json:"netAmount"`
	RunningBalance  string `json:"runningBalance"`
	PaymentTerms    string `json:"paymentTerms"`
	DueDate         string `json:"dueDate"`
	Description     string `json:"description"`
	GLTransactionID string `json:"glTransactionId"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// CashTransaction is one row of the cash book.
type CashTransaction struct {
	ID              string `json:"id"`
	AccountCode     string `json:"accountCode"`
	AccountName     string `json:"accountName"`
	TransactionType string `json:"transactionType"`
	TransactionDate string `json:"transactionDate"`
	ReferenceNumber string `json:"referenceNumber"`
	SourceDocument  string `json:"sourceDocumentId"`
	SourceModule    string `json:"sourceModule"`
	PartyType       string `json:"partyType"`
	PartyID         string `json:"partyId"`
	PartyName       string `json:"partyName"`
	ReceiptAmount   string `json:"receiptAmount"`
	PaymentAmount   string `json:"paymentAmount"`
	RunningBalance  string `json:"runningBalance"`
	Description     string `json:"description"`
	GLTransactionID string `json:"glTransactionId"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// CounterpartyBalance is a per-customer/supplier/account balance summary.
type CounterpartyBalance struct {
	Balance         string `json:"balance"`
	LastTransaction string `json:"lastTransaction"`
}

// SalesLedgerData is the sales-ledger overview payload.
type SalesLedgerData struct {
	TotalBalance      string                `json:"totalBalance,omitempty"`
	CustomerBalances  []CounterpartyBalance `json:"customerBalances,omitempty"`
	TotalCustomers    int                   `json:"totalCustomers,omitempty"`
	Transactions      []SalesTransaction    `json:"transactions,omitempty"`
	TotalTransactions int                   `json:"totalTransactions,omitempty"`
}

// PurchaseLedgerData is the purchase-ledger overview payload.
type PurchaseLedgerData struct {
	TotalBalance      string                `json:"totalBalance,omitempty"`
	SupplierBalances  []CounterpartyBalance `json:"supplierBalances,omitempty"`
	TotalSuppliers    int                   `json:"totalSuppliers,omitempty"`
	Transactions      []PurchaseTransaction `json:"transactions,omitempty"`
	TotalTransactions int                   `json:"totalTransactions,omitempty"`
}

// CashBookData is the cash-book overview payload.
type CashBookData struct {
	TotalBalance      string                `json:"totalBalance,omitempty"`
	AccountBalances   []CounterpartyBalance `json:"accountBalances,omitempty"`
	TotalAccounts     int                   `json:"totalAccounts,omitempty"`
	Transactions      []CashTransaction     `json:"transactions,omitempty"`
	TotalTransactions int                   `json:"totalTransactions,omitempty"`
}

// Page is a server-paginated list of transactions. Pages are 1-indexed and
// TotalPages = ceil(Total/Limit); both are server-computed.
type Page[T any] struct {
	Transactions []T `json:"transactions"`
	Total        int `json:"total"`
	PageNum      int `json:"page"`
	Limit        int `json:"limit"`
	TotalPages   int `json:"totalPages"`
}

// GLTransaction is a posted general-ledger transaction header.
type GLTransaction struct {
	ID              string `json:"id"`
	TenantID        string `json:"tenantId"`
	TransactionDate string `json:"transactionDate"`
	ReferenceNumber string `json:"referenceNumber"`
	Description     string `json:"description"`
	SourceModule    string `json:"sourceModule"`
	SourceDocument  string `json:"sourceDocumentId"`
	TotalDebit      string `json:"totalDebit"`
	TotalCredit     string `json:"totalCredit"`
	IsPosted        bool   `json:"isPosted"`
	CreatedBy       string `json:"createdBy"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// GLEntry is one debit or credit line of a GL transaction.
type GLEntry struct {
	ID               string `json:"id"`
	TenantID         string `json:"tenantId"`
	GLTransactionID  string `json:"glTransactionId"`
	AccountCode      string `json:"accountCode"`
	AccountName      string `json:"accountName"`
	DebitAmount      string `json:"debitAmount"`
	CreditAmount     string `json:"creditAmount"`
	EntryDescription string `json:"entryDescription"`
	EntryType        string `json:"entryType"`
	CreatedBy        string `json:"createdBy"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// GLTransactionsData is the paginated GL transaction listing.
type GLTransactionsData struct {
	Transactions []GLTransaction `json:"transactions"`
	Total        int             `json:"total"`
	PageNum      int             `json:"page"`
	Limit        int             `json:"limit"`
	TotalPages   int             `json:"totalPages"`
}

// GLEntriesData lists the entries of a single GL transaction.
type GLEntriesData struct {
	TransactionID string    `json:"transactionId"`
	Entries       []GLEntry `json:"entries"`
	TotalEntries  int       `json:"totalEntries"`
}

// TrialBalanceAccount is one account line of a trial balance.
type TrialBalanceAccount struct {
	AccountCode   string `json:"accountCode"`
	AccountName   string `json:"accountName"`
	AccountType   string `json:"accountType"`
	DebitBalance  string `json:"debitBalance"`
	CreditBalance string `json:"creditBalance"`
}

// TrialBalanceData is the trial balance as of a date. Whether debits and
// credits balance is display-only information; it is never enforced here.
type TrialBalanceData struct {
	AsOfDate string                `json:"asOfDate"`
	Message  string                `json:"message"`
	Accounts []TrialBalanceAccount `json:"accounts"`
}

// GLSummaryData is the general-ledger activity summary for a period.
type GLSummaryData struct {
	TotalTransactions int `json:"totalTransactions"`
	Period            struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	} `json:"period"`
	Summary struct {
		Message string `json:"message"`
		Note    string `json:"note"`
	} `json:"summary"`
}

// LedgerSummary is the cross-ledger dashboard payload.
type LedgerSummary struct {
	SalesLedger struct {
		TotalBalance     string                `json:"totalBalance"`
		TotalCustomers   int                   `json:"totalCustomers"`
		CustomerBalances []CounterpartyBalance `json:"customerBalances"`
	} `json:"salesLedger"`
	PurchaseLedger struct {
		TotalBalance     string                `json:"totalBalance"`
		TotalSuppliers   int                   `json:"totalSuppliers"`
		SupplierBalances []CounterpartyBalance `json:"supplierBalances"`
	} `json:"purchaseLedger"`
	CashBook struct {
		TotalBalance    string                `json:"totalBalance"`
		TotalAccounts   int                   `json:"totalAccounts"`
		AccountBalances []CounterpartyBalance `json:"accountBalances"`
	} `json:"cashBook"`
	Summary struct {
		TotalSalesBalance    string `json:"totalSalesBalance"`
		TotalPurchaseBalance string `json:"totalPurchaseBalance"`
		TotalCashBalance     string `json:"totalCashBalance"`
		NetPosition          string `json:"netPosition"`
	} `json:"summary"`
}
