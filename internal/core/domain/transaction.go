package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types produced by the simulator. The column is free text, so
// stored rows may carry other values.
const (
	TransactionTypePurchase   = "PURCHASE"
	TransactionTypeRefund     = "REFUND"
	TransactionTypeWithdrawal = "WITHDRAWAL"
	TransactionTypeDeposit    = "DEPOSIT"
	TransactionTypeTransfer   = "TRANSFER"
)

// Transaction is a single card transaction record. Records are flat and
// independent; the ID is assigned by the store on creation and never changes.
type Transaction struct {
	ID              int64           `json:"id"`
	CardNumber      string          `json:"cardNumber"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Timestamp       time.Time       `json:"timestamp"`
	MerchantName    string          `json:"merchantName"`
	Country         string          `json:"country"`
	Region          string          `json:"region"`
	City            string          `json:"city"`
	TransactionType string          `json:"transactionType"`
	IsFraudulent    bool            `json:"isFraudulent"`
	IsError         bool            `json:"isError"`
	ErrorMessage    *string         `json:"errorMessage,omitempty"` // set only when IsError
}

// CounterSnapshot is a point-in-time read of the process-wide transaction counters.
type CounterSnapshot struct {
	Total      int64
	Fraudulent int64
	Errored    int64
}
