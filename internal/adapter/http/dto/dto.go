package dto

import (
	"encoding/json"
	"time"

	"transaction-monitoring-api/internal/core/domain"
	"transaction-monitoring-api/internal/core/ports"

	"github.com/shopspring/decimal"
)

// ---- Requests (query strings) ----

// PageQuery holds the paging and ordering parameters shared by every listing.
type PageQuery struct {
	Page      *int   `form:"page"`
	Size      *int   `form:"size"`
	SortBy    string `form:"sortBy" binding:"omitempty,sort_field"`
	Direction string `form:"direction"`
}

// PageRequest applies the listing defaults (page 0, size 10, newest first).
func (q PageQuery) PageRequest() domain.PageRequest {
	page, size := domain.DefaultPage, domain.DefaultPageSize
	if q.Page != nil {
		page = *q.Page
	}
	if q.Size != nil {
		size = *q.Size
	}
	direction := q.Direction
	if direction == "" {
		direction = string(domain.SortDesc)
	}
	return domain.NewPageRequest(page, size, q.SortBy, direction)
}

// RegionQuery holds optional location filters. Empty values are absent.
type RegionQuery struct {
	Country string `form:"country" binding:"omitempty,max=100"`
	Region  string `form:"region" binding:"omitempty,max=100"`
	City    string `form:"city" binding:"omitempty,max=100"`
}

func (q RegionQuery) Domain() domain.RegionQuery {
	return domain.RegionQuery{Country: q.Country, Region: q.Region, City: q.City}
}

// AmountQuery holds an optional amount range. Missing bounds default to
// 0 and domain.MaxAmountSentinel.
type AmountQuery struct {
	MinAmount string `form:"minAmount" binding:"omitempty,decimal"`
	MaxAmount string `form:"maxAmount" binding:"omitempty,decimal"`
}

// Range converts the bounds. Call it only after binding has validated them.
func (q AmountQuery) Range() domain.AmountRange {
	rng := domain.FullAmountRange()
	if q.MinAmount != "" {
		rng.Min = decimal.RequireFromString(q.MinAmount)
	}
	if q.MaxAmount != "" {
		rng.Max = decimal.RequireFromString(q.MaxAmount)
	}
	return rng
}

// MetricsQuery holds the optional metrics window, as ISO-8601 timestamps.
type MetricsQuery struct {
	StartTime string `form:"startTime" binding:"omitempty,iso_time"`
	EndTime   string `form:"endTime" binding:"omitempty,iso_time"`
}

// Window returns the parsed bounds; an absent bound is the zero time.
func (q MetricsQuery) Window() (start, end time.Time) {
	start, _ = ParseISOTime(q.StartTime)
	end, _ = ParseISOTime(q.EndTime)
	return start, end
}

// SimulateQuery is the burst size for POST /transactions/simulate.
type SimulateQuery struct {
	Count *int `form:"count" binding:"omitempty,min=0"`
}

// StartSimulationQuery is the rate for POST /transactions/simulate/start.
type StartSimulationQuery struct {
	TransactionsPerMinute *int `form:"transactionsPerMinute" binding:"omitempty,min=0"`
}

// ---- Responses ----

// TransactionResponse is the JSON shape of a transaction. Amount is a
// number with exactly two decimals.
type TransactionResponse struct {
	ID              int64       `json:"id"`
	CardNumber      string      `json:"cardNumber"`
	Amount          json.Number `json:"amount"`
	Currency        string      `json:"currency"`
	Timestamp       time.Time   `json:"timestamp"`
	MerchantName    string      `json:"merchantName"`
	Country         string      `json:"country"`
	Region          string      `json:"region"`
	City            string      `json:"city"`
	TransactionType string      `json:"transactionType"`
	IsFraudulent    bool        `json:"isFraudulent"`
	IsError         bool        `json:"isError"`
	ErrorMessage    *string     `json:"errorMessage,omitempty"`
}

func NewTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		CardNumber:      t.CardNumber,
		Amount:          json.Number(t.Amount.StringFixed(2)),
		Currency:        t.Currency,
		Timestamp:       t.Timestamp,
		MerchantName:    t.MerchantName,
		Country:         t.Country,
		Region:          t.Region,
		City:            t.City,
		TransactionType: t.TransactionType,
		IsFraudulent:    t.IsFraudulent,
		IsError:         t.IsError,
		ErrorMessage:    t.ErrorMessage,
	}
}

// PaginatedResponse is the listing envelope the dashboard consumes.
type PaginatedResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	CurrentPage  int                   `json:"currentPage"`
	TotalItems   int64                 `json:"totalItems"`
	TotalPages   int                   `json:"totalPages"`
}

func NewPaginatedResponse(p *domain.Page) PaginatedResponse {
	items := make([]TransactionResponse, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, NewTransactionResponse(&p.Items[i]))
	}
	return PaginatedResponse{
		Transactions: items,
		CurrentPage:  p.Number,
		TotalItems:   p.TotalItems,
		TotalPages:   p.TotalPages(),
	}
}

// MetricsResponse is the response for GET /transactions/metrics.
type MetricsResponse struct {
	TotalTransactions      int64     `json:"totalTransactions"`
	FraudulentTransactions int64     `json:"fraudulentTransactions"`
	ErrorTransactions      int64     `json:"errorTransactions"`
	FraudRate              float64   `json:"fraudRate"`
	ErrorRate              float64   `json:"errorRate"`
	StartTime              time.Time `json:"startTime"`
	EndTime                time.Time `json:"endTime"`
}

func NewMetricsResponse(m *domain.Metrics) MetricsResponse {
	return MetricsResponse{
		TotalTransactions:      m.TotalTransactions,
		FraudulentTransactions: m.FraudulentTransactions,
		ErrorTransactions:      m.ErrorTransactions,
		FraudRate:              m.FraudRate,
		ErrorRate:              m.ErrorRate,
		StartTime:              m.StartTime,
		EndTime:                m.EndTime,
	}
}

// SimulationStatusResponse is the response for GET /transactions/simulate/status.
type SimulationStatusResponse struct {
	Running                bool  `json:"running"`
	TransactionsPerMinute  int64 `json:"transactionsPerMinute"`
	TotalTransactions      int64 `json:"totalTransactions"`
	FraudulentTransactions int64 `json:"fraudulentTransactions"`
	ErrorTransactions      int64 `json:"errorTransactions"`
}

func NewSimulationStatusResponse(s ports.SimulationStatus) SimulationStatusResponse {
	return SimulationStatusResponse{
		Running:                s.Running,
		TransactionsPerMinute:  s.TransactionsPerTick,
		TotalTransactions:      s.Counters.Total,
		FraudulentTransactions: s.Counters.Fraudulent,
		ErrorTransactions:      s.Counters.Errored,
	}
}
