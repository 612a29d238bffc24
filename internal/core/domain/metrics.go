package domain

import "time"

// WindowCounts holds transaction counts over a time window.
type WindowCounts struct {
	Total      int64
	Fraudulent int64
	Errored    int64
}

// Metrics summarizes fraud and error activity over [StartTime, EndTime).
type Metrics struct {
	TotalTransactions      int64
	FraudulentTransactions int64
	ErrorTransactions      int64
	FraudRate              float64 // percent of total
	ErrorRate              float64 // percent of total
	StartTime              time.Time
	EndTime                time.Time
}

// NewMetrics derives rates from counts. Rates are 0 when there are no transactions.
func NewMetrics(counts WindowCounts, start, end time.Time) Metrics {
	m := Metrics{
		TotalTransactions:      counts.Total,
		FraudulentTransactions: counts.Fraudulent,
		ErrorTransactions:      counts.Errored,
		StartTime:              start,
		EndTime:                end,
	}
	if counts.Total > 0 {
		m.FraudRate = float64(counts.Fraudulent) / float64(counts.Total) * 100
		m.ErrorRate = float64(counts.Errored) / float64(counts.Total) * 100
	}
	return m
}
