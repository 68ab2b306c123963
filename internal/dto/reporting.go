package dto

import "github.com/shopspring/decimal"

// TotalResponse carries a single aggregated total for a scope and timeframe.
type TotalResponse struct {
	Timeframe string          `json:"timeframe"`
	Total     decimal.Decimal `json:"total"`
}

// SummaryResponse carries the dashboard totals for a scope, one per
// timeframe, plus the number of eligible transactions.
type SummaryResponse struct {
	Today            decimal.Decimal `json:"today"`
	Week             decimal.Decimal `json:"week"`
	Month            decimal.Decimal `json:"month"`
	AllTime          decimal.Decimal `json:"allTime"`
	TransactionCount int             `json:"transactionCount"`
}
