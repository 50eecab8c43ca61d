package business

import (
	"github.com/shopspring/decimal"
)

// Destination is the shipping/billing destination a transaction is
// evaluated against. Jurisdiction support and rate lookups key off
// state and city.
type Destination struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
}

// Item is a single transaction line item
type Item struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Transaction is the unit of work processed by the compliance pipeline.
// Amounts are decimal; item amounts must sum to TotalAmount within one cent.
type Transaction struct {
	ID          string          `json:"transactionId"`
	MerchantID  string          `json:"merchantId"`
	CustomerID  string          `json:"customerId"`
	Destination Destination     `json:"destination"`
	Items       []Item          `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Currency    string          `json:"currency"`
}

// RequestContext carries caller-supplied context that is not part of the
// transaction itself, such as the customer classification used for
// exemption matching.
type RequestContext struct {
	CustomerType string `json:"customerType,omitempty"`
	RequestID    string `json:"requestId,omitempty"`
}
