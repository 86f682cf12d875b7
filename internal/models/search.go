package models

import "time"

// InvoiceSummary is the row stored for each synced invoice.
type InvoiceSummary struct {
	Id            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	Status        InvoiceStatus `json:"status"`
	CurrencyCode  Currency      `json:"currency_code"`
	Amount        string        `json:"amount"`
	DueAmount     string        `json:"due_amount,omitempty"`
	InvoiceDate   string        `json:"invoice_date,omitempty"`
	Recipient     string        `json:"recipient,omitempty"`
	UpdatedAt     *time.Time    `json:"updated_at,omitempty"`
}

type InvoiceStatistics struct {
	StatusDistribution map[InvoiceStatus]int `json:"status_distribution"`
	TotalAmount        map[Currency]string   `json:"total_amount"`
	AverageAmount      map[Currency]string   `json:"average_amount"`
	LargestInvoice     map[Currency]string   `json:"largest_invoice"`
	OutstandingAmount  map[Currency]string   `json:"outstanding_amount"`
}

type SearchResponse struct {
	Results     []InvoiceSummary   `json:"results"`
	Statistics  *InvoiceStatistics `json:"statistics,omitempty"`
	LastUpdated *time.Time         `json:"last_updated,omitempty"`
}
