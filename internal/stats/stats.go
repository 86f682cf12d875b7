package stats

import (
	"log"

	"github.com/rm-hull/paypal-api/internal/currencies"
	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/shopspring/decimal"
)

type currencyTotals struct {
	count       int64
	total       decimal.Decimal
	largest     decimal.Decimal
	outstanding decimal.Decimal
}

// Derive summarises invoices per status and per currency. Amounts are
// rounded to the minor units of their currency; invoices with an unparsable
// amount are counted by status but left out of the totals.
func Derive(results []models.InvoiceSummary) *models.InvoiceStatistics {
	stats := &models.InvoiceStatistics{
		StatusDistribution: make(map[models.InvoiceStatus]int),
		TotalAmount:        make(map[models.Currency]string),
		AverageAmount:      make(map[models.Currency]string),
		LargestInvoice:     make(map[models.Currency]string),
		OutstandingAmount:  make(map[models.Currency]string),
	}

	totals := make(map[models.Currency]*currencyTotals)
	for _, result := range results {
		stats.StatusDistribution[result.Status]++

		amount, err := decimal.NewFromString(result.Amount)
		if err != nil {
			log.Printf("skipping invoice %s with invalid amount %q: %v", result.Id, result.Amount, err)
			continue
		}

		t, ok := totals[result.CurrencyCode]
		if !ok {
			t = &currencyTotals{largest: amount}
			totals[result.CurrencyCode] = t
		}
		t.count++
		t.total = t.total.Add(amount)
		if amount.GreaterThan(t.largest) {
			t.largest = amount
		}

		if isOutstanding(result.Status) && result.DueAmount != "" {
			if due, err := decimal.NewFromString(result.DueAmount); err == nil {
				t.outstanding = t.outstanding.Add(due)
			}
		}
	}

	for currency, t := range totals {
		places := currencies.Decimals(currency)
		stats.TotalAmount[currency] = t.total.StringFixed(places)
		stats.AverageAmount[currency] = t.total.Div(decimal.NewFromInt(t.count)).StringFixed(places)
		stats.LargestInvoice[currency] = t.largest.StringFixed(places)
		if !t.outstanding.IsZero() {
			stats.OutstandingAmount[currency] = t.outstanding.StringFixed(places)
		}
	}

	return stats
}

func isOutstanding(status models.InvoiceStatus) bool {
	switch status {
	case models.InvoiceStatusSent,
		models.InvoiceStatusScheduled,
		models.InvoiceStatusPartiallyPaid,
		models.InvoiceStatusUnpaid,
		models.InvoiceStatusPaymentPending:
		return true
	}
	return false
}
