package internal

import (
	"context"
	"fmt"
	"log"

	"github.com/rm-hull/paypal-api/internal/endpoints"
	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/rm-hull/paypal-api/internal/paypal"
)

const SyncPageSize = 100

type BatchCallback[T any] func([]T) (int, error)

// SyncInvoices walks every page of the merchant's invoices and hands each
// page to callback. It stops after the last page reported by PayPal or at
// the first empty page.
func SyncInvoices(ctx context.Context, client *paypal.Client, callback BatchCallback[models.Invoice]) (int, error) {
	count := 0

	for page := 1; ; page++ {
		list, err := paypal.Execute(ctx, client, endpoints.NewListInvoices(models.Query{
			Page:          models.Ptr(page),
			PageSize:      models.Ptr(SyncPageSize),
			TotalRequired: models.Ptr(true),
		}))
		if err != nil {
			return count, fmt.Errorf("failed to list invoices (page %d): %w", page, err)
		}

		if len(list.Items) == 0 {
			break
		}

		numRecords, err := callback(list.Items)
		if err != nil {
			return count, fmt.Errorf("callback error: %w", err)
		}
		count += numRecords

		if list.TotalPages > 0 && page >= list.TotalPages {
			break
		}
	}

	log.Printf("synced %d invoices", count)
	return count, nil
}
