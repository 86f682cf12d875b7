package internal

import (
	"context"
	"log"
	"time"

	"github.com/rm-hull/paypal-api/internal/paypal"
	"github.com/robfig/cron/v3"
)

const CRON_SCHEDULE_INVOICES = "5 */1 * * *" // Every hour, five past

const syncTimeout = 10 * time.Minute

func StartCron(client *paypal.Client, repo InvoiceRepository) (*cron.Cron, error) {

	c := cron.New()

	log.Print("Starting CRON job to sync invoices")

	if _, err := c.AddFunc(CRON_SCHEDULE_INVOICES, func() {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()

		numInvoices, err := SyncInvoices(ctx, client, repo.UpsertInvoices)
		if err != nil {
			log.Printf("Error syncing invoices: %v\n", err)
			return
		}
		log.Printf("Upserted %d invoices", numInvoices)
	}); err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
