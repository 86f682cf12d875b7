package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/rm-hull/paypal-api/internal"
)

func Import(dbPath string) error {

	client, repo, err := bootstrap(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("failed to close repository: %v", err)
		}
	}()

	numInvoices, err := internal.SyncInvoices(context.Background(), client, repo.UpsertInvoices)
	if err != nil {
		return fmt.Errorf("failed to sync invoices: %w", err)
	}
	log.Printf("imported %d invoices", numInvoices)

	return nil
}
