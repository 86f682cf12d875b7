package cmd

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rm-hull/paypal-api/internal/endpoints"
	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/rm-hull/paypal-api/internal/paypal"
)

func ListInvoices(page, pageSize int) error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	list, err := paypal.Execute(context.Background(), client, endpoints.NewListInvoices(models.Query{
		Page:          models.Ptr(page),
		PageSize:      models.Ptr(pageSize),
		TotalRequired: models.Ptr(true),
	}))
	if err != nil {
		return fmt.Errorf("failed to list invoices: %w", err)
	}

	return printJSON(list)
}

func GetInvoice(invoiceId string) error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	invoice, err := paypal.Execute(context.Background(), client, endpoints.NewGetInvoice(invoiceId))
	if err != nil {
		return fmt.Errorf("failed to get invoice %s: %w", invoiceId, err)
	}

	return printJSON(invoice)
}

func NextInvoiceNumber() error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	number, err := paypal.Execute(context.Background(), client, endpoints.NewGenerateInvoiceNumber(nil))
	if err != nil {
		return fmt.Errorf("failed to generate invoice number: %w", err)
	}

	return printJSON(number)
}

func SendInvoice(invoiceId, subject, note string, notifyRecipient bool) error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	link, err := paypal.Execute(context.Background(), client, endpoints.NewSendInvoice(invoiceId, models.SendInvoicePayload{
		Subject:         subject,
		Note:            note,
		SendToRecipient: models.Ptr(notifyRecipient),
	}))
	if err != nil {
		return fmt.Errorf("failed to send invoice %s: %w", invoiceId, err)
	}

	return printJSON(link)
}

func CancelInvoice(invoiceId, subject, note string, notifyRecipient bool) error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	if _, err := paypal.Execute(context.Background(), client, endpoints.NewCancelInvoice(invoiceId, models.CancelReason{
		Subject:         subject,
		Note:            note,
		SendToRecipient: models.Ptr(notifyRecipient),
	})); err != nil {
		return fmt.Errorf("failed to cancel invoice %s: %w", invoiceId, err)
	}

	return printJSON(map[string]string{"id": invoiceId, "status": string(models.InvoiceStatusCancelled)})
}

func DeleteInvoice(invoiceId string) error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	if _, err := paypal.Execute(context.Background(), client, endpoints.NewDeleteInvoice(invoiceId)); err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceId, err)
	}

	return printJSON(map[string]string{"id": invoiceId, "status": "DELETED"})
}
