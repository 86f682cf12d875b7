package endpoints

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/rm-hull/paypal-api/internal/paypal"
)

const invoicesPath = "/v2/invoicing/invoices"

// GenerateInvoiceNumber asks for the next invoice number in the merchant's
// sequence, e.g. INV-1235 after INV-1234.
type GenerateInvoiceNumber struct {
	paypal.Returns[models.InvoiceNumber]
	paypal.NoQuery
	InvoiceNumber *models.InvoiceNumber
}

func NewGenerateInvoiceNumber(invoiceNumber *models.InvoiceNumber) *GenerateInvoiceNumber {
	return &GenerateInvoiceNumber{InvoiceNumber: invoiceNumber}
}

func (e *GenerateInvoiceNumber) RelativePath() string {
	return "/v2/invoicing/generate-next-invoice-number"
}
func (e *GenerateInvoiceNumber) Method() string { return http.MethodPost }

func (e *GenerateInvoiceNumber) Body() any {
	if e.InvoiceNumber == nil {
		return nil
	}
	return e.InvoiceNumber
}

type CreateDraftInvoice struct {
	paypal.Returns[models.Invoice]
	paypal.NoQuery
	Invoice models.InvoicePayload
}

func NewCreateDraftInvoice(invoice models.InvoicePayload) *CreateDraftInvoice {
	return &CreateDraftInvoice{Invoice: invoice}
}

func (e *CreateDraftInvoice) RelativePath() string { return invoicesPath }
func (e *CreateDraftInvoice) Method() string       { return http.MethodPost }
func (e *CreateDraftInvoice) Body() any            { return e.Invoice }

type GetInvoice struct {
	paypal.Returns[models.Invoice]
	paypal.NoQuery
	paypal.NoBody
	InvoiceId string
}

func NewGetInvoice(invoiceId string) *GetInvoice {
	return &GetInvoice{InvoiceId: invoiceId}
}

func (e *GetInvoice) RelativePath() string {
	return fmt.Sprintf("%s/%s", invoicesPath, url.PathEscape(e.InvoiceId))
}
func (e *GetInvoice) Method() string { return http.MethodGet }

type ListInvoices struct {
	paypal.Returns[models.InvoiceList]
	paypal.NoBody
	Params models.Query
}

func NewListInvoices(params models.Query) *ListInvoices {
	return &ListInvoices{Params: params}
}

func (e *ListInvoices) RelativePath() string { return invoicesPath }
func (e *ListInvoices) Method() string       { return http.MethodGet }
func (e *ListInvoices) Query() any           { return e.Params }

type DeleteInvoice struct {
	paypal.Returns[paypal.Empty]
	paypal.NoQuery
	paypal.NoBody
	InvoiceId string
}

func NewDeleteInvoice(invoiceId string) *DeleteInvoice {
	return &DeleteInvoice{InvoiceId: invoiceId}
}

func (e *DeleteInvoice) RelativePath() string {
	return fmt.Sprintf("%s/%s", invoicesPath, url.PathEscape(e.InvoiceId))
}
func (e *DeleteInvoice) Method() string { return http.MethodDelete }

type UpdateInvoiceQuery struct {
	SendToRecipient bool `url:"send_to_recipient"`
	SendToInvoicer  bool `url:"send_to_invoicer"`
}

// UpdateInvoice fully replaces an invoice. The invoice id is taken from the
// invoice itself.
type UpdateInvoice struct {
	paypal.Returns[models.Invoice]
	Invoice models.Invoice
	Params  UpdateInvoiceQuery
}

func NewUpdateInvoice(invoice models.Invoice, params UpdateInvoiceQuery) *UpdateInvoice {
	return &UpdateInvoice{Invoice: invoice, Params: params}
}

func (e *UpdateInvoice) RelativePath() string {
	return fmt.Sprintf("%s/%s", invoicesPath, url.PathEscape(e.Invoice.Id))
}
func (e *UpdateInvoice) Method() string { return http.MethodPut }
func (e *UpdateInvoice) Query() any     { return e.Params }
func (e *UpdateInvoice) Body() any      { return e.Invoice }

type CancelInvoice struct {
	paypal.Returns[paypal.Empty]
	paypal.NoQuery
	InvoiceId string
	Reason    models.CancelReason
}

func NewCancelInvoice(invoiceId string, reason models.CancelReason) *CancelInvoice {
	return &CancelInvoice{InvoiceId: invoiceId, Reason: reason}
}

func (e *CancelInvoice) RelativePath() string {
	return fmt.Sprintf("%s/%s/cancel", invoicesPath, url.PathEscape(e.InvoiceId))
}
func (e *CancelInvoice) Method() string { return http.MethodPost }
func (e *CancelInvoice) Body() any      { return e.Reason }

// SendInvoice moves a draft invoice to the payable state and notifies the
// recipients. PayPal returns a link to the invoice.
type SendInvoice struct {
	paypal.Returns[models.LinkDescription]
	paypal.NoQuery
	InvoiceId string
	Payload   models.SendInvoicePayload
}

func NewSendInvoice(invoiceId string, payload models.SendInvoicePayload) *SendInvoice {
	return &SendInvoice{InvoiceId: invoiceId, Payload: payload}
}

func (e *SendInvoice) RelativePath() string {
	return fmt.Sprintf("%s/%s/send", invoicesPath, url.PathEscape(e.InvoiceId))
}
func (e *SendInvoice) Method() string { return http.MethodPost }
func (e *SendInvoice) Body() any      { return e.Payload }

type RecordInvoicePayment struct {
	paypal.Returns[models.PaymentReference]
	paypal.NoQuery
	InvoiceId string
	Payment   models.RecordPaymentPayload
}

func NewRecordInvoicePayment(invoiceId string, payment models.RecordPaymentPayload) *RecordInvoicePayment {
	return &RecordInvoicePayment{InvoiceId: invoiceId, Payment: payment}
}

func (e *RecordInvoicePayment) RelativePath() string {
	return fmt.Sprintf("%s/%s/payments", invoicesPath, url.PathEscape(e.InvoiceId))
}
func (e *RecordInvoicePayment) Method() string { return http.MethodPost }
func (e *RecordInvoicePayment) Body() any      { return e.Payment }
