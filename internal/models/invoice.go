package models

import "time"

type FileReference struct {
	Id           string     `json:"id,omitempty"`
	ReferenceUrl string     `json:"reference_url,omitempty"`
	ContentType  string     `json:"content_type,omitempty"`
	CreateTime   *time.Time `json:"create_time,omitempty"`
	Size         string     `json:"size,omitempty"`
}

type PaymentTermType string

const (
	PaymentTermDueOnReceipt PaymentTermType = "DUE_ON_RECEIPT"
	PaymentTermDueOnDate    PaymentTermType = "DUE_ON_DATE_SPECIFIED"
	PaymentTermNet10        PaymentTermType = "NET_10"
	PaymentTermNet15        PaymentTermType = "NET_15"
	PaymentTermNet30        PaymentTermType = "NET_30"
	PaymentTermNet45        PaymentTermType = "NET_45"
	PaymentTermNet60        PaymentTermType = "NET_60"
	PaymentTermNet90        PaymentTermType = "NET_90"
	PaymentTermNoDueDate    PaymentTermType = "NO_DUE_DATE"
)

type PaymentTerm struct {
	TermType PaymentTermType `json:"term_type,omitempty"`
	DueDate  string          `json:"due_date,omitempty"`
}

type FlowType string

const (
	FlowTypeMultipleRecipientsGroup FlowType = "MULTIPLE_RECIPIENTS_GROUP"
	FlowTypeBatch                   FlowType = "BATCH"
	FlowTypeRegularSingle           FlowType = "REGULAR_SINGLE"
)

type Metadata struct {
	CreateTime       *time.Time `json:"create_time,omitempty"`
	CreatedBy        string     `json:"created_by,omitempty"`
	LastUpdateTime   *time.Time `json:"last_update_time,omitempty"`
	LastUpdatedBy    string     `json:"last_updated_by,omitempty"`
	CancelTime       *time.Time `json:"cancel_time,omitempty"`
	CancelledBy      string     `json:"cancelled_by,omitempty"`
	FirstSentTime    *time.Time `json:"first_sent_time,omitempty"`
	LastSentTime     *time.Time `json:"last_sent_time,omitempty"`
	LastSentBy       string     `json:"last_sent_by,omitempty"`
	CreatedByFlow    FlowType   `json:"created_by_flow,omitempty"`
	RecipientViewUrl string     `json:"recipient_view_url,omitempty"`
	InvoicerViewUrl  string     `json:"invoicer_view_url,omitempty"`
}

// InvoiceDetail carries the invoice number, dates and terms. InvoiceDate is
// a plain calendar date (YYYY-MM-DD) on the wire, not a timestamp.
type InvoiceDetail struct {
	Reference          string          `json:"reference,omitempty"`
	CurrencyCode       Currency        `json:"currency_code" validate:"required,len=3"`
	Note               string          `json:"note,omitempty"`
	TermsAndConditions string          `json:"terms_and_conditions,omitempty"`
	Memo               string          `json:"memo,omitempty"`
	Attachments        []FileReference `json:"attachments,omitempty"`
	InvoiceNumber      string          `json:"invoice_number,omitempty"`
	InvoiceDate        string          `json:"invoice_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PaymentTerm        *PaymentTerm    `json:"payment_term,omitempty"`
	Metadata           *Metadata       `json:"metadata,omitempty"`
}

type Name struct {
	Prefix            string `json:"prefix,omitempty"`
	GivenName         string `json:"given_name,omitempty"`
	Surname           string `json:"surname,omitempty"`
	MiddleName        string `json:"middle_name,omitempty"`
	Suffix            string `json:"suffix,omitempty"`
	AlternateFullName string `json:"alternate_full_name,omitempty"`
	FullName          string `json:"full_name,omitempty"`
}

type PhoneDetail struct {
	CountryCode     string    `json:"country_code"`
	NationalNumber  string    `json:"national_number"`
	ExtensionNumber string    `json:"extension_number,omitempty"`
	PhoneType       PhoneType `json:"phone_type,omitempty"`
}

type InvoicerInfo struct {
	BusinessName    string        `json:"business_name,omitempty"`
	Name            *Name         `json:"name,omitempty"`
	EmailAddress    string        `json:"email_address,omitempty" validate:"omitempty,email"`
	Phones          []PhoneDetail `json:"phones,omitempty"`
	Website         string        `json:"website,omitempty"`
	TaxId           string        `json:"tax_id,omitempty"`
	AdditionalNotes string        `json:"additional_notes,omitempty"`
	LogoUrl         string        `json:"logo_url,omitempty"`
}

type BillingInfo struct {
	BusinessName   string        `json:"business_name,omitempty"`
	Name           *Name         `json:"name,omitempty"`
	Address        *Address      `json:"address,omitempty"`
	EmailAddress   string        `json:"email_address,omitempty" validate:"omitempty,email"`
	Phones         []PhoneDetail `json:"phones,omitempty"`
	AdditionalInfo string        `json:"additional_info,omitempty"`
	Language       string        `json:"language,omitempty"`
}

type ContactInformation struct {
	BusinessName string   `json:"business_name,omitempty"`
	Name         *Name    `json:"name,omitempty"`
	Address      *Address `json:"address,omitempty"`
}

type RecipientInfo struct {
	BillingInfo  *BillingInfo        `json:"billing_info,omitempty"`
	ShippingInfo *ContactInformation `json:"shipping_info,omitempty"`
}

type Tax struct {
	Name    string `json:"name"`
	Percent string `json:"percent"`
	Amount  *Money `json:"amount,omitempty"`
}

type Discount struct {
	Percent string `json:"percent,omitempty"`
	Amount  *Money `json:"amount,omitempty"`
}

type UnitOfMeasure string

const (
	UnitOfMeasureQuantity UnitOfMeasure = "QUANTITY"
	UnitOfMeasureHours    UnitOfMeasure = "HOURS"
	UnitOfMeasureAmount   UnitOfMeasure = "AMOUNT"
)

type InvoiceItem struct {
	Id            string        `json:"id,omitempty"`
	Name          string        `json:"name" validate:"required,max=200"`
	Description   string        `json:"description,omitempty"`
	Quantity      string        `json:"quantity" validate:"required,numeric"`
	UnitAmount    Money         `json:"unit_amount"`
	Tax           *Tax          `json:"tax,omitempty"`
	ItemDate      string        `json:"item_date,omitempty"`
	Discount      *Discount     `json:"discount,omitempty"`
	UnitOfMeasure UnitOfMeasure `json:"unit_of_measure,omitempty"`
}

type PartialPayment struct {
	AllowPartialPayment bool   `json:"allow_partial_payment,omitempty"`
	MinimumAmountDue    *Money `json:"minimum_amount_due,omitempty"`
}

type Configuration struct {
	TaxCalculatedAfterDiscount bool            `json:"tax_calculated_after_discount,omitempty"`
	TaxInclusive               bool            `json:"tax_inclusive,omitempty"`
	AllowTip                   bool            `json:"allow_tip,omitempty"`
	PartialPayment             *PartialPayment `json:"partial_payment,omitempty"`
	TemplateId                 string          `json:"template_id,omitempty"`
}

type AggregatedDiscount struct {
	InvoiceDiscount *Discount `json:"invoice_discount,omitempty"`
	ItemDiscount    *Money    `json:"item_discount,omitempty"`
}

type ShippingCost struct {
	Amount *Money `json:"amount,omitempty"`
	Tax    *Tax   `json:"tax,omitempty"`
}

type CustomAmount struct {
	Label  string `json:"label"`
	Amount *Money `json:"amount,omitempty"`
}

type InvoiceBreakdown struct {
	ItemTotal *Money              `json:"item_total,omitempty"`
	Discount  *AggregatedDiscount `json:"discount,omitempty"`
	TaxTotal  *Money              `json:"tax_total,omitempty"`
	Shipping  *ShippingCost       `json:"shipping,omitempty"`
	Custom    *CustomAmount       `json:"custom,omitempty"`
}

type InvoiceAmount struct {
	CurrencyCode Currency          `json:"currency_code"`
	Value        string            `json:"value"`
	Breakdown    *InvoiceBreakdown `json:"breakdown,omitempty"`
}

type PaymentType string

const (
	PaymentTypePaypal   PaymentType = "PAYPAL"
	PaymentTypeExternal PaymentType = "EXTERNAL"
)

type PaymentMethodType string

const (
	PaymentMethodBankTransfer PaymentMethodType = "BANK_TRANSFER"
	PaymentMethodCash         PaymentMethodType = "CASH"
	PaymentMethodCheck        PaymentMethodType = "CHECK"
	PaymentMethodCreditCard   PaymentMethodType = "CREDIT_CARD"
	PaymentMethodDebitCard    PaymentMethodType = "DEBIT_CARD"
	PaymentMethodPaypal       PaymentMethodType = "PAYPAL"
	PaymentMethodWireTransfer PaymentMethodType = "WIRE_TRANSFER"
	PaymentMethodOther        PaymentMethodType = "OTHER"
)

type PaymentDetail struct {
	Type         PaymentType         `json:"type,omitempty"`
	PaymentId    string              `json:"payment_id,omitempty"`
	PaymentDate  string              `json:"payment_date,omitempty"`
	Method       PaymentMethodType   `json:"method"`
	Note         string              `json:"note,omitempty"`
	Amount       *Money              `json:"amount,omitempty"`
	ShippingInfo *ContactInformation `json:"shipping_info,omitempty"`
}

type Payments struct {
	PaidAmount   *Money          `json:"paid_amount,omitempty"`
	Transactions []PaymentDetail `json:"transactions,omitempty"`
}

type RefundDetail struct {
	Type       PaymentType       `json:"type,omitempty"`
	RefundId   string            `json:"refund_id,omitempty"`
	RefundDate string            `json:"refund_date,omitempty"`
	Amount     *Money            `json:"amount,omitempty"`
	Method     PaymentMethodType `json:"method"`
}

type Refunds struct {
	RefundAmount *Money         `json:"refund_amount,omitempty"`
	Transactions []RefundDetail `json:"transactions,omitempty"`
}

type InvoiceStatus string

const (
	InvoiceStatusDraft             InvoiceStatus = "DRAFT"
	InvoiceStatusSent              InvoiceStatus = "SENT"
	InvoiceStatusScheduled         InvoiceStatus = "SCHEDULED"
	InvoiceStatusPaid              InvoiceStatus = "PAID"
	InvoiceStatusMarkedAsPaid      InvoiceStatus = "MARKED_AS_PAID"
	InvoiceStatusCancelled         InvoiceStatus = "CANCELLED"
	InvoiceStatusRefunded          InvoiceStatus = "REFUNDED"
	InvoiceStatusPartiallyPaid     InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPartiallyRefunded InvoiceStatus = "PARTIALLY_REFUNDED"
	InvoiceStatusMarkedAsRefunded  InvoiceStatus = "MARKED_AS_REFUNDED"
	InvoiceStatusUnpaid            InvoiceStatus = "UNPAID"
	InvoiceStatusPaymentPending    InvoiceStatus = "PAYMENT_PENDING"
)

type InvoicePayload struct {
	Detail               InvoiceDetail   `json:"detail"`
	Invoicer             *InvoicerInfo   `json:"invoicer,omitempty"`
	PrimaryRecipients    []RecipientInfo `json:"primary_recipients,omitempty"`
	AdditionalRecipients []string        `json:"additional_recipients,omitempty"`
	Items                []InvoiceItem   `json:"items" validate:"required,min=1,dive"`
	Configuration        *Configuration  `json:"configuration,omitempty"`
	Amount               *InvoiceAmount  `json:"amount,omitempty"`
	Payments             *Payments       `json:"payments,omitempty"`
	Refunds              *Refunds        `json:"refunds,omitempty"`
}

type Invoice struct {
	Id                   string            `json:"id"`
	ParentId             string            `json:"parent_id,omitempty"`
	Status               InvoiceStatus     `json:"status"`
	Detail               InvoiceDetail     `json:"detail"`
	Invoicer             *InvoicerInfo     `json:"invoicer,omitempty"`
	PrimaryRecipients    []RecipientInfo   `json:"primary_recipients,omitempty"`
	AdditionalRecipients []string          `json:"additional_recipients,omitempty"`
	Items                []InvoiceItem     `json:"items,omitempty"`
	Configuration        *Configuration    `json:"configuration,omitempty"`
	Amount               InvoiceAmount     `json:"amount"`
	DueAmount            *Money            `json:"due_amount,omitempty"`
	Gratuity             *Money            `json:"gratuity,omitempty"`
	Payments             *Payments         `json:"payments,omitempty"`
	Refunds              *Refunds          `json:"refunds,omitempty"`
	Links                []LinkDescription `json:"links,omitempty"`
}

type InvoiceList struct {
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
	Items      []Invoice         `json:"items"`
	Links      []LinkDescription `json:"links"`
}

type InvoiceNumber struct {
	InvoiceNumber string `json:"invoice_number"`
}

type CancelReason struct {
	Subject              string   `json:"subject,omitempty"`
	Note                 string   `json:"note,omitempty"`
	SendToInvoicer       *bool    `json:"send_to_invoicer,omitempty"`
	SendToRecipient      *bool    `json:"send_to_recipient,omitempty"`
	AdditionalRecipients []string `json:"additional_recipients,omitempty"`
}

type SendInvoicePayload struct {
	Subject              string   `json:"subject,omitempty"`
	Note                 string   `json:"note,omitempty"`
	SendToInvoicer       *bool    `json:"send_to_invoicer,omitempty"`
	SendToRecipient      *bool    `json:"send_to_recipient,omitempty"`
	AdditionalRecipients []string `json:"additional_recipients,omitempty"`
}

type RecordPaymentPayload struct {
	PaymentId    string              `json:"payment_id,omitempty"`
	PaymentDate  string              `json:"payment_date,omitempty"`
	Method       PaymentMethodType   `json:"method" validate:"required"`
	Note         string              `json:"note,omitempty"`
	Amount       Money               `json:"amount"`
	ShippingInfo *ContactInformation `json:"shipping_info,omitempty"`
}

type PaymentReference struct {
	PaymentId string `json:"payment_id"`
}

// RecipientEmail returns the billing email of the first primary recipient,
// or the empty string when there is none.
func (inv *Invoice) RecipientEmail() string {
	for _, recipient := range inv.PrimaryRecipients {
		if recipient.BillingInfo != nil && recipient.BillingInfo.EmailAddress != "" {
			return recipient.BillingInfo.EmailAddress
		}
	}
	return ""
}

func (inv *Invoice) DueValue() string {
	if inv.DueAmount == nil {
		return ""
	}
	return inv.DueAmount.Value
}

func (inv *Invoice) LastUpdated() *time.Time {
	if inv.Detail.Metadata == nil {
		return nil
	}
	if inv.Detail.Metadata.LastUpdateTime != nil {
		return inv.Detail.Metadata.LastUpdateTime
	}
	return inv.Detail.Metadata.CreateTime
}

// ToTuple flattens the invoice into the column order of the invoices table.
func (inv *Invoice) ToTuple() []any {
	return []any{
		inv.Id,
		inv.Detail.InvoiceNumber,
		string(inv.Status),
		string(inv.Amount.CurrencyCode),
		inv.Amount.Value,
		inv.DueValue(),
		inv.Detail.InvoiceDate,
		inv.RecipientEmail(),
		inv.LastUpdated(),
		toJSON(inv),
	}
}

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusScheduled, InvoiceStatusPaid,
		InvoiceStatusMarkedAsPaid, InvoiceStatusCancelled, InvoiceStatusRefunded,
		InvoiceStatusPartiallyPaid, InvoiceStatusPartiallyRefunded, InvoiceStatusMarkedAsRefunded,
		InvoiceStatusUnpaid, InvoiceStatusPaymentPending:
		return true
	}
	return false
}
