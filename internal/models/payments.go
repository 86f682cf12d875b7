package models

import "time"

type SellerProtectionStatus string

const (
	SellerProtectionEligible          SellerProtectionStatus = "ELIGIBLE"
	SellerProtectionPartiallyEligible SellerProtectionStatus = "PARTIALLY_ELIGIBLE"
	SellerProtectionNotEligible       SellerProtectionStatus = "NOT_ELIGIBLE"
)

type SellerProtection struct {
	Status            SellerProtectionStatus `json:"status,omitempty"`
	DisputeCategories []string               `json:"dispute_categories,omitempty"`
}

type PaymentStatus string

const (
	PaymentStatusCreated           PaymentStatus = "CREATED"
	PaymentStatusCaptured          PaymentStatus = "CAPTURED"
	PaymentStatusDenied            PaymentStatus = "DENIED"
	PaymentStatusExpired           PaymentStatus = "EXPIRED"
	PaymentStatusPartiallyCaptured PaymentStatus = "PARTIALLY_CAPTURED"
	PaymentStatusPartiallyCreated  PaymentStatus = "PARTIALLY_CREATED"
	PaymentStatusVoided            PaymentStatus = "VOIDED"
	PaymentStatusPending           PaymentStatus = "PENDING"
)

type AuthorizedPaymentDetails struct {
	Id               string            `json:"id"`
	Status           PaymentStatus     `json:"status"`
	StatusDetails    *StatusDetails    `json:"status_details,omitempty"`
	Amount           *Money            `json:"amount,omitempty"`
	InvoiceId        string            `json:"invoice_id,omitempty"`
	CustomId         string            `json:"custom_id,omitempty"`
	SellerProtection *SellerProtection `json:"seller_protection,omitempty"`
	ExpirationTime   *time.Time        `json:"expiration_time,omitempty"`
	Links            []LinkDescription `json:"links,omitempty"`
	CreateTime       *time.Time        `json:"create_time,omitempty"`
	UpdateTime       *time.Time        `json:"update_time,omitempty"`
}

type CaptureRequest struct {
	Amount         *Money `json:"amount,omitempty"`
	InvoiceId      string `json:"invoice_id,omitempty"`
	FinalCapture   *bool  `json:"final_capture,omitempty"`
	NoteToPayer    string `json:"note_to_payer,omitempty" validate:"max=255"`
	SoftDescriptor string `json:"soft_descriptor,omitempty" validate:"max=22"`
}

type RefundRequest struct {
	Amount      *Money `json:"amount,omitempty"`
	InvoiceId   string `json:"invoice_id,omitempty"`
	NoteToPayer string `json:"note_to_payer,omitempty" validate:"max=255"`
}
