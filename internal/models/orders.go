package models

import "time"

type Intent string

const (
	IntentCapture   Intent = "CAPTURE"
	IntentAuthorize Intent = "AUTHORIZE"
)

type PayerName struct {
	GivenName string `json:"given_name,omitempty"`
	Surname   string `json:"surname,omitempty"`
}

type PhoneNumber struct {
	NationalNumber string `json:"national_number"`
}

type Phone struct {
	PhoneType   PhoneType   `json:"phone_type,omitempty"`
	PhoneNumber PhoneNumber `json:"phone_number"`
}

type TaxIdType string

const (
	TaxIdTypeBrCpf  TaxIdType = "BR_CPF"
	TaxIdTypeBrCnpj TaxIdType = "BR_CNPJ"
)

type TaxInfo struct {
	TaxId     string    `json:"tax_id"`
	TaxIdType TaxIdType `json:"tax_id_type"`
}

type Payer struct {
	Name         *PayerName `json:"name,omitempty"`
	EmailAddress string     `json:"email_address,omitempty" validate:"omitempty,email"`
	PayerId      string     `json:"payer_id,omitempty"`
	Phone        *Phone     `json:"phone,omitempty"`
	BirthDate    string     `json:"birth_date,omitempty"`
	TaxInfo      *TaxInfo   `json:"tax_info,omitempty"`
	Address      *Address   `json:"address,omitempty"`
}

type Breakdown struct {
	ItemTotal        *Money `json:"item_total,omitempty"`
	Shipping         *Money `json:"shipping,omitempty"`
	Handling         *Money `json:"handling,omitempty"`
	TaxTotal         *Money `json:"tax_total,omitempty"`
	Insurance        *Money `json:"insurance,omitempty"`
	ShippingDiscount *Money `json:"shipping_discount,omitempty"`
	Discount         *Money `json:"discount,omitempty"`
}

type Amount struct {
	CurrencyCode Currency   `json:"currency_code" validate:"required,len=3"`
	Value        string     `json:"value" validate:"required,numeric"`
	Breakdown    *Breakdown `json:"breakdown,omitempty"`
}

func NewAmount(currency Currency, value string) Amount {
	return Amount{CurrencyCode: currency, Value: value}
}

type Payee struct {
	EmailAddress string `json:"email_address,omitempty"`
	MerchantId   string `json:"merchant_id,omitempty"`
}

type PlatformFee struct {
	Amount Money  `json:"amount"`
	Payee  *Payee `json:"payee,omitempty"`
}

type DisbursementMode string

const (
	DisbursementModeInstant DisbursementMode = "INSTANT"
	DisbursementModeDelayed DisbursementMode = "DELAYED"
)

type PaymentInstruction struct {
	PlatformFees     []PlatformFee    `json:"platform_fees,omitempty"`
	DisbursementMode DisbursementMode `json:"disbursement_mode,omitempty"`
}

type ItemCategory string

const (
	ItemCategoryDigital  ItemCategory = "DIGITAL_GOODS"
	ItemCategoryPhysical ItemCategory = "PHYSICAL_GOODS"
	ItemCategoryDonation ItemCategory = "DONATION"
)

type ShippingDetailName struct {
	FullName string `json:"full_name"`
}

type ShippingDetail struct {
	Name    *ShippingDetailName `json:"name,omitempty"`
	Address *Address            `json:"address,omitempty"`
}

type Item struct {
	Name        string       `json:"name" validate:"required,max=127"`
	UnitAmount  Money        `json:"unit_amount"`
	Tax         *Money       `json:"tax,omitempty"`
	Quantity    string       `json:"quantity" validate:"required,numeric"`
	Description string       `json:"description,omitempty"`
	Sku         string       `json:"sku,omitempty"`
	Category    ItemCategory `json:"category,omitempty"`
}

type AuthorizationStatus string

const (
	AuthorizationStatusCreated           AuthorizationStatus = "CREATED"
	AuthorizationStatusCaptured          AuthorizationStatus = "CAPTURED"
	AuthorizationStatusDenied            AuthorizationStatus = "DENIED"
	AuthorizationStatusExpired           AuthorizationStatus = "EXPIRED"
	AuthorizationStatusPartiallyCaptured AuthorizationStatus = "PARTIALLY_CAPTURED"
	AuthorizationStatusVoided            AuthorizationStatus = "VOIDED"
	AuthorizationStatusPending           AuthorizationStatus = "PENDING"
)

type StatusDetails struct {
	Reason string `json:"reason"`
}

type Authorization struct {
	Id             string              `json:"id"`
	Status         AuthorizationStatus `json:"status"`
	StatusDetails  *StatusDetails      `json:"status_details,omitempty"`
	Amount         *Money              `json:"amount,omitempty"`
	ExpirationTime *time.Time          `json:"expiration_time,omitempty"`
	Links          []LinkDescription   `json:"links,omitempty"`
}

type CaptureStatus string

const (
	CaptureStatusCompleted         CaptureStatus = "COMPLETED"
	CaptureStatusDeclined          CaptureStatus = "DECLINED"
	CaptureStatusPartiallyRefunded CaptureStatus = "PARTIALLY_REFUNDED"
	CaptureStatusPending           CaptureStatus = "PENDING"
	CaptureStatusRefunded          CaptureStatus = "REFUNDED"
	CaptureStatusFailed            CaptureStatus = "FAILED"
)

type Capture struct {
	Id               string            `json:"id"`
	Status           CaptureStatus     `json:"status"`
	StatusDetails    *StatusDetails    `json:"status_details,omitempty"`
	Amount           *Money            `json:"amount,omitempty"`
	InvoiceId        string            `json:"invoice_id,omitempty"`
	CustomId         string            `json:"custom_id,omitempty"`
	FinalCapture     bool              `json:"final_capture,omitempty"`
	SellerProtection *SellerProtection `json:"seller_protection,omitempty"`
	Links            []LinkDescription `json:"links,omitempty"`
	CreateTime       *time.Time        `json:"create_time,omitempty"`
	UpdateTime       *time.Time        `json:"update_time,omitempty"`
}

type RefundStatus string

const (
	RefundStatusCancelled RefundStatus = "CANCELLED"
	RefundStatusFailed    RefundStatus = "FAILED"
	RefundStatusPending   RefundStatus = "PENDING"
	RefundStatusCompleted RefundStatus = "COMPLETED"
)

type Refund struct {
	Id            string            `json:"id"`
	Status        RefundStatus      `json:"status"`
	StatusDetails *StatusDetails    `json:"status_details,omitempty"`
	Amount        *Money            `json:"amount,omitempty"`
	InvoiceId     string            `json:"invoice_id,omitempty"`
	NoteToPayer   string            `json:"note_to_payer,omitempty"`
	Links         []LinkDescription `json:"links,omitempty"`
	CreateTime    *time.Time        `json:"create_time,omitempty"`
	UpdateTime    *time.Time        `json:"update_time,omitempty"`
}

type PaymentCollection struct {
	Authorizations []Authorization `json:"authorizations,omitempty"`
	Captures       []Capture       `json:"captures,omitempty"`
	Refunds        []Refund        `json:"refunds,omitempty"`
}

type PurchaseUnit struct {
	ReferenceId        string              `json:"reference_id,omitempty"`
	Amount             Amount              `json:"amount"`
	Payee              *Payee              `json:"payee,omitempty"`
	PaymentInstruction *PaymentInstruction `json:"payment_instruction,omitempty"`
	Description        string              `json:"description,omitempty" validate:"max=127"`
	CustomId           string              `json:"custom_id,omitempty"`
	InvoiceId          string              `json:"invoice_id,omitempty"`
	Id                 string              `json:"id,omitempty"`
	SoftDescriptor     string              `json:"soft_descriptor,omitempty" validate:"max=22"`
	Items              []Item              `json:"items,omitempty" validate:"dive"`
	Shipping           *ShippingDetail     `json:"shipping,omitempty"`
	Payments           *PaymentCollection  `json:"payments,omitempty"`
}

func NewPurchaseUnit(amount Amount) PurchaseUnit {
	return PurchaseUnit{Amount: amount}
}

type LandingPage string

const (
	LandingPageLogin        LandingPage = "LOGIN"
	LandingPageBilling      LandingPage = "BILLING"
	LandingPageNoPreference LandingPage = "NO_PREFERENCE"
)

type ShippingPreference string

const (
	ShippingPreferenceGetFromFile        ShippingPreference = "GET_FROM_FILE"
	ShippingPreferenceNoShipping         ShippingPreference = "NO_SHIPPING"
	ShippingPreferenceSetProvidedAddress ShippingPreference = "SET_PROVIDED_ADDRESS"
)

type UserAction string

const (
	UserActionContinue UserAction = "CONTINUE"
	UserActionPayNow   UserAction = "PAY_NOW"
)

type PayeePreferred string

const (
	PayeePreferredUnrestricted             PayeePreferred = "UNRESTRICTED"
	PayeePreferredImmediatePaymentRequired PayeePreferred = "IMMEDIATE_PAYMENT_REQUIRED"
)

type PaymentMethod struct {
	PayerSelected  string         `json:"payer_selected,omitempty"`
	PayeePreferred PayeePreferred `json:"payee_preferred,omitempty"`
}

type ApplicationContext struct {
	BrandName          string             `json:"brand_name,omitempty"`
	Locale             string             `json:"locale,omitempty"`
	LandingPage        LandingPage        `json:"landing_page,omitempty"`
	ShippingPreference ShippingPreference `json:"shipping_preference,omitempty"`
	UserAction         UserAction         `json:"user_action,omitempty"`
	PaymentMethod      *PaymentMethod     `json:"payment_method,omitempty"`
	ReturnUrl          string             `json:"return_url,omitempty" validate:"omitempty,url"`
	CancelUrl          string             `json:"cancel_url,omitempty" validate:"omitempty,url"`
}

type OrderPayload struct {
	Intent             Intent              `json:"intent" validate:"required,oneof=CAPTURE AUTHORIZE"`
	Payer              *Payer              `json:"payer,omitempty"`
	PurchaseUnits      []PurchaseUnit      `json:"purchase_units" validate:"required,min=1,dive"`
	ApplicationContext *ApplicationContext `json:"application_context,omitempty"`
}

func NewOrderPayload(intent Intent, purchaseUnits ...PurchaseUnit) OrderPayload {
	return OrderPayload{Intent: intent, PurchaseUnits: purchaseUnits}
}

type PaymentSourceToken struct {
	Id   string `json:"id"`
	Type string `json:"type"`
}

type PaymentSource struct {
	Token PaymentSourceToken `json:"token"`
}

// PaymentSourceBody is the request body of the authorize and capture order
// calls. An empty body is valid once the buyer has approved the order.
type PaymentSourceBody struct {
	PaymentSource *PaymentSource `json:"payment_source,omitempty"`
}

type CardResponse struct {
	LastDigits string `json:"last_digits"`
	Brand      string `json:"brand"`
	Type       string `json:"type"`
}

type PaypalWalletResponse struct {
	EmailAddress string     `json:"email_address,omitempty"`
	AccountId    string     `json:"account_id,omitempty"`
	Name         *PayerName `json:"name,omitempty"`
}

type PaymentSourceResponse struct {
	Card   *CardResponse         `json:"card,omitempty"`
	Paypal *PaypalWalletResponse `json:"paypal,omitempty"`
}

type OrderStatus string

const (
	OrderStatusCreated             OrderStatus = "CREATED"
	OrderStatusSaved               OrderStatus = "SAVED"
	OrderStatusApproved            OrderStatus = "APPROVED"
	OrderStatusVoided              OrderStatus = "VOIDED"
	OrderStatusCompleted           OrderStatus = "COMPLETED"
	OrderStatusPayerActionRequired OrderStatus = "PAYER_ACTION_REQUIRED"
)

type Order struct {
	CreateTime    *time.Time             `json:"create_time,omitempty"`
	UpdateTime    *time.Time             `json:"update_time,omitempty"`
	Id            string                 `json:"id"`
	PaymentSource *PaymentSourceResponse `json:"payment_source,omitempty"`
	Intent        Intent                 `json:"intent,omitempty"`
	Payer         *Payer                 `json:"payer,omitempty"`
	PurchaseUnits []PurchaseUnit         `json:"purchase_units,omitempty"`
	Status        OrderStatus            `json:"status"`
	Links         []LinkDescription      `json:"links"`
}

// PatchOperation is a single JSON Patch (RFC 6902) operation as accepted by
// the update order call.
type PatchOperation struct {
	Op    string `json:"op" validate:"required,oneof=add remove replace move copy test"`
	Path  string `json:"path" validate:"required"`
	Value any    `json:"value,omitempty"`
	From  string `json:"from,omitempty"`
}
