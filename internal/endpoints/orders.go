package endpoints

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/rm-hull/paypal-api/internal/paypal"
)

const ordersPath = "/v2/checkout/orders"

// CreateOrder creates an order awaiting buyer approval.
type CreateOrder struct {
	paypal.Returns[models.Order]
	paypal.NoQuery
	Order models.OrderPayload
}

func NewCreateOrder(order models.OrderPayload) *CreateOrder {
	return &CreateOrder{Order: order}
}

func (e *CreateOrder) RelativePath() string { return ordersPath }
func (e *CreateOrder) Method() string       { return http.MethodPost }
func (e *CreateOrder) Body() any            { return e.Order }

type ShowOrderDetails struct {
	paypal.Returns[models.Order]
	paypal.NoQuery
	paypal.NoBody
	OrderId string
}

func NewShowOrderDetails(orderId string) *ShowOrderDetails {
	return &ShowOrderDetails{OrderId: orderId}
}

func (e *ShowOrderDetails) RelativePath() string {
	return fmt.Sprintf("%s/%s", ordersPath, url.PathEscape(e.OrderId))
}
func (e *ShowOrderDetails) Method() string { return http.MethodGet }

// UpdateOrder applies JSON Patch operations to an order that has not yet
// been completed. PayPal answers 204 No Content.
type UpdateOrder struct {
	paypal.Returns[paypal.Empty]
	paypal.NoQuery
	OrderId    string
	Operations []models.PatchOperation
}

func NewUpdateOrder(orderId string, operations ...models.PatchOperation) *UpdateOrder {
	return &UpdateOrder{OrderId: orderId, Operations: operations}
}

func (e *UpdateOrder) RelativePath() string {
	return fmt.Sprintf("%s/%s", ordersPath, url.PathEscape(e.OrderId))
}
func (e *UpdateOrder) Method() string { return http.MethodPatch }
func (e *UpdateOrder) Body() any      { return e.Operations }

// CaptureOrder captures payment for an approved order. The payment source is
// only needed when the buyer did not approve through a PayPal redirect.
type CaptureOrder struct {
	paypal.Returns[models.Order]
	paypal.NoQuery
	OrderId string
	Source  models.PaymentSourceBody
}

func NewCaptureOrder(orderId string) *CaptureOrder {
	return &CaptureOrder{OrderId: orderId}
}

func (e *CaptureOrder) WithPaymentSource(source models.PaymentSource) *CaptureOrder {
	e.Source.PaymentSource = &source
	return e
}

func (e *CaptureOrder) RelativePath() string {
	return fmt.Sprintf("%s/%s/capture", ordersPath, url.PathEscape(e.OrderId))
}
func (e *CaptureOrder) Method() string { return http.MethodPost }
func (e *CaptureOrder) Body() any      { return e.Source }

type AuthorizeOrder struct {
	paypal.Returns[models.Order]
	paypal.NoQuery
	OrderId string
	Source  models.PaymentSourceBody
}

func NewAuthorizeOrder(orderId string) *AuthorizeOrder {
	return &AuthorizeOrder{OrderId: orderId}
}

func (e *AuthorizeOrder) WithPaymentSource(source models.PaymentSource) *AuthorizeOrder {
	e.Source.PaymentSource = &source
	return e
}

func (e *AuthorizeOrder) RelativePath() string {
	return fmt.Sprintf("%s/%s/authorize", ordersPath, url.PathEscape(e.OrderId))
}
func (e *AuthorizeOrder) Method() string { return http.MethodPost }
func (e *AuthorizeOrder) Body() any      { return e.Source }
