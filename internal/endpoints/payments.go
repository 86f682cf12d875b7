package endpoints

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/rm-hull/paypal-api/internal/paypal"
)

const (
	authorizationsPath = "/v2/payments/authorizations"
	capturesPath       = "/v2/payments/captures"
)

type GetAuthorizedPayment struct {
	paypal.Returns[models.AuthorizedPaymentDetails]
	paypal.NoQuery
	paypal.NoBody
	AuthorizationId string
}

func NewGetAuthorizedPayment(authorizationId string) *GetAuthorizedPayment {
	return &GetAuthorizedPayment{AuthorizationId: authorizationId}
}

func (e *GetAuthorizedPayment) RelativePath() string {
	return fmt.Sprintf("%s/%s", authorizationsPath, url.PathEscape(e.AuthorizationId))
}
func (e *GetAuthorizedPayment) Method() string { return http.MethodGet }

// CaptureAuthorizedPayment captures all of an authorization, or the amount
// given in the request.
type CaptureAuthorizedPayment struct {
	paypal.Returns[models.Capture]
	paypal.NoQuery
	AuthorizationId string
	Request         models.CaptureRequest
}

func NewCaptureAuthorizedPayment(authorizationId string, request models.CaptureRequest) *CaptureAuthorizedPayment {
	return &CaptureAuthorizedPayment{AuthorizationId: authorizationId, Request: request}
}

func (e *CaptureAuthorizedPayment) RelativePath() string {
	return fmt.Sprintf("%s/%s/capture", authorizationsPath, url.PathEscape(e.AuthorizationId))
}
func (e *CaptureAuthorizedPayment) Method() string { return http.MethodPost }
func (e *CaptureAuthorizedPayment) Body() any      { return e.Request }

type VoidAuthorizedPayment struct {
	paypal.Returns[paypal.Empty]
	paypal.NoQuery
	paypal.NoBody
	AuthorizationId string
}

func NewVoidAuthorizedPayment(authorizationId string) *VoidAuthorizedPayment {
	return &VoidAuthorizedPayment{AuthorizationId: authorizationId}
}

func (e *VoidAuthorizedPayment) RelativePath() string {
	return fmt.Sprintf("%s/%s/void", authorizationsPath, url.PathEscape(e.AuthorizationId))
}
func (e *VoidAuthorizedPayment) Method() string { return http.MethodPost }

type GetCapturedPayment struct {
	paypal.Returns[models.Capture]
	paypal.NoQuery
	paypal.NoBody
	CaptureId string
}

func NewGetCapturedPayment(captureId string) *GetCapturedPayment {
	return &GetCapturedPayment{CaptureId: captureId}
}

func (e *GetCapturedPayment) RelativePath() string {
	return fmt.Sprintf("%s/%s", capturesPath, url.PathEscape(e.CaptureId))
}
func (e *GetCapturedPayment) Method() string { return http.MethodGet }

type RefundCapturedPayment struct {
	paypal.Returns[models.Refund]
	paypal.NoQuery
	CaptureId string
	Request   models.RefundRequest
}

func NewRefundCapturedPayment(captureId string, request models.RefundRequest) *RefundCapturedPayment {
	return &RefundCapturedPayment{CaptureId: captureId, Request: request}
}

func (e *RefundCapturedPayment) RelativePath() string {
	return fmt.Sprintf("%s/%s/refund", capturesPath, url.PathEscape(e.CaptureId))
}
func (e *RefundCapturedPayment) Method() string { return http.MethodPost }
func (e *RefundCapturedPayment) Body() any      { return e.Request }
