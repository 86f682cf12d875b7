package cmd

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rm-hull/paypal-api/internal/endpoints"
	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/rm-hull/paypal-api/internal/paypal"
)

func GetAuthorization(authorizationId string) error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	auth, err := paypal.Execute(context.Background(), client, endpoints.NewGetAuthorizedPayment(authorizationId))
	if err != nil {
		return fmt.Errorf("failed to get authorization %s: %w", authorizationId, err)
	}

	return printJSON(auth)
}

func CaptureAuthorization(authorizationId string, final bool) error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	capture, err := paypal.Execute(context.Background(), client, endpoints.NewCaptureAuthorizedPayment(authorizationId, models.CaptureRequest{
		FinalCapture: models.Ptr(final),
	}))
	if err != nil {
		return fmt.Errorf("failed to capture authorization %s: %w", authorizationId, err)
	}

	return printJSON(capture)
}

func VoidAuthorization(authorizationId string) error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	if _, err := paypal.Execute(context.Background(), client, endpoints.NewVoidAuthorizedPayment(authorizationId)); err != nil {
		return fmt.Errorf("failed to void authorization %s: %w", authorizationId, err)
	}

	return printJSON(map[string]string{"id": authorizationId, "status": string(models.PaymentStatusVoided)})
}

func RefundCapture(captureId, currency, value string) error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	request := models.RefundRequest{}
	if value != "" {
		amount := models.NewMoney(models.Currency(currency), value)
		request.Amount = &amount
	}

	refund, err := paypal.Execute(context.Background(), client, endpoints.NewRefundCapturedPayment(captureId, request))
	if err != nil {
		return fmt.Errorf("failed to refund capture %s: %w", captureId, err)
	}

	return printJSON(refund)
}
