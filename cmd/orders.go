package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rm-hull/paypal-api/internal/endpoints"
	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/rm-hull/paypal-api/internal/paypal"
)

type CreateOrderOptions struct {
	Intent      string
	Currency    string
	Value       string
	Description string
	RequestId   string
}

func CreateOrder(opts CreateOrderOptions) error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	unit := models.NewPurchaseUnit(models.NewAmount(models.Currency(strings.ToUpper(opts.Currency)), opts.Value))
	unit.Description = opts.Description
	payload := models.NewOrderPayload(models.Intent(strings.ToUpper(opts.Intent)), unit)
	if err := payload.Validate(); err != nil {
		return fmt.Errorf("invalid order: %w", err)
	}

	requestId := opts.RequestId
	if requestId == "" {
		requestId = uuid.NewString()
	}

	order, err := paypal.ExecuteWithHeaders(context.Background(), client, endpoints.NewCreateOrder(payload), paypal.HeaderParams{
		RequestID: requestId,
		Prefer:    paypal.PreferRepresentation,
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return printJSON(order)
}

func GetOrder(orderId string) error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	order, err := paypal.Execute(context.Background(), client, endpoints.NewShowOrderDetails(orderId))
	if err != nil {
		return fmt.Errorf("failed to get order %s: %w", orderId, err)
	}

	return printJSON(order)
}

func CaptureOrder(orderId string, requestId string) error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	order, err := paypal.ExecuteWithHeaders(context.Background(), client, endpoints.NewCaptureOrder(orderId), paypal.HeaderParams{
		RequestID: requestId,
		Prefer:    paypal.PreferRepresentation,
	})
	if err != nil {
		return fmt.Errorf("failed to capture order %s: %w", orderId, err)
	}

	return printJSON(order)
}

func AuthorizeOrder(orderId string, requestId string) error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	order, err := paypal.ExecuteWithHeaders(context.Background(), client, endpoints.NewAuthorizeOrder(orderId), paypal.HeaderParams{
		RequestID: requestId,
		Prefer:    paypal.PreferRepresentation,
	})
	if err != nil {
		return fmt.Errorf("failed to authorize order %s: %w", orderId, err)
	}

	return printJSON(order)
}
