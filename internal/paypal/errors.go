package paypal

import (
	"fmt"

	"github.com/rm-hull/paypal-api/internal/models"
)

// TransportError is returned when the request never produced a response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("paypal: transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is returned when PayPal answers with a non-2xx status and a
// well-formed error body.
type APIError struct {
	StatusCode int
	Err        models.PaypalError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paypal: api error (status %d): %s", e.StatusCode, e.Err.String())
}

// DecodeError is returned when a response body does not match the expected
// schema. StatusCode is zero when the status is unknown.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("paypal: failed to decode response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
