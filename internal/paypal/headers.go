package paypal

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

type Prefer string

const (
	PreferMinimal        Prefer = "return=minimal"
	PreferRepresentation Prefer = "return=representation"
)

// HeaderParams are the optional per-request headers. Zero values are not sent.
type HeaderParams struct {
	MerchantPayerID      string
	ClientMetadataID     string
	PartnerAttributionID string
	RequestID            string
	Prefer               Prefer
	ContentType          string
}

func (c *Client) setupHeaders(req *http.Request, hasBody bool, params HeaderParams) error {
	req.Header.Set("Accept", "application/json")

	if token := c.AccessToken(); token != nil {
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	}

	if params.MerchantPayerID != "" {
		assertion, err := AuthAssertion(c.clientID, params.MerchantPayerID, c.secret)
		if err != nil {
			return errors.Wrap(err, "failed to build PayPal-Auth-Assertion header")
		}
		req.Header.Set("PayPal-Auth-Assertion", assertion)
	}

	if params.ClientMetadataID != "" {
		req.Header.Set("PayPal-Client-Metadata-Id", params.ClientMetadataID)
	}
	if params.PartnerAttributionID != "" {
		req.Header.Set("PayPal-Partner-Attribution-Id", params.PartnerAttributionID)
	}
	if params.RequestID != "" {
		req.Header.Set("PayPal-Request-Id", params.RequestID)
	}
	if params.Prefer != "" {
		req.Header.Set("Prefer", string(params.Prefer))
	}

	switch {
	case params.ContentType != "":
		req.Header.Set("Content-Type", params.ContentType)
	case hasBody:
		req.Header.Set("Content-Type", "application/json")
	}

	return nil
}
