package paypal

import (
	"encoding/base64"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
)

type assertionClaims struct {
	PayerID string `json:"payer_id"`
	jwt.RegisteredClaims
}

// AuthAssertion builds the PayPal-Auth-Assertion header value used when
// acting on behalf of another merchant: an HS256 JWT carrying the issuing
// client id and the merchant payer id, base64 encoded.
func AuthAssertion(issuer, payerID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, assertionClaims{
		PayerID: payerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: issuer,
		},
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign auth assertion")
	}
	return base64.StdEncoding.EncodeToString([]byte(signed)), nil
}
