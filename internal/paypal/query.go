package paypal

import (
	"github.com/cockroachdb/errors"
	"github.com/google/go-querystring/query"
)

// encodeQuery turns a query struct into a query string. Fields tagged
// omitempty and left unset do not appear; nil yields the empty string.
func encodeQuery(q any) (string, error) {
	if q == nil {
		return "", nil
	}
	values, err := query.Values(q)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode query parameters")
	}
	return values.Encode(), nil
}
