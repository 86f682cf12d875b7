package paypal

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedTransport(t *testing.T) {
	m := newMockPaypal(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"W-1"}`)
	})

	reg := prometheus.NewRegistry()
	httpClient := &http.Client{Transport: InstrumentedTransport(nil, reg)}
	c := m.client(WithHTTPClient(httpClient))

	_, err := Execute(context.Background(), c, widgetEndpoint{method: http.MethodGet, path: "/v1/widgets/W-1"})
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := make(map[string]float64)
	for _, family := range families {
		if family.GetName() != "paypal_client_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := make(map[string]string)
			for _, label := range metric.GetLabel() {
				labels[label.GetName()] = label.GetValue()
			}
			counts[labels["method"]+" "+labels["code"]] += metric.GetCounter().GetValue()
		}
	}

	assert.Equal(t, 1.0, counts["post 200"], "token request")
	assert.Equal(t, 1.0, counts["get 200"], "api request")
}
