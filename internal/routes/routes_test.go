package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/rm-hull/paypal-api/internal/paypal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tavsec/gin-healthcheck/checks"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const tokenBody = `{"access_token":"TESTBEARERTOKEN","token_type":"Bearer","expires_in":32400,"app_id":"APP-80W284485P519543T","scope":"openid"}`

type fakeRepo struct {
	results    []models.InvoiceSummary
	lastSynced *time.Time
	status     models.InvoiceStatus
	limit      int
}

func (r *fakeRepo) UpsertInvoices(batch []models.Invoice) (int, error) { return len(batch), nil }

func (r *fakeRepo) Search(status models.InvoiceStatus, limit int) ([]models.InvoiceSummary, error) {
	r.status = status
	r.limit = limit
	return r.results, nil
}

func (r *fakeRepo) LastSynced() (*time.Time, error) { return r.lastSynced, nil }
func (r *fakeRepo) Check() checks.Check             { return nil }
func (r *fakeRepo) Close() error                    { return nil }

type upstream struct {
	*httptest.Server
	orderCalls atomic.Int32
	requestId  atomic.Value
	requestURI atomic.Value
}

func newUpstream(t *testing.T, orderStatus int, orderBody string) *upstream {
	u := &upstream{}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/v1/oauth2/token" {
			_, _ = io.WriteString(w, tokenBody)
			return
		}
		u.orderCalls.Add(1)
		u.requestId.Store(r.Header.Get("PayPal-Request-Id"))
		u.requestURI.Store(r.Method + " " + r.RequestURI)
		w.WriteHeader(orderStatus)
		_, _ = io.WriteString(w, orderBody)
	}))
	t.Cleanup(u.Close)
	return u
}

func newRouter(repo *fakeRepo, client *paypal.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/invoices", Invoices(repo))
	if client != nil {
		r.GET("/v1/orders/:id", GetOrder(client))
		r.POST("/v1/orders", CreateOrder(client))
		r.POST("/v1/orders/:id/capture", CaptureOrder(client))
	}
	return r
}

func perform(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInvoices(t *testing.T) {
	synced := time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC)
	repo := &fakeRepo{
		lastSynced: &synced,
		results: []models.InvoiceSummary{
			{Id: "INV2-A", InvoiceNumber: "0002", Status: models.InvoiceStatusSent, CurrencyCode: models.USD, Amount: "25.00", DueAmount: "25.00"},
			{Id: "INV2-B", InvoiceNumber: "0001", Status: models.InvoiceStatusPaid, CurrencyCode: models.USD, Amount: "15.50"},
		},
	}
	r := newRouter(repo, nil)

	t.Run("defaults", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/v1/invoices", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, models.InvoiceStatus(""), repo.status)
		assert.Equal(t, DEFAULT_LIMIT, repo.limit)

		var resp models.SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Results, 2)
		require.NotNil(t, resp.Statistics)
		assert.Equal(t, "40.50", resp.Statistics.TotalAmount[models.USD])
		assert.Equal(t, "25.00", resp.Statistics.OutstandingAmount[models.USD])
		require.NotNil(t, resp.LastUpdated)
		assert.True(t, synced.Equal(*resp.LastUpdated))
	})

	t.Run("status filter is case insensitive", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/v1/invoices?status=paid&limit=5", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, models.InvoiceStatusPaid, repo.status)
		assert.Equal(t, 5, repo.limit)
	})

	tests := []struct {
		name  string
		query string
	}{
		{"unknown status", "?status=BOGUS"},
		{"non numeric limit", "?limit=ten"},
		{"zero limit", "?limit=0"},
		{"limit too large", "?limit=5000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(r, http.MethodGet, "/v1/invoices"+tt.query, "", nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetOrderIsMemoized(t *testing.T) {
	u := newUpstream(t, http.StatusOK, `{"id":"5O190127TN364715T","status":"APPROVED","intent":"CAPTURE"}`)
	r := newRouter(&fakeRepo{}, paypal.NewClient("clientid", "secret", paypal.Mock(u.URL)))

	first := perform(r, http.MethodGet, "/v1/orders/5O190127TN364715T", "", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Contains(t, first.Body.String(), `"status":"APPROVED"`)

	second := perform(r, http.MethodGet, "/v1/orders/5O190127TN364715T", "", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, int32(1), u.orderCalls.Load())
}

func TestGetOrderPassesThroughApiErrors(t *testing.T) {
	u := newUpstream(t, http.StatusNotFound, `{"name":"RESOURCE_NOT_FOUND","message":"The specified resource does not exist.","debug_id":"90957fca61718"}`)
	r := newRouter(&fakeRepo{}, paypal.NewClient("clientid", "secret", paypal.Mock(u.URL)))

	w := perform(r, http.MethodGet, "/v1/orders/UNKNOWN", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RESOURCE_NOT_FOUND")
}

func TestCreateOrder(t *testing.T) {
	u := newUpstream(t, http.StatusCreated, `{"id":"5O190127TN364715T","status":"CREATED","intent":"CAPTURE"}`)
	r := newRouter(&fakeRepo{}, paypal.NewClient("clientid", "secret", paypal.Mock(u.URL)))
	valid := `{"intent":"CAPTURE","purchase_units":[{"amount":{"currency_code":"USD","value":"100.00"}}]}`

	t.Run("request id passthrough", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/v1/orders", valid, map[string]string{"PayPal-Request-Id": "REQ-42"})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "REQ-42", w.Header().Get("PayPal-Request-Id"))
		assert.Equal(t, "REQ-42", u.requestId.Load())
	})

	t.Run("request id generated", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/v1/orders", valid, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		generated := w.Header().Get("PayPal-Request-Id")
		assert.Len(t, generated, 36)
		assert.Equal(t, generated, u.requestId.Load())
	})

	t.Run("invalid payload never reaches paypal", func(t *testing.T) {
		before := u.orderCalls.Load()
		w := perform(r, http.MethodPost, "/v1/orders", `{"intent":"SELL","purchase_units":[]}`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = perform(r, http.MethodPost, "/v1/orders", `not json`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, before, u.orderCalls.Load())
	})
}

func TestCaptureOrderUnreachable(t *testing.T) {
	u := newUpstream(t, http.StatusOK, `{}`)
	client := paypal.NewClient("clientid", "secret", paypal.Mock(u.URL))
	r := newRouter(&fakeRepo{}, client)
	u.Close()

	w := perform(r, http.MethodPost, "/v1/orders/5O190127TN364715T/capture", "", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestOrderIdIsEscapedUpstream(t *testing.T) {
	u := newUpstream(t, http.StatusOK, `{"id":"ABC","status":"APPROVED"}`)
	r := newRouter(&fakeRepo{}, paypal.NewClient("clientid", "secret", paypal.Mock(u.URL)))

	w := perform(r, http.MethodGet, "/v1/orders/ABC%3Fpage_size=100%26x=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GET /v2/checkout/orders/ABC%3Fpage_size=100&x=1", u.requestURI.Load())

	w = perform(r, http.MethodPost, "/v1/orders/XYZ%3Fa=b/capture", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "POST /v2/checkout/orders/XYZ%3Fa=b/capture", u.requestURI.Load())
}

func TestOrderIdRejectsDotSegments(t *testing.T) {
	u := newUpstream(t, http.StatusOK, `{}`)
	r := newRouter(&fakeRepo{}, paypal.NewClient("clientid", "secret", paypal.Mock(u.URL)))

	for _, path := range []string{
		"/v1/orders/..%3F/capture",
		"/v1/orders/..",
		"/v1/orders/%20",
	} {
		method := http.MethodGet
		if strings.HasSuffix(path, "/capture") {
			method = http.MethodPost
		}
		w := perform(r, method, path, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
	assert.Equal(t, int32(0), u.orderCalls.Load())
}

func TestGetOrderSurvivesCallerCancellation(t *testing.T) {
	u := newUpstream(t, http.StatusOK, `{"id":"5O190127TN364715T","status":"APPROVED"}`)
	r := newRouter(&fakeRepo{}, paypal.NewClient("clientid", "secret", paypal.Mock(u.URL)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/5O190127TN364715T", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(1), u.orderCalls.Load())
}
