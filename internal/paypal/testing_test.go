package paypal

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

const (
	testClientID = "AeA1QIZXiflr1_-r0U2UbWTziOWX1GRQer-HBGqr7X9ebGUHpeg8BSb4"
	testSecret   = "ECYYrrSHdKfk_Q0IdjmKyzFNx0H5YzYL1amWWbPM4jZjM8jTxwRVDYaY"
	testToken    = "A21AAFEpH4PsADK7qSS7pSRsgzfENtu-Q1ysgEDVDESseMHBYXVJYE8ovjj68elIDy8nF26AwPhfXTIeWAZHSLIsQkSYz9ifg"
)

type mockPaypal struct {
	*httptest.Server
	expiresIn     int
	tokenRequests atomic.Int32

	mu       sync.Mutex
	requests []*http.Request
	bodies   [][]byte
}

// newMockPaypal starts a server that issues bearer tokens on the OAuth2 path
// and passes everything else to handler.
func newMockPaypal(t *testing.T, expiresIn int, handler http.HandlerFunc) *mockPaypal {
	m := &mockPaypal{expiresIn: expiresIn}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == tokenPath {
			m.tokenRequests.Add(1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = fmt.Fprintf(w, `{
				"scope": "https://uri.paypal.com/services/invoicing openid",
				"access_token": %q,
				"token_type": "Bearer",
				"app_id": "APP-80W284485P519543T",
				"expires_in": %d,
				"nonce": "2020-04-03T15:35:36ZaYZlGvEkV4yVSz8g6bAKFoGSEzuy3CQcz3ljhibkOHg"
			}`, testToken, m.expiresIn)
			return
		}

		body, _ := io.ReadAll(r.Body)
		m.mu.Lock()
		m.requests = append(m.requests, r)
		m.bodies = append(m.bodies, body)
		m.mu.Unlock()

		if handler != nil {
			handler(w, r)
		}
	}))
	t.Cleanup(m.Close)
	return m
}

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func (m *mockPaypal) lastRequest() (*http.Request, []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil, nil
	}
	return m.requests[len(m.requests)-1], m.bodies[len(m.bodies)-1]
}

func (m *mockPaypal) client(opts ...Option) *Client {
	return NewClient(testClientID, testSecret, Mock(m.URL), opts...)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
