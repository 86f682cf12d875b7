package cmd

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rm-hull/godx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/rm-hull/paypal-api/internal"
	"github.com/rm-hull/paypal-api/internal/paypal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var stdout io.Writer = os.Stdout

// newClient builds a PayPal client from PAYPAL_CLIENT_ID, PAYPAL_SECRET and
// PAYPAL_ENV. Outbound calls are traced and counted into reg.
func newClient(reg prometheus.Registerer) (*paypal.Client, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	clientId := os.Getenv("PAYPAL_CLIENT_ID")
	secret := os.Getenv("PAYPAL_SECRET")
	if clientId == "" || secret == "" {
		return nil, errors.New("PAYPAL_CLIENT_ID and PAYPAL_SECRET must both be set")
	}

	env, err := paypal.ParseEnvironment(os.Getenv("PAYPAL_ENV"))
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout:   30 * time.Second,
		Transport: otelhttp.NewTransport(paypal.InstrumentedTransport(http.DefaultTransport, reg)),
	}

	return paypal.NewClient(clientId, secret, env, paypal.WithHTTPClient(httpClient)), nil
}

// bootstrap initialises shared resources used by both the API server and import
// commands. It returns the PayPal client, a repository, and an error
// if something failed during startup.
func bootstrap(dbPath string) (*paypal.Client, internal.InvoiceRepository, error) {
	godx.GitVersion()
	godx.EnvironmentVars()
	godx.UserInfo()

	client, err := newClient(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create PayPal client: %w", err)
	}

	db, err := internal.Connect(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := internal.Migrate("migrations", dbPath); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to migrate SQL: %w", err)
	}

	repo := internal.NewInvoiceRepository(db)

	return client, repo, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal response")
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}
