package paypal

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
)

// Environment selects the base URL that every request is sent to.
type Environment struct {
	name    string
	baseURL string
}

var (
	Live    = Environment{name: "live", baseURL: "https://api.paypal.com"}
	Sandbox = Environment{name: "sandbox", baseURL: "https://api.sandbox.paypal.com"}
)

// Mock points the client at an arbitrary server, typically an httptest.Server.
func Mock(baseURL string) Environment {
	return Environment{name: "mock", baseURL: strings.TrimSuffix(baseURL, "/")}
}

func ParseEnvironment(value string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "sandbox":
		return Sandbox, nil
	case "live", "production":
		return Live, nil
	}

	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Environment{}, errors.Newf("unknown paypal environment: %q", value)
	}
	return Mock(value), nil
}

func (env Environment) Name() string {
	return env.name
}

func (env Environment) BaseURL() string {
	return env.baseURL
}

// MakeURL joins the base URL with an absolute API path. It panics when path
// does not start with a slash.
func (env Environment) MakeURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		panic(fmt.Sprintf("paypal: relative path must start with '/': %q", path))
	}
	return env.baseURL + path
}

func (env Environment) String() string {
	return fmt.Sprintf("%s (%s)", env.name, env.baseURL)
}
