package paypal

import (
	"context"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rm-hull/paypal-api/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const tokenPath = "/v1/oauth2/token"

// AccessTokenExpired reports whether a new token must be fetched before the
// next request: either none was ever acquired or its validity has elapsed.
func (c *Client) AccessTokenExpired() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokenExpired()
}

func (c *Client) tokenExpired() bool {
	if c.token == nil {
		return true
	}
	return c.now().Sub(c.acquiredAt) >= c.validity
}

// AccessToken returns a copy of the cached token, or nil if none was acquired.
func (c *Client) AccessToken() *models.AccessToken {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == nil {
		return nil
	}
	token := *c.token
	return &token
}

// AcquireToken fetches a bearer token with the client credentials grant,
// unless the cached one is still valid.
func (c *Client) AcquireToken(ctx context.Context) error {
	if !c.AccessTokenExpired() {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.tokenExpired() {
		return nil
	}

	config := &clientcredentials.Config{
		ClientID:     c.clientID,
		ClientSecret: c.secret,
		TokenURL:     c.env.MakeURL(tokenPath),
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	tok, err := config.Token(context.WithValue(ctx, oauth2.HTTPClient, c.tokenHTTPClient()))
	if err != nil {
		return classifyTokenError(err)
	}

	accessToken := toAccessToken(tok)
	c.token = accessToken
	c.acquiredAt = c.now()
	c.validity = time.Duration(accessToken.ExpiresIn) * time.Second

	c.logger.Printf("acquired access token for app %s, expires in %d seconds", accessToken.AppId, accessToken.ExpiresIn)
	return nil
}

// tokenHTTPClient shares the configured client but tags round-trip failures
// so they can be told apart from OAuth2 error responses.
func (c *Client) tokenHTTPClient() *http.Client {
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc := *c.httpClient
	hc.Transport = transportErrorRoundTripper{base: base}
	return &hc
}

type transportErrorRoundTripper struct {
	base http.RoundTripper
}

// RoundTrip also marks successful token responses as JSON; x/oauth2 would
// form-decode a text/plain body.
func (rt transportErrorRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := rt.base.RoundTrip(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		if resp.Header == nil {
			resp.Header = make(http.Header)
		}
		if mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type")); mediaType != "application/json" {
			resp.Header.Set("Content-Type", "application/json")
		}
	}
	return resp, nil
}

func classifyTokenError(err error) error {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		statusCode := 0
		if retrieveErr.Response != nil {
			statusCode = retrieveErr.Response.StatusCode
		}
		return decodeAPIError(statusCode, retrieveErr.Body)
	}

	return &DecodeError{Err: err}
}

func toAccessToken(tok *oauth2.Token) *models.AccessToken {
	accessToken := &models.AccessToken{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		Scope:       extraString(tok, "scope"),
		AppId:       extraString(tok, "app_id"),
		Nonce:       extraString(tok, "nonce"),
	}

	switch v := tok.Extra("expires_in").(type) {
	case float64:
		accessToken.ExpiresIn = int64(v)
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			accessToken.ExpiresIn = n
		}
	}
	return accessToken
}

func extraString(tok *oauth2.Token, key string) string {
	if v, ok := tok.Extra(key).(string); ok {
		return v
	}
	return ""
}
