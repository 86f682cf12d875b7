package models

import (
	"fmt"
	"strings"
)

type AccessToken struct {
	Scope       string `json:"scope"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	AppId       string `json:"app_id"`
	ExpiresIn   int64  `json:"expires_in"`
	Nonce       string `json:"nonce"`
}

// PaypalError is the error payload returned by the REST API on a non-2xx
// response. The OAuth2 endpoint only fills Error and ErrorDescription.
type PaypalError struct {
	Name             string              `json:"name"`
	Message          string              `json:"message,omitempty"`
	DebugId          string              `json:"debug_id,omitempty"`
	Details          []map[string]string `json:"details,omitempty"`
	Error            string              `json:"error,omitempty"`
	ErrorDescription string              `json:"error_description,omitempty"`
	Links            []LinkDescription   `json:"links,omitempty"`
}

func (e *PaypalError) String() string {
	var sb strings.Builder
	switch {
	case e.Name != "":
		sb.WriteString(e.Name)
		if e.Message != "" {
			fmt.Fprintf(&sb, ": %s", e.Message)
		}
	case e.Error != "":
		sb.WriteString(e.Error)
		if e.ErrorDescription != "" {
			fmt.Fprintf(&sb, ": %s", e.ErrorDescription)
		}
	default:
		sb.WriteString("unknown error")
	}
	if e.DebugId != "" {
		fmt.Fprintf(&sb, " (debug_id=%s)", e.DebugId)
	}
	return sb.String()
}

// Issues returns the "issue" entries of the error details, e.g. ORDER_NOT_APPROVED.
func (e *PaypalError) Issues() []string {
	issues := make([]string, 0, len(e.Details))
	for _, detail := range e.Details {
		if issue, ok := detail["issue"]; ok {
			issues = append(issues, issue)
		}
	}
	return issues
}
