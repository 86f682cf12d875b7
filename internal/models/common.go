package models

import (
	"log"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Currency string

const (
	AUD Currency = "AUD"
	BRL Currency = "BRL"
	CAD Currency = "CAD"
	CNY Currency = "CNY"
	CZK Currency = "CZK"
	DKK Currency = "DKK"
	EUR Currency = "EUR"
	HKD Currency = "HKD"
	HUF Currency = "HUF"
	INR Currency = "INR"
	ILS Currency = "ILS"
	JPY Currency = "JPY"
	MYR Currency = "MYR"
	MXN Currency = "MXN"
	TWD Currency = "TWD"
	NZD Currency = "NZD"
	NOK Currency = "NOK"
	PHP Currency = "PHP"
	PLN Currency = "PLN"
	GBP Currency = "GBP"
	RUB Currency = "RUB"
	SGD Currency = "SGD"
	SEK Currency = "SEK"
	CHF Currency = "CHF"
	THB Currency = "THB"
	USD Currency = "USD"
)

type Money struct {
	CurrencyCode Currency `json:"currency_code" validate:"required,len=3"`
	Value        string   `json:"value" validate:"required,numeric"`
}

func NewMoney(currency Currency, value string) Money {
	return Money{CurrencyCode: currency, Value: value}
}

func (m Money) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(m.Value)
}

type LinkMethod string

const (
	LinkMethodGet     LinkMethod = "GET"
	LinkMethodPost    LinkMethod = "POST"
	LinkMethodPut     LinkMethod = "PUT"
	LinkMethodDelete  LinkMethod = "DELETE"
	LinkMethodHead    LinkMethod = "HEAD"
	LinkMethodConnect LinkMethod = "CONNECT"
	LinkMethodOptions LinkMethod = "OPTIONS"
	LinkMethodPatch   LinkMethod = "PATCH"
)

// LinkDescription is a HATEOAS link attached to most resources.
type LinkDescription struct {
	Href   string     `json:"href"`
	Rel    string     `json:"rel,omitempty"`
	Method LinkMethod `json:"method,omitempty"`
}

// FindLink returns the first link with the given relation, e.g. "approve".
func FindLink(links []LinkDescription, rel string) (*LinkDescription, bool) {
	for i := range links {
		if links[i].Rel == rel {
			return &links[i], true
		}
	}
	return nil, false
}

type PhoneType string

const (
	PhoneTypeFax    PhoneType = "FAX"
	PhoneTypeHome   PhoneType = "HOME"
	PhoneTypeMobile PhoneType = "MOBILE"
	PhoneTypeOther  PhoneType = "OTHER"
	PhoneTypePager  PhoneType = "PAGER"
)

type AddressDetails struct {
	StreetNumber    string `json:"street_number,omitempty"`
	StreetName      string `json:"street_name,omitempty"`
	StreetType      string `json:"street_type,omitempty"`
	DeliveryService string `json:"delivery_service,omitempty"`
	BuildingName    string `json:"building_name,omitempty"`
	SubBuilding     string `json:"sub_building,omitempty"`
}

type Address struct {
	AddressLine1   string          `json:"address_line_1,omitempty"`
	AddressLine2   string          `json:"address_line_2,omitempty"`
	AdminArea2     string          `json:"admin_area_2,omitempty"`
	AdminArea1     string          `json:"admin_area_1,omitempty"`
	PostalCode     string          `json:"postal_code,omitempty"`
	CountryCode    string          `json:"country_code" validate:"required,len=2"`
	AddressDetails *AddressDetails `json:"address_details,omitempty"`
}

// Query is the common set of list parameters accepted by most GET
// collection endpoints. Unset fields are left out of the query string.
type Query struct {
	Count              *int       `url:"count,omitempty"`
	EndTime            *time.Time `url:"end_time,omitempty"`
	Page               *int       `url:"page,omitempty"`
	PageSize           *int       `url:"page_size,omitempty"`
	TotalCountRequired *bool      `url:"total_count_required,omitempty"`
	TotalRequired      *bool      `url:"total_required,omitempty"`
	SortBy             *string    `url:"sort_by,omitempty"`
	SortOrder          *string    `url:"sort_order,omitempty"`
	StartId            *string    `url:"start_id,omitempty"`
	StartIndex         *int       `url:"start_index,omitempty"`
	StartTime          *time.Time `url:"start_time,omitempty"`
}

func Ptr[T any](v T) *T {
	return &v
}

func toJSON(v any) string {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Error marshaling to JSON: %v", err)
	}
	return string(jsonBytes)
}
