package currencies

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rm-hull/paypal-api/internal"
	"github.com/rm-hull/paypal-api/internal/models"
)

//go:embed currencies.csv
var currenciesCSV string

type Currencies map[models.Currency]*models.CurrencyInfo

var loadCurrencies = sync.OnceValues(func() (Currencies, error) {
	list, err := GetCurrencyList()
	if err != nil {
		return nil, err
	}

	m := make(Currencies, len(list))
	for _, record := range list {
		if _, ok := m[record.Code]; ok {
			return nil, errors.Newf("duplicate key detected: %s", record.Code)
		}
		m[record.Code] = record
	}
	return m, nil
})

// GetCurrencyList returns the currencies PayPal accepts, in file order.
func GetCurrencyList() ([]*models.CurrencyInfo, error) {
	arr := make([]*models.CurrencyInfo, 0, 30)
	reader := strings.NewReader(currenciesCSV)

	for record := range internal.ParseCSV(reader, false, models.FromCSV) {
		if record.Error != nil {
			return nil, errors.Wrap(record.Error, "failed to load currencies")
		}
		arr = append(arr, record.Value)
	}

	return arr, nil
}

func GetCurrencyMap() (Currencies, error) {
	return loadCurrencies()
}

func Lookup(code models.Currency) (*models.CurrencyInfo, bool) {
	m, err := loadCurrencies()
	if err != nil {
		return nil, false
	}
	info, ok := m[code]
	return info, ok
}

// Decimals returns the number of minor units for code, defaulting to 2 for
// anything not in the table.
func Decimals(code models.Currency) int32 {
	if info, ok := Lookup(code); ok {
		return info.Decimals
	}
	return 2
}
