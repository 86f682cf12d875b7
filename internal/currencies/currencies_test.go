package currencies

import (
	"testing"

	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrencyList(t *testing.T) {
	list, err := GetCurrencyList()
	require.NoError(t, err)
	assert.Len(t, list, 26)
	assert.Equal(t, models.AUD, list[0].Code)
	assert.Equal(t, "Australian dollar", list[0].Name)
}

func TestGetCurrencyMap(t *testing.T) {
	m, err := GetCurrencyMap()
	require.NoError(t, err)

	for _, code := range []models.Currency{models.USD, models.EUR, models.GBP, models.JPY, models.INR} {
		assert.Contains(t, m, code)
	}
}

func TestLookup(t *testing.T) {
	info, ok := Lookup(models.JPY)
	require.True(t, ok)
	assert.Equal(t, int32(0), info.Decimals)
	assert.Equal(t, []string{"JPY", "Japanese yen", "0"}, info.ToCSV())

	_, ok = Lookup("XYZ")
	assert.False(t, ok)

	assert.Equal(t, int32(2), Decimals(models.USD))
	assert.Equal(t, int32(0), Decimals(models.HUF))
	assert.Equal(t, int32(2), Decimals("XYZ"))
}
