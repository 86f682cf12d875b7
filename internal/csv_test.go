package internal

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	key   string
	value int
}

func pairFromCSV(record, headers []string) (pair, error) {
	n, err := strconv.Atoi(record[1])
	if err != nil {
		return pair{}, err
	}
	return pair{key: record[0], value: n}, nil
}

func TestParseCSV(t *testing.T) {
	t.Run("with header", func(t *testing.T) {
		var got []pair
		for result := range ParseCSV(strings.NewReader("key,value\na,1\nb,2\n"), true, pairFromCSV) {
			require.NoError(t, result.Error)
			got = append(got, result.Value)
		}
		assert.Equal(t, []pair{{"a", 1}, {"b", 2}}, got)
	})

	t.Run("without header", func(t *testing.T) {
		count := 0
		for result := range ParseCSV(strings.NewReader("a,1\nb,2\n"), false, pairFromCSV) {
			require.NoError(t, result.Error)
			count++
		}
		assert.Equal(t, 2, count)
	})

	t.Run("stops at the first bad record", func(t *testing.T) {
		var results []Result[pair]
		for result := range ParseCSV(strings.NewReader("a,1\nb,two\nc,3\n"), false, pairFromCSV) {
			results = append(results, result)
		}
		require.Len(t, results, 2)
		assert.NoError(t, results[0].Error)
		assert.ErrorContains(t, results[1].Error, "record 2")
	})

	t.Run("early break", func(t *testing.T) {
		count := 0
		for range ParseCSV(strings.NewReader("a,1\nb,2\nc,3\n"), false, pairFromCSV) {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})
}
