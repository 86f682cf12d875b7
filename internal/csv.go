package internal

import (
	"encoding/csv"
	"io"
	"iter"

	"github.com/cockroachdb/errors"
)

type Result[T any] struct {
	Value T
	Error error
}

// ParseCSV lazily maps each CSV record through fromCSV. When hasHeader is
// set the first record is passed to fromCSV as headers rather than parsed.
// Iteration stops after the first error.
func ParseCSV[T any](r io.Reader, hasHeader bool, fromCSV func(record, headers []string) (T, error)) iter.Seq[Result[T]] {
	return func(yield func(Result[T]) bool) {
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true

		var headers []string
		if hasHeader {
			record, err := reader.Read()
			if err != nil {
				if err != io.EOF {
					yield(Result[T]{Error: errors.Wrap(err, "failed to read CSV header")})
				}
				return
			}
			headers = record
		}

		line := 0
		for {
			line++
			record, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Result[T]{Error: errors.Wrapf(err, "failed to read CSV record %d", line)})
				return
			}

			value, err := fromCSV(record, headers)
			if err != nil {
				yield(Result[T]{Error: errors.Wrapf(err, "failed to parse CSV record %d", line)})
				return
			}
			if !yield(Result[T]{Value: value}) {
				return
			}
		}
	}
}
