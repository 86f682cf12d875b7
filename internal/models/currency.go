package models

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

type CurrencyInfo struct {
	Code     Currency
	Name     string
	Decimals int32
}

func (info *CurrencyInfo) ToCSV() []string {
	return []string{
		string(info.Code),
		info.Name,
		strconv.Itoa(int(info.Decimals)),
	}
}

func FromCSV(record, headers []string) (*CurrencyInfo, error) {
	if len(record) != 3 {
		return nil, errors.Newf("expected 3 fields, got %d", len(record))
	}
	decimals, err := strconv.Atoi(record[2])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid decimals for %s", record[0])
	}
	return &CurrencyInfo{
		Code:     Currency(record[0]),
		Name:     record[1],
		Decimals: int32(decimals),
	}, nil
}
