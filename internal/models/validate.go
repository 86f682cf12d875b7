package models

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

func (p *OrderPayload) Validate() error {
	return validate().Struct(p)
}

func (p *InvoicePayload) Validate() error {
	return validate().Struct(p)
}

func (p *RecordPaymentPayload) Validate() error {
	return validate().Struct(p)
}

func ValidatePatch(ops []PatchOperation) error {
	if len(ops) == 0 {
		return errors.New("at least one patch operation is required")
	}
	for _, op := range ops {
		if err := validate().Struct(op); err != nil {
			return err
		}
	}
	return nil
}
