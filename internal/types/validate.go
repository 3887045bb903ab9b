package types

import (
	"github.com/go-playground/validator/v10"
)

// enumKey is implemented by every enumeration key type in this package.
type enumKey interface {
	Valid() bool
}

// recordValidator is configured once; validator instances are safe for
// concurrent use.
var recordValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// The registration only fails for an empty tag name.
	_ = v.RegisterValidation("enumkey", validEnumKey)
	return v
}

// validEnumKey checks a field against its enumeration registry via the
// enumKey interface.
func validEnumKey(fl validator.FieldLevel) bool {
	key, ok := fl.Field().Interface().(enumKey)
	if !ok {
		return false
	}
	return key.Valid()
}

// Validate checks that every field of the record holds a key present in that
// field's enumeration registry. This is the type boundary the engines rely
// on: composition and matching assume records are already enum-valid.
func (r *AttributeRecord) Validate() error {
	return recordValidator.Struct(r)
}
