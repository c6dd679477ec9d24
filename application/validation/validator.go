// Package validation rejects malformed packages and policies before a
// compliance run starts, so the engine never evaluates partial input.
package validation

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SayeemRaza50/compliance-checker/domain/entities"
	domainerrors "github.com/SayeemRaza50/compliance-checker/domain/errors"
	"github.com/SayeemRaza50/compliance-checker/domain/policy"
	"github.com/SayeemRaza50/compliance-checker/domain/ports"
	"github.com/go-playground/validator/v10"
)

// Validator implements ports.InputValidator using struct tags.
type Validator struct {
	validate *validator.Validate
}

var _ ports.InputValidator = (*Validator)(nil)

// NewValidator creates a Validator. Field names in errors use the JSON
// names, which are also the policy option names.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidatePolicy checks that the policy exists, that no list holds an empty
// entry and that every no-assertion field names a known package field.
func (v *Validator) ValidatePolicy(p *entities.Policy) error {
	if p == nil {
		return &domainerrors.InputError{Index: -1, Field: "policy", Err: domainerrors.ErrNilPolicy}
	}

	if err := v.validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if !stdErrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return &domainerrors.ConfigError{Err: err}
		}
		fe := fieldErrs[0]
		option, _, _ := strings.Cut(fe.Field(), "[")
		return &domainerrors.ConfigError{
			Field: option,
			Err:   fmt.Errorf("%w at %s", domainerrors.ErrEmptyEntry, fe.Field()),
		}
	}

	if _, err := policy.ResolveFields(p.NoAssertionFields); err != nil {
		return err
	}
	return nil
}

// ValidatePackages checks every package and reports the first malformed one.
func (v *Validator) ValidatePackages(packages []entities.Package) error {
	for i := range packages {
		err := v.validate.Struct(&packages[i])
		if err == nil {
			continue
		}

		var fieldErrs validator.ValidationErrors
		if !stdErrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return &domainerrors.InputError{Index: i, Err: err}
		}
		fe := fieldErrs[0]
		cause := fmt.Errorf("failed on the '%s' rule", fe.Tag())
		if fe.Field() == entities.FieldName {
			cause = domainerrors.ErrMissingName
		}
		return &domainerrors.InputError{Index: i, Field: fe.Field(), Err: cause}
	}
	return nil
}
