package config

import (
	"github.com/SayeemRaza50/compliance-checker/domain/entities"
	domainerrors "github.com/SayeemRaza50/compliance-checker/domain/errors"
)

// Recognized policy option keys.
const (
	KeyDisallowedLicenses = string(entities.CategoryDisallowedLicenses)
	KeyNoAssertionValues  = string(entities.CategoryNoAssertionValues)
	KeyRequiredCopyright  = string(entities.CategoryRequiredCopyright)
	KeyApprovedSuppliers  = string(entities.CategoryApprovedSuppliers)
)

// PolicyFromMap builds a Policy from a decoded policy document.
//
// A key that is absent or null leaves its rule omitted (nil list); a key
// holding an empty list leaves it present but empty. Values of the wrong
// type are ConfigErrors. Unrecognized keys are ignored.
func PolicyFromMap(cfg Config) (*entities.Policy, error) {
	if cfg == nil {
		return nil, &domainerrors.InputError{Index: -1, Field: "policy", Err: domainerrors.ErrNilPolicy}
	}

	p := &entities.Policy{}
	lists := []struct {
		key string
		dst *[]string
	}{
		{KeyDisallowedLicenses, &p.DisallowedLicenses},
		{KeyNoAssertionValues, &p.NoAssertionFields},
		{KeyApprovedSuppliers, &p.ApprovedSuppliers},
	}
	for _, l := range lists {
		if !present(cfg, l.key) {
			continue
		}
		values, err := MustGetStringSlice(cfg, l.key)
		if err != nil {
			return nil, err
		}
		*l.dst = values
	}

	if present(cfg, KeyRequiredCopyright) {
		b, err := MustGetBool(cfg, KeyRequiredCopyright)
		if err != nil {
			return nil, err
		}
		p.RequiredCopyright = b
	}

	return p, nil
}

func present(cfg Config, key string) bool {
	v, ok := cfg[key]
	return ok && v != nil
}
