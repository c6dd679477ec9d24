package entities

// Category identifies one of the four independent policy rule groups.
type Category string

const (
	// CategoryDisallowedLicenses rejects packages whose license fields match a disallowed license.
	CategoryDisallowedLicenses Category = "disallowed-licenses"

	// CategoryNoAssertionValues rejects packages whose listed fields hold NOASSERTION.
	CategoryNoAssertionValues Category = "no-assertion-values"

	// CategoryRequiredCopyright rejects packages without copyright text.
	CategoryRequiredCopyright Category = "required-copyright"

	// CategoryApprovedSuppliers rejects packages from suppliers outside the approved set.
	CategoryApprovedSuppliers Category = "approved-suppliers"
)

// Categories returns every category in evaluation order.
func Categories() []Category {
	return []Category{
		CategoryDisallowedLicenses,
		CategoryNoAssertionValues,
		CategoryRequiredCopyright,
		CategoryApprovedSuppliers,
	}
}

// Policy is the normalized view of the rules to enforce.
//
// A nil list means the policy omits the rule; a non-nil empty list means the
// rule is present but empty. Both leave the rule unconstrained, and
// Configured tells them apart for callers that care.
type Policy struct {
	// DisallowedLicenses lists license identifiers that make a package non-compliant.
	DisallowedLicenses []string `json:"disallowed-licenses,omitempty" yaml:"disallowed-licenses,omitempty" validate:"omitempty,dive,required" jsonschema:"description=License identifiers that make a package non-compliant when matched exactly"`

	// NoAssertionFields lists package field names that must not hold NOASSERTION.
	NoAssertionFields []string `json:"no-assertion-values,omitempty" yaml:"no-assertion-values,omitempty" validate:"omitempty,dive,required" jsonschema:"description=Package fields that must not hold the NOASSERTION sentinel"`

	// RequiredCopyright requires every package to carry copyright text.
	RequiredCopyright bool `json:"required-copyright,omitempty" yaml:"required-copyright,omitempty" jsonschema:"description=Require non-empty copyright text on every package"`

	// ApprovedSuppliers lists the only suppliers packages may come from.
	ApprovedSuppliers []string `json:"approved-suppliers,omitempty" yaml:"approved-suppliers,omitempty" validate:"omitempty,dive,required" jsonschema:"description=Supplier names packages must come from (exact match)"`
}

// Configured reports whether the policy mentions the category at all,
// even with an empty constraint.
func (p *Policy) Configured(c Category) bool {
	if p == nil {
		return false
	}
	switch c {
	case CategoryDisallowedLicenses:
		return p.DisallowedLicenses != nil
	case CategoryNoAssertionValues:
		return p.NoAssertionFields != nil
	case CategoryRequiredCopyright:
		return p.RequiredCopyright
	case CategoryApprovedSuppliers:
		return p.ApprovedSuppliers != nil
	}
	return false
}

// StringSet is a set of strings with O(1) membership checks.
type StringSet map[string]struct{}

// NewStringSet builds a set from values. Duplicates collapse.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is a member of the set.
func (s StringSet) Contains(v string) bool {
	_, ok := s[v]
	return ok
}
