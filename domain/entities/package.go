package entities

import (
	"sort"
	"strings"
)

// NoAssertion is the SPDX sentinel meaning no claim was made about a field's value.
const NoAssertion = "NOASSERTION"

// Recognized package field names. These are the names a policy may list
// under no-assertion-values.
const (
	FieldName             = "name"
	FieldVersion          = "version"
	FieldLicenseConcluded = "license_concluded"
	FieldLicenseDeclared  = "license_declared"
	FieldCopyrightText    = "copyright_text"
	FieldSupplier         = "supplier"
)

// Package is the normalized view of one SBOM entry.
// Its identity for reporting purposes is Name; duplicates are allowed.
type Package struct {
	// Name identifies the package in violations.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Version is informational only.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// LicenseConcluded is the license the SBOM author concluded.
	LicenseConcluded string `json:"license_concluded,omitempty" yaml:"license_concluded,omitempty"`

	// LicenseDeclared is the license the package author declared.
	LicenseDeclared string `json:"license_declared,omitempty" yaml:"license_declared,omitempty"`

	// CopyrightText may be empty or NOASSERTION.
	CopyrightText string `json:"copyright_text,omitempty" yaml:"copyright_text,omitempty"`

	// Supplier names the originating organization, optionally in SPDX actor
	// form ("Organization: Acme Corporation").
	Supplier string `json:"supplier,omitempty" yaml:"supplier,omitempty"`
}

// FieldAccessor reads one named field of a package.
type FieldAccessor func(p *Package) string

var packageFields = map[string]FieldAccessor{
	FieldName:             func(p *Package) string { return p.Name },
	FieldVersion:          func(p *Package) string { return p.Version },
	FieldLicenseConcluded: func(p *Package) string { return p.LicenseConcluded },
	FieldLicenseDeclared:  func(p *Package) string { return p.LicenseDeclared },
	FieldCopyrightText:    func(p *Package) string { return p.CopyrightText },
	FieldSupplier:         func(p *Package) string { return p.Supplier },
}

// LookupField returns the accessor for a recognized field name.
func LookupField(name string) (FieldAccessor, bool) {
	fn, ok := packageFields[name]
	return fn, ok
}

// KnownFields returns the recognized field names in sorted order.
func KnownFields() []string {
	names := make([]string, 0, len(packageFields))
	for name := range packageFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field returns the value of the named field and whether the name is recognized.
func (p *Package) Field(name string) (string, bool) {
	fn, ok := LookupField(name)
	if !ok {
		return "", false
	}
	return fn(p), true
}

// FieldValue pairs a field name with the value read from a package.
type FieldValue struct {
	Field string
	Value string
}

// LicenseFields returns the license-bearing fields in the order they are checked.
func (p *Package) LicenseFields() []FieldValue {
	return []FieldValue{
		{Field: FieldLicenseConcluded, Value: p.LicenseConcluded},
		{Field: FieldLicenseDeclared, Value: p.LicenseDeclared},
	}
}

// IsNoAssertion reports whether v holds the NOASSERTION sentinel.
// Surrounding whitespace and letter case are ignored.
func IsNoAssertion(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), NoAssertion)
}
