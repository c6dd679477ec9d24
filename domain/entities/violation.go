package entities

import "fmt"

// Violation is one reported non-compliance instance. It is immutable once produced.
type Violation struct {
	// Category is the rule group that produced the violation.
	Category Category `json:"category"`

	// Package is the name of the offending package.
	Package string `json:"package"`

	// Field is the package field that violated the rule, when one applies.
	Field string `json:"field,omitempty"`

	// Value is the offending value (license, supplier), when one applies.
	Value string `json:"value,omitempty"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// String implements fmt.Stringer.
func (v Violation) String() string {
	return v.Message
}

// DisallowedLicenseViolation reports a license field matching the deny list.
func DisallowedLicenseViolation(pkg, field, license string) Violation {
	return Violation{
		Category: CategoryDisallowedLicenses,
		Package:  pkg,
		Field:    field,
		Value:    license,
		Message:  fmt.Sprintf("Package '%s' uses disallowed license: %s", pkg, license),
	}
}

// NoAssertionViolation reports a field holding the NOASSERTION sentinel.
func NoAssertionViolation(pkg, field string) Violation {
	return Violation{
		Category: CategoryNoAssertionValues,
		Package:  pkg,
		Field:    field,
		Value:    NoAssertion,
		Message:  fmt.Sprintf("Package '%s' has %s for field: %s", pkg, NoAssertion, field),
	}
}

// MissingCopyrightViolation reports a package without usable copyright text.
func MissingCopyrightViolation(pkg, value string) Violation {
	return Violation{
		Category: CategoryRequiredCopyright,
		Package:  pkg,
		Field:    FieldCopyrightText,
		Value:    value,
		Message:  fmt.Sprintf("Package '%s' missing required copyright text", pkg),
	}
}

// UnapprovedSupplierViolation reports a supplier outside the approved set.
func UnapprovedSupplierViolation(pkg, supplier string) Violation {
	msg := fmt.Sprintf("Package '%s' has unapproved supplier: %s", pkg, supplier)
	if supplier == "" {
		msg = fmt.Sprintf("Package '%s' has no supplier", pkg)
	}
	return Violation{
		Category: CategoryApprovedSuppliers,
		Package:  pkg,
		Field:    FieldSupplier,
		Value:    supplier,
		Message:  msg,
	}
}
