// Package testutil provides fixtures and assertions shared by the checker's tests.
package testutil

import "github.com/SayeemRaza50/compliance-checker/domain/entities"

// Defaults used by CompliantPackage.
const (
	ApprovedSupplier = "Acme Corporation"
	ApprovedLicense  = "MIT"
	CopyrightText    = "Copyright (c) 2024 Acme Corporation"
)

// PackageOption customizes a fixture package.
type PackageOption func(*entities.Package)

// WithVersion sets the package version.
func WithVersion(v string) PackageOption {
	return func(p *entities.Package) { p.Version = v }
}

// WithLicenseConcluded sets the concluded license.
func WithLicenseConcluded(l string) PackageOption {
	return func(p *entities.Package) { p.LicenseConcluded = l }
}

// WithLicenseDeclared sets the declared license.
func WithLicenseDeclared(l string) PackageOption {
	return func(p *entities.Package) { p.LicenseDeclared = l }
}

// WithCopyright sets the copyright text.
func WithCopyright(c string) PackageOption {
	return func(p *entities.Package) { p.CopyrightText = c }
}

// WithSupplier sets the supplier.
func WithSupplier(s string) PackageOption {
	return func(p *entities.Package) { p.Supplier = s }
}

// NewPackage builds a package with only the given fields set.
func NewPackage(name string, opts ...PackageOption) entities.Package {
	p := entities.Package{Name: name}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// CompliantPackage builds a package that passes FullPolicy.
func CompliantPackage(name string, opts ...PackageOption) entities.Package {
	base := []PackageOption{
		WithVersion("1.0.0"),
		WithLicenseConcluded(ApprovedLicense),
		WithLicenseDeclared(ApprovedLicense),
		WithCopyright(CopyrightText),
		WithSupplier(ApprovedSupplier),
	}
	return NewPackage(name, append(base, opts...)...)
}

// FullPolicy configures all four categories.
func FullPolicy() *entities.Policy {
	return &entities.Policy{
		DisallowedLicenses: []string{"GPL-3.0", "AGPL-3.0"},
		NoAssertionFields:  []string{entities.FieldLicenseConcluded, entities.FieldSupplier},
		RequiredCopyright:  true,
		ApprovedSuppliers:  []string{ApprovedSupplier, "Widget Inc"},
	}
}
