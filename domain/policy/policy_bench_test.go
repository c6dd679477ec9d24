package policy_test

import (
	"fmt"
	"testing"

	"github.com/SayeemRaza50/compliance-checker/domain/entities"
	"github.com/SayeemRaza50/compliance-checker/domain/policy"
	"github.com/SayeemRaza50/compliance-checker/internal/testutil"
)

func benchPackages(n int) []entities.Package {
	pkgs := make([]entities.Package, n)
	for i := range pkgs {
		pkgs[i] = testutil.CompliantPackage(fmt.Sprintf("pkg-%d", i))
	}
	return pkgs
}

func BenchmarkDisallowedLicenses(b *testing.B) {
	h := &policy.DisallowedLicensesHandler{}
	pkgs := benchPackages(1000)
	denied := make([]string, 500)
	for i := range denied {
		denied[i] = fmt.Sprintf("LicenseRef-denied-%d", i)
	}
	p := &entities.Policy{DisallowedLicenses: denied}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Check(pkgs, p)
	}
}

func BenchmarkDisallowedLicenses_Expressions(b *testing.B) {
	h := policy.DefaultHandlers(policy.WithLicenseExpressions(true))[0]
	pkgs := benchPackages(1000)
	for i := range pkgs {
		pkgs[i].LicenseConcluded = "(MIT OR Apache-2.0) AND BSD-3-Clause"
	}
	p := &entities.Policy{DisallowedLicenses: []string{"GPL-3.0-only", "AGPL-3.0"}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Check(pkgs, p)
	}
}

func BenchmarkApprovedSuppliers(b *testing.B) {
	h := &policy.ApprovedSuppliersHandler{}
	pkgs := benchPackages(1000)
	p := &entities.Policy{ApprovedSuppliers: []string{testutil.ApprovedSupplier}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Check(pkgs, p)
	}
}
