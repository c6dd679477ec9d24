package testutil

import (
	"testing"

	"github.com/SayeemRaza50/compliance-checker/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertViolation asserts category and package of a violation.
func AssertViolation(t *testing.T, v entities.Violation, category entities.Category, pkg string) {
	t.Helper()
	assert.Equal(t, category, v.Category)
	assert.Equal(t, pkg, v.Package)
	assert.NotEmpty(t, v.Message)
}

// RequireSingleViolation asserts that exactly one violation was produced and returns it.
func RequireSingleViolation(t *testing.T, vs []entities.Violation) entities.Violation {
	t.Helper()
	require.Len(t, vs, 1, "expected exactly one violation, got %v", vs)
	return vs[0]
}

// ViolationPackages returns the package names of vs, in order.
func ViolationPackages(vs []entities.Violation) []string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Package
	}
	return names
}

// AssertGroupedByCategory asserts that violations never return to a
// category that comes earlier in evaluation order.
func AssertGroupedByCategory(t *testing.T, vs []entities.Violation) {
	t.Helper()
	rank := make(map[entities.Category]int)
	for i, c := range entities.Categories() {
		rank[c] = i
	}
	for i := 1; i < len(vs); i++ {
		assert.LessOrEqual(t, rank[vs[i-1].Category], rank[vs[i].Category],
			"violation %d (%s) precedes %d (%s)", i-1, vs[i-1].Category, i, vs[i].Category)
	}
}
