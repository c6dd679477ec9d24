package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories_Order(t *testing.T) {
	assert.Equal(t, []Category{
		"disallowed-licenses",
		"no-assertion-values",
		"required-copyright",
		"approved-suppliers",
	}, Categories())
}

func TestPolicy_Configured(t *testing.T) {
	omitted := &Policy{}
	for _, c := range Categories() {
		assert.False(t, omitted.Configured(c), c)
	}

	empty := &Policy{
		DisallowedLicenses: []string{},
		NoAssertionFields:  []string{},
		ApprovedSuppliers:  []string{},
	}
	assert.True(t, empty.Configured(CategoryDisallowedLicenses))
	assert.True(t, empty.Configured(CategoryNoAssertionValues))
	assert.True(t, empty.Configured(CategoryApprovedSuppliers))
	assert.False(t, empty.Configured(CategoryRequiredCopyright))

	assert.True(t, (&Policy{RequiredCopyright: true}).Configured(CategoryRequiredCopyright))

	var nilPolicy *Policy
	assert.False(t, nilPolicy.Configured(CategoryDisallowedLicenses))
	assert.False(t, omitted.Configured(Category("unknown")))
}

func TestStringSet(t *testing.T) {
	s := NewStringSet("GPL-3.0", "AGPL-3.0", "GPL-3.0")
	assert.Len(t, s, 2)
	assert.True(t, s.Contains("GPL-3.0"))
	assert.False(t, s.Contains("gpl-3.0"))
	assert.False(t, s.Contains(""))

	assert.False(t, NewStringSet().Contains("x"))
}
