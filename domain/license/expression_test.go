package license_test

import (
	"testing"

	"github.com/SayeemRaza50/compliance-checker/domain/entities"
	"github.com/SayeemRaza50/compliance-checker/domain/license"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"GPL V3", "GPL-3.0-only"},
		{"gpl v3", "GPL-3.0-only"},
		{"  GPL   V3  ", "GPL-3.0-only"},
		{"GPL V2", "GPL-2.0-only"},
		{"Apache License 2.0", "Apache-2.0"},
		{"apache license 2.0", "Apache-2.0"},
		{"MIT License", "MIT"},
		{"The MIT License", "MIT"},
		{"BSD 3-Clause", "BSD-3-Clause"},
		{"MPL 2.0", "MPL-2.0"},
		{"Apache-2.0", "Apache-2.0"},
		{"Some  Custom   Thing", "Some Custom Thing"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, license.Normalize(tt.in))
		})
	}
}

func TestIsReserved(t *testing.T) {
	for _, v := range []string{"NOASSERTION", "noassertion", "NONE", "", " ", "UNKNOWN", "PROPRIETARY", "NO-LICENSE", "UNLICENSED", "COMMERCIAL", "CUSTOM"} {
		assert.True(t, license.IsReserved(v), v)
	}
	assert.False(t, license.IsReserved("MIT"))
	assert.False(t, license.IsReserved("GPL-3.0-only"))
}

func TestParse_String(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MIT", "MIT"},
		{"MIT OR Apache-2.0", "MIT OR Apache-2.0"},
		{"(MIT OR Apache-2.0) AND BSD-3-Clause", "(MIT OR Apache-2.0) AND BSD-3-Clause"},
		{"MIT AND Apache-2.0 OR BSD-3-Clause", "(MIT AND Apache-2.0) OR BSD-3-Clause"},
		{"GPL-2.0-only WITH Classpath-exception-2.0", "GPL-2.0-only WITH Classpath-exception-2.0"},
		{"mit or apache-2.0", "mit OR apache-2.0"},
		{"GPL V3 OR MIT License", "GPL V3 OR MIT License"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			node, err := license.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, node.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, expr := range []string{
		"",
		"   ",
		"MIT AND OR Apache-2.0",
		"((MIT OR Apache-2.0)",
		"MIT OR Apache-2.0)",
		"MIT WITH",
		"(MIT OR BSD-3-Clause) WITH Classpath-exception-2.0",
		"OR MIT",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := license.Parse(expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, license.ErrSyntax)
		})
	}
}

func TestMatcher_Disallowed(t *testing.T) {
	m := license.NewMatcher(entities.NewStringSet("GPL-3.0-only", "AGPL-3.0", "MPL-1.0"))

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"exact", "GPL-3.0-only", true},
		{"allowed", "MIT", false},
		{"alias", "GPL V3", true},
		{"alias lower case", "gpl v3", true},
		{"or with allowed branch", "GPL-3.0-only OR MIT", false},
		{"or all denied", "GPL-3.0-only OR MPL-1.0", true},
		{"or three all denied", "GPL-3.0-only OR MPL-1.0 OR AGPL-3.0", true},
		{"or three one allowed", "GPL-3.0-only OR MPL-1.0 OR MIT", false},
		{"and any denied", "MIT AND GPL-3.0-only AND Apache-2.0", true},
		{"and none denied", "MIT AND Apache-2.0 AND BSD-3-Clause", false},
		{"nested or allowed", "(GPL-3.0-only OR MIT) AND Apache-2.0", false},
		{"nested or denied", "(GPL-3.0-only OR MPL-1.0) AND Apache-2.0", true},
		{"nested both sides", "(MIT OR Apache-2.0) AND (GPL-3.0-only OR BSD-3-Clause)", false},
		{"nested denied and allowed", "(GPL-3.0-only OR MPL-1.0) AND (MIT OR Apache-2.0)", true},
		{"with exception", "GPL-3.0-only WITH GCC-exception-3.1", true},
		{"allowed with exception", "MIT WITH Custom-exception", false},
		{"with exception in or", "(GPL-3.0-only WITH GCC-exception-3.1) OR MIT", false},
		{"alias in or", "GPL V3 OR MPL-1.0", true},
		{"alias with allowed alias", "GPL V3 OR Apache License 2.0", false},
		{"noassertion", "NOASSERTION", false},
		{"none", "NONE", false},
		{"empty", "", false},
		{"malformed", "GPL-3.0-only AND OR MIT", false},
		{"unbalanced", "((GPL-3.0-only OR MIT)", false},
		{"unknown operator", "GPL-3.0-only MAYBE MIT", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Disallowed(tt.expr))
		})
	}
}

func TestMatcher_EmptyDenyList(t *testing.T) {
	m := license.NewMatcher(entities.NewStringSet())
	assert.False(t, m.Disallowed("GPL-3.0-only"))
}

func TestMatcher_ReservedInDenyList(t *testing.T) {
	// Reserved placeholders never match, even when listed.
	m := license.NewMatcher(entities.NewStringSet("NOASSERTION"))
	assert.False(t, m.Disallowed("NOASSERTION"))
}
