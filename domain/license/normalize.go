package license

import "strings"

// aliases maps cleaned informal names to SPDX identifiers. Keys are upper
// case with the word "LICENSE" and a leading "THE" removed.
var aliases = map[string]string{
	"GPL V3":       "GPL-3.0-only",
	"GPL V2":       "GPL-2.0-only",
	"APACHE 2.0":   "Apache-2.0",
	"MIT":          "MIT",
	"BSD 3-CLAUSE": "BSD-3-Clause",
	"MPL 2.0":      "MPL-2.0",
}

// reserved values never name a concrete license and are never disallowed.
var reserved = map[string]struct{}{
	"":            {},
	"NOASSERTION": {},
	"NONE":        {},
	"UNKNOWN":     {},
	"PROPRIETARY": {},
	"NO-LICENSE":  {},
	"UNLICENSED":  {},
	"COMMERCIAL":  {},
	"CUSTOM":      {},
}

// IsReserved reports whether s is a placeholder such as NOASSERTION or NONE.
func IsReserved(s string) bool {
	_, ok := reserved[strings.ToUpper(strings.TrimSpace(s))]
	return ok
}

// Normalize maps an informal license name to its SPDX identifier.
// Names without a known alias come back with whitespace collapsed and
// otherwise unchanged.
func Normalize(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	cleaned := make([]string, 0, len(words))
	for i, w := range words {
		u := strings.ToUpper(w)
		if u == "LICENSE" || (i == 0 && u == "THE") {
			continue
		}
		cleaned = append(cleaned, u)
	}
	if id, ok := aliases[strings.Join(cleaned, " ")]; ok {
		return id
	}
	return strings.Join(words, " ")
}
