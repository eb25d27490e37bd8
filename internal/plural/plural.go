// Package plural provides CLDR plural form selection for currency names.
// Form names: "one", "other".
package plural

import "strings"

// Form returns the CLDR plural form for the given language tag and count.
// Language tag is normalized to base (e.g. "en-US" -> "en"). Languages without
// a rule here default to "other".
func Form(lang string, count uint64) string {
	base := strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.Index(base, "-"); idx > 0 {
		base = base[:idx]
	}
	if idx := strings.Index(base, "_"); idx > 0 {
		base = base[:idx]
	}
	switch base {
	case "en":
		return formOneOther(count)
	default:
		return "other"
	}
}

func formOneOther(n uint64) string {
	if n == 1 {
		return "one"
	}
	return "other"
}
