package normalize

import "strings"

// Sentinels produced by the indicator normalizers.
const (
	Yes         = "Yes"
	No          = "No"
	NotProvided = "Not Provided"
)

// Bool maps an IRS checkbox value to "Yes" or "No". "X", "1" and "TRUE" in any
// case are checked; anything else, including nil, is unchecked.
func Bool(v *string) string {
	if v == nil {
		return No
	}
	switch strings.ToUpper(strings.TrimSpace(*v)) {
	case "X", "1", "TRUE":
		return Yes
	}
	return No
}

// Pct normalizes a percentage-or-indicator value. Blank or absent input becomes
// "Not Provided", boolean-like tokens become "TRUE" or "FALSE", and anything
// else is returned verbatim.
func Pct(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return NotProvided
	}
	switch strings.ToLower(strings.TrimSpace(*v)) {
	case "true", "1", "x":
		return "TRUE"
	case "false", "0":
		return "FALSE"
	}
	return *v
}

// Sentinel returns "Not Provided" for blank or absent input and the value
// verbatim otherwise. Unlike Pct it never rewrites 0 or 1.
func Sentinel(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return NotProvided
	}
	return *v
}
