package emissions

import "strings"

// NormalizeToKilograms converts an amount in a free-text unit to kilograms.
//
// Units are matched case-insensitively: tonne/tonnes/t multiply by 1000 and
// g/gram/grams divide by 1000. Every other value, including "kg" and the
// empty string, is already treated as kilograms, so unrecognized units never
// produce an error.
func NormalizeToKilograms(amount float64, unit string) float64 {
	switch strings.ToLower(unit) {
	case "tonne", "tonnes", "t":
		return amount * 1000
	case "g", "gram", "grams":
		return amount / 1000
	default:
		return amount
	}
}
