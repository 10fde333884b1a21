package validate

// ValidZIP reports whether zip is a correctly formatted U.S. ZIP code.
// Three shapes are accepted: five digits, nine digits, or ZIP+4 with a
// single hyphen (12345-6789). Digits are ASCII only; anything else,
// including the empty string, is rejected.
func ValidZIP(zip string) bool {
	switch len(zip) {
	case 5, 9:
		return allDigits(zip)
	case 10:
		return zip[5] == '-' && allDigits(zip[:5]) && allDigits(zip[6:])
	default:
		return false
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
