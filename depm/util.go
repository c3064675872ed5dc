package depm

import "unicode"

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier (project name, variable name, etc.).
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	for i, c := range idstr {
		if c == '_' || unicode.IsLetter(c) || (i > 0 && unicode.IsDigit(c)) {
			continue
		}

		return false
	}

	return true
}
