package utils

import (
	"strings"
	"unicode"
)

// SafeFileName reduces s to a filesystem-safe name: every rune that is not a
// letter, digit, space, hyphen or underscore is dropped, then spaces collapse
// to underscores.
func SafeFileName(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sb.WriteRune(r)
		}
	}
	return strings.ReplaceAll(sb.String(), " ", "_")
}
