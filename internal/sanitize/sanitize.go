// Package sanitize restricts user-supplied strings to allow-listed character
// classes before they are used in filesystem paths or persisted columns.
package sanitize

import "strings"

// DateToken keeps only digits and hyphens. The result may be empty; callers
// validate emptiness of the raw input separately.
func DateToken(raw string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, raw)
}

// LanguageToken keeps only ASCII letters.
func LanguageToken(raw string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return r
		}
		return -1
	}, raw)
}

// StripControlChars removes C0 and C1 control characters (U+0000..U+001F and
// U+007F..U+009F). Idempotent. Token sanitizers do not cover path separators
// or the file extension, so assembled paths get this second pass.
func StripControlChars(raw string) string {
	return strings.Map(func(r rune) rune {
		if r <= 0x1F || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, raw)
}
