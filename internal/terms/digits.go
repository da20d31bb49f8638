package terms

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var persianDigits = runes.Map(func(r rune) rune {
	if r >= '0' && r <= '9' {
		return '۰' + (r - '0')
	}
	return r
})

// LocalizeDigits replaces ASCII digits with Persian ones ("1403" -> "۱۴۰۳").
func LocalizeDigits(s string) string {
	out, _, err := transform.String(persianDigits, s)
	if err != nil {
		return s
	}
	return out
}
