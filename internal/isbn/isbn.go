// Package isbn normalizes book identifiers to their canonical 13-digit form.
package isbn

import "strings"

// isbn13Prefix is the registrant prefix applied when converting ISBN-10.
const isbn13Prefix = "978"

// Normalize strips everything except digits and the check letter X from raw
// and returns the canonical 13-digit form, or "" when the cleaned input is
// neither 10 nor 13 characters long.
//
// A 13-digit value passes through without checksum verification, and the
// check digit of a 10-digit value is not validated before conversion; callers
// that need guaranteed-valid input must verify it themselves.
func Normalize(raw string) string {
	s := clean(raw)
	switch len(s) {
	case 13:
		return s
	case 10:
		return convert10to13(s)
	}
	return ""
}

// clean keeps digits and the checksum letter X, folding x to uppercase.
func clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'X' || r == 'x':
			b.WriteByte('X')
		}
	}
	return b.String()
}

// convert10to13 prefixes the first nine digits with 978 and appends the
// ISBN-13 check digit: the weighted sum (weights 1 and 3, alternating from
// weight 1 at index 0) plus the check digit is divisible by 10.
func convert10to13(s10 string) string {
	core := isbn13Prefix + s10[:9]
	sum := 0
	for i := 0; i < len(core); i++ {
		d := int(core[i] - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	check := (10 - sum%10) % 10
	return core + string(rune('0'+check))
}
