// Package glyph converts between text and the glyph indices of the bitmap font.
//
// Index layout: 0-9 are digits, 10-35 are 'a'-'z', 36-61 are 'A'-'Z'.
package glyph

import "fmt"

const (
	firstLower = 10
	firstUpper = 36
	// Count is the number of glyphs in the font.
	Count = 62
)

// Encode maps s onto glyph indices. Characters outside the font are rejected.
func Encode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			out = append(out, byte(r-'0'))
		case r >= 'a' && r <= 'z':
			out = append(out, byte(r-'a')+firstLower)
		case r >= 'A' && r <= 'Z':
			out = append(out, byte(r-'A')+firstUpper)
		default:
			return nil, fmt.Errorf("glyph: character %q at %d has no glyph", r, i)
		}
	}
	return out, nil
}

// MustEncode is Encode for literals known to be valid.
func MustEncode(s string) []byte {
	g, err := Encode(s)
	if err != nil {
		panic(err)
	}
	return g
}

// Rune returns the character drawn for glyph g, or '?' for indices outside the font.
func Rune(g byte) rune {
	switch {
	case g < firstLower:
		return rune('0' + g)
	case g < firstUpper:
		return rune('a' + g - firstLower)
	case g < Count:
		return rune('A' + g - firstUpper)
	}
	return '?'
}

// Decode is the inverse of Encode.
func Decode(glyphs []byte) string {
	rs := make([]rune, len(glyphs))
	for i, g := range glyphs {
		rs[i] = Rune(g)
	}
	return string(rs)
}

// Digits renders n in decimal, left-padded with zeros to width.
// Negative values render as zero.
func Digits(n, width int) []byte {
	if n < 0 {
		n = 0
	}
	var out []byte
	for n > 0 {
		out = append(out, byte(n%10))
		n /= 10
	}
	for len(out) < width || len(out) == 0 {
		out = append(out, 0)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
