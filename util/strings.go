package util

import "unicode/utf8"

// ToLowerASCII lower cases ASCII letters only, other characters are kept.
//
// `s` is returned as is when there is nothing to change.
func ToLowerASCII(s string) string {
	idx := -1

	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			idx = i

			break
		}
	}

	if idx == -1 {
		return s
	}

	b := []byte(s)

	for i := idx; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}

	return string(b)
}

// IsASCII reports if `s` only contains ASCII characters.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}
