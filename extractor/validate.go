package extractor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/0xERR0R/domainextractor/util"
	"golang.org/x/net/idna"
)

const maxLabelLength = 63

//nolint:gochecknoglobals
var idnaLookup = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.Transitional(false),
	idna.CheckHyphens(false),
)

// IsValidDomain reports if `domain` is a syntactically valid domain with a known suffix
// and a registrable domain.
func (e *Extractor) IsValidDomain(domain string) bool {
	if !validSyntax(domain) {
		return false
	}

	domain = util.ToLowerASCII(domain)

	parts, err := e.decompose(domain)
	if err != nil || len(parts.Suffix) == 0 || len(parts.Domain) == 0 {
		return false
	}

	return idnaRoundTrip(domain)
}

func validSyntax(domain string) bool {
	if len(domain) == 0 || utf8.RuneCountInString(domain) > MaxDomainLength {
		return false
	}

	for _, label := range strings.Split(domain, ".") {
		if !validLabel(label) {
			return false
		}
	}

	return true
}

// validLabel accepts alphabetic and numeric characters, alphabetic includes the
// combining vowel signs of scripts like Devanagari or Thai.
func validLabel(label string) bool {
	if len(label) == 0 || utf8.RuneCountInString(label) > maxLabelLength {
		return false
	}

	if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
		return false
	}

	for _, r := range label {
		if r != '-' && !unicode.In(r, unicode.L, unicode.N, unicode.Other_Alphabetic) {
			return false
		}
	}

	return true
}

// idnaRoundTrip checks the punycode labels of `domain` decode and the unicode labels encode.
func idnaRoundTrip(domain string) bool {
	ascii, err := idnaLookup.ToASCII(domain)
	if err != nil {
		return false
	}

	if _, err := idnaLookup.ToUnicode(domain); err != nil {
		return false
	}

	if _, err := idnaLookup.ToUnicode(ascii); err != nil {
		return false
	}

	return true
}
