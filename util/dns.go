package util

import (
	"strings"

	"github.com/miekg/dns"
)

// ExtractDomain returns the lower cased question name without the root label.
func ExtractDomain(question dns.Question) string {
	return strings.TrimSuffix(strings.ToLower(question.Name), ".")
}

// NewQuestion creates a question of type A for `name`.
func NewQuestion(name string) dns.Question {
	return dns.Question{Name: dns.Fqdn(name), Qtype: dns.TypeA, Qclass: dns.ClassINET}
}
