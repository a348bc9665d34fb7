package extractor

import (
	"fmt"
	"strings"

	"github.com/0xERR0R/domainextractor/trie"
)

// Parts is the result of splitting a domain.
//
// Every non empty part is a substring of the lower cased input.
type Parts struct {
	Suffix    string `json:"suffix"`
	Domain    string `json:"domain"`
	Subdomain string `json:"subdomain"`
}

// RegistrableDomain returns domain and suffix joined, or "" if either is empty.
func (p Parts) RegistrableDomain() string {
	if len(p.Domain) == 0 || len(p.Suffix) == 0 {
		return ""
	}

	return p.Domain + "." + p.Suffix
}

// String joins all non empty parts, which gives back the lower cased input.
func (p Parts) String() string {
	parts := make([]string, 0, 3)

	for _, part := range []string{p.Subdomain, p.Domain, p.Suffix} {
		if len(part) > 0 {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ".")
}

// decompose walks `domain` right to left through the suffix rules.
//
// `domain` must already be lower cased.
func (e *Extractor) decompose(domain string) (Parts, error) {
	if err := checkDots(domain); err != nil {
		return Parts{}, err
	}

	var (
		nodes    = e.rules.Root()
		last     *trie.Node
		wildcard bool
		suffix   string
		end      = len(domain)
	)

	for {
		dot := strings.LastIndexByte(domain[:end], '.')
		if dot == -1 {
			break
		}

		label := domain[dot+1 : end]

		if wildcard && last.IsException(label) {
			// the exception is the registrable domain, the wildcard does not reach it
			return Parts{Suffix: suffix, Domain: label, Subdomain: domain[:dot]}, nil
		}

		if node, ok := nodes.Get(label); ok {
			nodes = node.Children()
			wildcard = node.IsWildcard()
			last = node
			suffix = domain[dot+1:]
			end = dot

			continue
		}

		if wildcard {
			// the wildcard covers exactly one more label
			return split(domain[:dot], domain[dot+1:]), nil
		}

		return split(domain[:end], suffix), nil
	}

	label := domain[:end]

	if wildcard {
		if last.IsException(label) {
			return Parts{Suffix: suffix, Domain: label}, nil
		}

		return Parts{Suffix: domain}, nil
	}

	if _, ok := nodes.Get(label); ok {
		return Parts{Suffix: domain}, nil
	}

	return Parts{Suffix: suffix, Domain: label}, nil
}

// split uses the last label of `rest` as domain and everything before as subdomain.
func split(rest, suffix string) Parts {
	if dot := strings.LastIndexByte(rest, '.'); dot != -1 {
		return Parts{Suffix: suffix, Domain: rest[dot+1:], Subdomain: rest[:dot]}
	}

	return Parts{Suffix: suffix, Domain: rest}
}

func checkDots(domain string) error {
	switch {
	case len(domain) == 0:
		return fmt.Errorf("%w: empty", ErrInvalidDomain)

	case domain[0] == '.':
		return fmt.Errorf("%w: leading dot in '%s'", ErrInvalidDomain, domain)

	case domain[len(domain)-1] == '.':
		return fmt.Errorf("%w: trailing dot in '%s'", ErrInvalidDomain, domain)

	case strings.Contains(domain, ".."):
		return fmt.Errorf("%w: empty label in '%s'", ErrInvalidDomain, domain)
	}

	return nil
}
