package extractor

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/0xERR0R/domainextractor/log"
	"github.com/0xERR0R/domainextractor/trie"
	"github.com/0xERR0R/domainextractor/util"
	"github.com/hako/durafmt"
	"github.com/sirupsen/logrus"
)

// MaxDomainLength is the max length in bytes of a domain accepted by `Extract`.
// `IsValidDomain` applies it to the number of characters.
const MaxDomainLength = 255

//go:embed public_suffix_list.dat
var defaultList string

//nolint:gochecknoglobals
var (
	defaultOnce      sync.Once
	builtinExtractor *Extractor
)

func logger() *logrus.Entry {
	return log.PrefixedLog("extractor")
}

// Extractor splits domains into suffix, domain and subdomain.
//
// An Extractor is immutable once created and safe for concurrent use.
type Extractor struct {
	rules *trie.Trie
	tlds  []string
}

// New compiles the public suffix list read from `r`.
func New(ctx context.Context, r io.Reader) (*Extractor, error) {
	start := time.Now()

	rules, tlds, err := compile(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("can't compile suffix list: %w", err)
	}

	logger().WithFields(logrus.Fields{
		"rules":    len(tlds),
		"duration": durafmt.Parse(time.Since(start)).String(),
	}).Debug("suffix list compiled")

	return &Extractor{rules: rules, tlds: tlds}, nil
}

// NewFromString compiles the public suffix list `text`.
func NewFromString(text string) (*Extractor, error) {
	return New(context.Background(), strings.NewReader(text))
}

// DefaultExtractor returns the extractor for the built-in public suffix list.
//
// The list is compiled on first use and shared afterwards.
func DefaultExtractor() *Extractor {
	defaultOnce.Do(func() {
		e, err := NewFromString(defaultList)
		util.FatalOnError("can't compile built-in suffix list: ", err)

		builtinExtractor = e
	})

	return builtinExtractor
}

// DefaultList returns the text of the built-in public suffix list.
func DefaultList() string {
	return defaultList
}

// ListTLDs returns all compiled rules in list order.
//
// Rules containing non ASCII characters are followed by their IDNA ASCII form.
func (e *Extractor) ListTLDs() []string {
	res := make([]string, len(e.tlds))
	copy(res, e.tlds)

	return res
}

// RuleCount returns the number of compiled rules.
func (e *Extractor) RuleCount() int {
	return len(e.tlds)
}

// Extract splits `domain` into its parts.
//
// `domain` is lower cased (ASCII only) before matching.
func (e *Extractor) Extract(domain string) (Parts, error) {
	if len(domain) > MaxDomainLength {
		return Parts{}, fmt.Errorf("%w: longer than %d bytes", ErrInvalidDomain, MaxDomainLength)
	}

	return e.decompose(util.ToLowerASCII(domain))
}

// ExtractFromURL splits the host of `url` into its parts.
func (e *Extractor) ExtractFromURL(url string) (Parts, error) {
	host, err := HostFromURL(url)
	if err != nil {
		return Parts{}, err
	}

	return e.Extract(host)
}
