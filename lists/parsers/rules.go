package parsers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/0xERR0R/domainextractor/util"
	"golang.org/x/net/idna"
)

// SuffixRules parses `r` as a public suffix list.
func SuffixRules(r io.Reader) SeriesParser[*SuffixRule] {
	return &ruleParser{lines: Lines(r)}
}

type ruleParser struct {
	lines SeriesParser[string]
}

func (p *ruleParser) Position() string {
	return p.lines.Position()
}

func (p *ruleParser) Next(ctx context.Context) (*SuffixRule, error) {
	line, err := p.lines.Next(ctx)
	if err != nil {
		return nil, err
	}

	rule := new(SuffixRule)

	if err := rule.UnmarshalText([]byte(line)); err != nil {
		return nil, err
	}

	return rule, nil
}

// SuffixRule is a single rule of a public suffix list, e.g. "co.uk", "*.ck" or "!www.ck".
type SuffixRule struct {
	// Value is the rule as written in the list, ASCII lower cased.
	Value string

	// ASCII is the IDNA ASCII form of a rule containing non ASCII characters.
	// Empty for pure ASCII rules.
	ASCII string
}

// Forms returns every form the rule must be matched in.
func (r *SuffixRule) Forms() []string {
	if len(r.ASCII) == 0 {
		return []string{r.Value}
	}

	return []string{r.Value, r.ASCII}
}

func (r *SuffixRule) String() string {
	return r.Value
}

// UnmarshalText implements `encoding.TextUnmarshaler`.
//
// Only the first white space separated token of a line is the rule.
func (r *SuffixRule) UnmarshalText(data []byte) error {
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return errors.New("empty rule")
	}

	value := util.ToLowerASCII(fields[0])

	var ascii string

	if !util.IsASCII(value) {
		var err error

		ascii, err = idna.ToASCII(value)
		if err != nil {
			return NewNonResumableError(fmt.Errorf("invalid IDNA rule '%s': %w", value, err))
		}
	}

	*r = SuffixRule{Value: value, ASCII: ascii}

	return nil
}
