package extractor

import (
	"context"
	"io"

	"github.com/0xERR0R/domainextractor/lists/parsers"
	"github.com/0xERR0R/domainextractor/trie"
)

func compile(ctx context.Context, r io.Reader) (*trie.Trie, []string, error) {
	rules := trie.NewTrie()

	var tlds []string

	err := parsers.ForEach[*parsers.SuffixRule](ctx, parsers.SuffixRules(r), func(rule *parsers.SuffixRule) error {
		for _, form := range rule.Forms() {
			rules.Insert(form)

			tlds = append(tlds, form)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return rules, tlds, nil
}
