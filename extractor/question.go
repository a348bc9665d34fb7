package extractor

import (
	"github.com/0xERR0R/domainextractor/util"
	"github.com/miekg/dns"
)

// ExtractQuestion splits the name of a DNS question, the root label is ignored.
func (e *Extractor) ExtractQuestion(question dns.Question) (Parts, error) {
	return e.Extract(util.ExtractDomain(question))
}
