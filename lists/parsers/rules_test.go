package parsers

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SuffixRules", func() {
	var sut SeriesParser[*SuffixRule]

	When("parsing a list", func() {
		BeforeEach(func() {
			sut = SuffixRules(linesReader(
				"// ===BEGIN ICANN DOMAINS===",
				"Co.UK",
				"*.ck",
				"!www.ck",
				"鹿児島.jp",
				"com   trailing text",
			))
		})

		It("returns each rule", func() {
			var rules []SuffixRule

			err := ForEach(context.Background(), sut, func(r *SuffixRule) error {
				rules = append(rules, *r)

				return nil
			})
			Expect(err).Should(Succeed())

			Expect(rules).Should(Equal([]SuffixRule{
				{Value: "co.uk"},
				{Value: "*.ck"},
				{Value: "!www.ck"},
				{Value: "鹿児島.jp", ASCII: "xn--d5qv7z876c.jp"},
				{Value: "com"},
			}))
		})
	})

	Describe("Forms", func() {
		It("returns only the value for ASCII rules", func() {
			r := SuffixRule{Value: "co.uk"}
			Expect(r.Forms()).Should(Equal([]string{"co.uk"}))
		})

		It("returns both forms for IDN rules", func() {
			r := SuffixRule{Value: "教育.hk", ASCII: "xn--wcvs22d.hk"}
			Expect(r.Forms()).Should(Equal([]string{"教育.hk", "xn--wcvs22d.hk"}))
		})
	})

	Describe("UnmarshalText", func() {
		It("only folds ASCII letters", func() {
			var r SuffixRule

			Expect(r.UnmarshalText([]byte("XN--P1AI"))).Should(Succeed())
			Expect(r.Value).Should(Equal("xn--p1ai"))
			Expect(r.ASCII).Should(BeEmpty())
		})

		It("converts wildcard IDN rules label by label", func() {
			var r SuffixRule

			Expect(r.UnmarshalText([]byte("*.青森.jp"))).Should(Succeed())
			Expect(r.ASCII).Should(Equal("*.xn--32vp30h.jp"))
		})

		It("fails on empty input", func() {
			var r SuffixRule

			Expect(r.UnmarshalText([]byte(" "))).ShouldNot(Succeed())
		})

		It("is used as String", func() {
			r := SuffixRule{Value: "co.uk"}
			Expect(r.String()).Should(Equal("co.uk"))
		})
	})

	When("the list has gaps", func() {
		It("keeps positions", func() {
			sut = SuffixRules(strings.NewReader("com\n\n// c\nnet\n"))

			_, err := sut.Next(context.Background())
			Expect(err).Should(Succeed())
			r, err := sut.Next(context.Background())
			Expect(err).Should(Succeed())
			Expect(r.Value).Should(Equal("net"))
			Expect(sut.Position()).Should(Equal("line 4"))
		})
	})
})
