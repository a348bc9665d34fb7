package extractor

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const testList = `// test rules
com
uk
co.uk
*.ck
!www.ck
*.kawasaki.jp
!city.kawasaki.jp
jp
*.dapps.earth
*.bzz.dapps.earth
*.a
b.a
*.wild.a
`

var _ = Describe("Decomposition", func() {
	var sut *Extractor

	BeforeEach(func() {
		var err error

		sut, err = NewFromString(testList)
		Expect(err).Should(Succeed())
	})

	DescribeTable("decompose",
		func(in string, expected Parts) {
			Expect(sut.decompose(in)).Should(Equal(expected))
		},
		Entry("registrable domain", "example.com",
			Parts{Suffix: "com", Domain: "example"}),
		Entry("subdomain", "www.example.co.uk",
			Parts{Suffix: "co.uk", Domain: "example", Subdomain: "www"}),
		Entry("nested subdomain", "a.b.example.co.uk",
			Parts{Suffix: "co.uk", Domain: "example", Subdomain: "a.b"}),
		Entry("shorter rule if longer does not match", "example.uk",
			Parts{Suffix: "uk", Domain: "example"}),
		Entry("bare suffix", "com",
			Parts{Suffix: "com"}),
		Entry("bare multi label suffix", "co.uk",
			Parts{Suffix: "co.uk"}),
		Entry("unknown tld", "nonexistenttld",
			Parts{Domain: "nonexistenttld"}),
		Entry("unknown tld with subdomain", "sub.nonexistenttld",
			Parts{Domain: "nonexistenttld", Subdomain: "sub"}),
		Entry("wildcard", "foo.bar.ck",
			Parts{Suffix: "bar.ck", Domain: "foo"}),
		Entry("wildcard with subdomain", "a.foo.bar.ck",
			Parts{Suffix: "bar.ck", Domain: "foo", Subdomain: "a"}),
		Entry("bare wildcard suffix", "bar.ck",
			Parts{Suffix: "bar.ck"}),
		Entry("wildcard parent", "ck",
			Parts{Suffix: "ck"}),
		Entry("exception", "www.ck",
			Parts{Suffix: "ck", Domain: "www"}),
		Entry("exception with subdomain", "a.www.ck",
			Parts{Suffix: "ck", Domain: "www", Subdomain: "a"}),
		Entry("deep exception", "city.kawasaki.jp",
			Parts{Suffix: "kawasaki.jp", Domain: "city"}),
		Entry("deep wildcard", "a.town.kawasaki.jp",
			Parts{Suffix: "town.kawasaki.jp", Domain: "a"}),
		Entry("nested wildcards", "a.bzz.dapps.earth",
			Parts{Suffix: "a.bzz.dapps.earth"}),
		Entry("nested wildcards with domain", "a.b.bzz.dapps.earth",
			Parts{Suffix: "b.bzz.dapps.earth", Domain: "a"}),
		Entry("outer wildcard only", "a.b.other.dapps.earth",
			Parts{Suffix: "other.dapps.earth", Domain: "b", Subdomain: "a"}),
		Entry("structured rule below wildcard", "x.y.b.a",
			Parts{Suffix: "b.a", Domain: "y", Subdomain: "x"}),
		Entry("wildcard rule below wildcard", "x.y.wild.a",
			Parts{Suffix: "y.wild.a", Domain: "x"}),
		Entry("wildcard sibling", "x.y.other.a",
			Parts{Suffix: "other.a", Domain: "y", Subdomain: "x"}),
	)

	DescribeTable("invalid domains",
		func(in string) {
			_, err := sut.decompose(in)
			Expect(err).Should(MatchError(ErrInvalidDomain))
		},
		Entry("empty", ""),
		Entry("double dot", "a..b.com"),
		Entry("leading dot", ".example.com"),
		Entry("trailing dot", "example.com."),
		Entry("only a dot", "."),
	)

	Describe("Reconstruction", func() {
		It("should give back the input", func() {
			for _, in := range []string{
				"com", "co.uk", "example.com", "www.example.co.uk", "a.b.c.example.co.uk",
				"foo.bar.ck", "www.ck", "a.www.ck", "a.b.bzz.dapps.earth", "x.y.b.a",
				"localhost", "sub.nonexistenttld",
			} {
				parts, err := sut.decompose(in)
				Expect(err).Should(Succeed())
				Expect(parts.String()).Should(Equal(in))
			}
		})

		It("should return substrings of the input", func() {
			in := "www.example.co.uk"

			parts, err := sut.decompose(in)
			Expect(err).Should(Succeed())

			Expect(strings.HasSuffix(in, parts.Suffix)).Should(BeTrue())
			Expect(strings.HasPrefix(in, parts.Subdomain)).Should(BeTrue())
			Expect(in).Should(ContainSubstring("." + parts.Domain + "."))
		})
	})

	Describe("Parts", func() {
		It("should join domain and suffix", func() {
			Expect(Parts{Suffix: "co.uk", Domain: "example", Subdomain: "www"}.RegistrableDomain()).
				Should(Equal("example.co.uk"))
		})

		It("should not return a registrable domain without suffix or domain", func() {
			Expect(Parts{Suffix: "co.uk"}.RegistrableDomain()).Should(BeEmpty())
			Expect(Parts{Domain: "localhost"}.RegistrableDomain()).Should(BeEmpty())
		})

		It("should skip empty parts in String", func() {
			Expect(Parts{Suffix: "com", Domain: "example"}.String()).Should(Equal("example.com"))
			Expect(Parts{}.String()).Should(BeEmpty())
		})
	})
})
