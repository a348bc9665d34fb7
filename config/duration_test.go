package config

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Duration", func() {
	var d Duration

	BeforeEach(func() {
		var zero Duration

		d = zero
	})

	Describe("UnmarshalText", func() {
		It("should parse duration with unit", func() {
			err := d.UnmarshalText([]byte("1m20s"))
			Expect(err).Should(Succeed())
			Expect(d).Should(Equal(Duration(80 * time.Second)))
			Expect(d.String()).Should(Equal("1 minute 20 seconds"))
		})

		It("should fail if duration is in wrong format", func() {
			err := d.UnmarshalText([]byte("wrong"))
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(MatchError("time: invalid duration \"wrong\""))
		})

		It("should fail without unit", func() {
			Expect(d.UnmarshalText([]byte("5"))).ShouldNot(Succeed())
		})
	})

	Describe("Comparisons", func() {
		It("should compare with zero", func() {
			Expect(d.IsAboveZero()).Should(BeFalse())
			Expect(d.IsAtLeastZero()).Should(BeTrue())
			Expect(Duration(time.Second).IsAboveZero()).Should(BeTrue())
			Expect(Duration(-time.Second).IsAtLeastZero()).Should(BeFalse())
		})
	})

	Describe("ToDuration", func() {
		It("should convert", func() {
			Expect(Duration(time.Minute).ToDuration()).Should(Equal(time.Minute))
		})
	})
})
