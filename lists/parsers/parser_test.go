package parsers

import (
	"context"
	"errors"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func linesReader(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n"))
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

var _ = Describe("Lines", func() {
	var ctx context.Context

	BeforeEach(func() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(context.Background())
		DeferCleanup(cancel)
	})

	collect := func(p SeriesParser[string]) ([]string, error) {
		var res []string

		err := ForEach(ctx, p, func(line string) error {
			res = append(res, line)

			return nil
		})

		return res, err
	}

	It("should skip empty and comment lines", func() {
		lines, err := collect(Lines(linesReader(
			"// ===BEGIN ICANN DOMAINS===",
			"",
			"  com  ",
			"\t",
			"// ac : https://en.wikipedia.org/wiki/.ac",
			"co.uk",
		)))

		Expect(err).Should(Succeed())
		Expect(lines).Should(Equal([]string{"com", "co.uk"}))
	})

	It("should handle windows line endings", func() {
		lines, err := collect(Lines(strings.NewReader("com\r\nnet\r\n")))

		Expect(err).Should(Succeed())
		Expect(lines).Should(Equal([]string{"com", "net"}))
	})

	It("should report the line number", func() {
		sut := Lines(linesReader("// header", "", "com"))

		line, err := sut.Next(ctx)
		Expect(err).Should(Succeed())
		Expect(line).Should(Equal("com"))
		Expect(sut.Position()).Should(Equal("line 3"))
	})

	It("should end with a non resumable EOF", func() {
		sut := Lines(linesReader("com"))

		_, err := sut.Next(ctx)
		Expect(err).Should(Succeed())

		_, err = sut.Next(ctx)
		Expect(err).Should(MatchError(io.EOF))
		Expect(IsNonResumableErr(err)).Should(BeTrue())
	})

	It("should stop on read errors", func() {
		readErr := errors.New("disk on fire")

		_, err := collect(Lines(failingReader{readErr}))
		Expect(err).Should(MatchError(readErr))
		Expect(err.Error()).Should(HavePrefix("line 1: non resumable parse error"))
	})

	It("should stop if the context is done", func() {
		sut := Lines(linesReader("com", "net"))

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := sut.Next(canceled)
		Expect(err).Should(MatchError(context.Canceled))
		Expect(IsNonResumableErr(err)).Should(BeTrue())
	})
})

var _ = Describe("ForEach", func() {
	It("should stop at the first callback error and add the position", func() {
		cbErr := errors.New("stop")
		calls := 0

		err := ForEach(context.Background(), Lines(linesReader("a", "b", "c")), func(string) error {
			calls++
			if calls == 2 {
				return cbErr
			}

			return nil
		})

		Expect(err).Should(MatchError(cbErr))
		Expect(err.Error()).Should(Equal("line 2: stop"))
		Expect(calls).Should(Equal(2))
	})

	It("should not call back for a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := ForEach(ctx, Lines(linesReader("a")), func(string) error {
			Fail("unexpected callback")

			return nil
		})

		Expect(err).Should(MatchError(context.Canceled))
	})

	It("should return nil for an empty series", func() {
		Expect(ForEach(context.Background(), Lines(strings.NewReader("")), func(string) error {
			return errors.New("unexpected")
		})).Should(Succeed())
	})
})

var _ = Describe("NonResumableError", func() {
	It("should wrap the inner error", func() {
		inner := errors.New("inner")
		err := NewNonResumableError(inner)

		Expect(err).Should(MatchError(inner))
		Expect(err.Error()).Should(Equal("non resumable parse error: inner"))
		Expect(IsNonResumableErr(err)).Should(BeTrue())
		Expect(IsNonResumableErr(inner)).Should(BeFalse())
	})
})
