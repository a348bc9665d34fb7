package log

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var _ = Describe("Logger", func() {
	AfterEach(func() {
		ConfigureLogger(DefaultConfig())
		Silence()
	})

	Describe("ConfigureLogger", func() {
		It("should apply level and text format", func() {
			ConfigureLogger(Config{Level: LevelDebug, Format: FormatTypeText, Timestamp: false})

			Expect(Log().GetLevel()).Should(Equal(logrus.DebugLevel))
			Expect(Log().Formatter).Should(BeAssignableToTypeOf(&prefixed.TextFormatter{}))
			Expect(Log().Formatter.(*prefixed.TextFormatter).DisableTimestamp).Should(BeTrue())
		})

		It("should apply json format", func() {
			ConfigureLogger(Config{Level: LevelWarn, Format: FormatTypeJson, Timestamp: true})

			Expect(Log().GetLevel()).Should(Equal(logrus.WarnLevel))
			Expect(Log().Formatter).Should(BeAssignableToTypeOf(&logrus.JSONFormatter{}))
		})

		It("should fall back to info on unknown levels", func() {
			ConfigureLogger(Config{Level: Level(42)})

			Expect(Log().GetLevel()).Should(Equal(logrus.InfoLevel))
		})
	})

	Describe("PrefixedLog", func() {
		It("should carry the prefix field", func() {
			Expect(PrefixedLog("extractor").Data).Should(HaveKeyWithValue("prefix", "extractor"))
		})
	})

	Describe("EscapeInput", func() {
		It("should remove line breaks", func() {
			Expect(EscapeInput("www.\nexample\r.com")).Should(Equal("www.example.com"))
		})
	})

	Describe("Enums", func() {
		It("should parse levels by name", func() {
			l, err := ParseLevel("trace")
			Expect(err).Should(Succeed())
			Expect(l).Should(Equal(LevelTrace))

			_, err = ParseLevel("verbose")
			Expect(err).Should(MatchError(ErrInvalidLevel))
		})

		It("should unmarshal format type from text", func() {
			var f FormatType

			Expect(f.UnmarshalText([]byte("json"))).Should(Succeed())
			Expect(f).Should(Equal(FormatTypeJson))
			Expect(f.UnmarshalText([]byte("xml"))).ShouldNot(Succeed())
		})
	})

	Describe("Context logger", func() {
		It("should fall back to the global logger", func() {
			Expect(FromCtx(context.Background()).Logger).Should(BeIdenticalTo(Log()))
		})

		It("should keep fields added to the context", func() {
			ctx, _ := CtxWithFields(context.Background(), logrus.Fields{"req_id": "42"})

			entry := FromCtx(ctx)
			Expect(entry.Data).Should(HaveKeyWithValue("req_id", "42"))
			Expect(entry.Context).Should(Equal(ctx))
		})
	})

	Describe("Mock entry", func() {
		It("should record messages", func() {
			entry, hook := NewMockEntry()

			entry.Warn("first")
			entry.Info("second")

			Expect(hook.Messages).Should(Equal([]string{"first", "second"}))
			Expect(hook.MessagesAt(logrus.WarnLevel)).Should(Equal([]string{"first"}))
			Expect(hook.MessagesAt(logrus.ErrorLevel)).Should(BeEmpty())
			hook.AssertNumberOfCalls(GinkgoT(), "Fire", 2)

			hook.Reset()
			Expect(hook.Messages).Should(BeEmpty())
			Expect(hook.MessagesAt(logrus.InfoLevel)).Should(BeEmpty())
		})
	})
})
