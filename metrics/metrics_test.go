package metrics

import (
	"context"
	"net/http"
	"strings"

	"github.com/0xERR0R/domainextractor/config"
	"github.com/0xERR0R/domainextractor/evt"
	"github.com/0xERR0R/domainextractor/helpertest"
	"github.com/go-chi/chi/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ = Describe("Metrics", func() {
	BeforeEach(func() {
		RegisterEventListeners()
	})

	// value returns the current value of the counter or gauge `name` matching all `labels`
	value := func(name string, labels ...string) float64 {
		mfs, err := reg.Gather()
		Expect(err).Should(Succeed())

		for _, mf := range mfs {
			if mf.GetName() != name {
				continue
			}

		metrics:
			for _, m := range mf.GetMetric() {
				for i := 0; i+1 < len(labels); i += 2 {
					found := false

					for _, l := range m.GetLabel() {
						if l.GetName() == labels[i] && l.GetValue() == labels[i+1] {
							found = true
						}
					}

					if !found {
						continue metrics
					}
				}

				if m.GetCounter() != nil {
					return m.GetCounter().GetValue()
				}

				return m.GetGauge().GetValue()
			}
		}

		return 0
	}

	Describe("Event listeners", func() {
		It("should register listeners only once", func() {
			RegisterEventListeners()

			before := value("domainextractor_list_download_errors_total")
			evt.Bus().Publish(evt.ListDownloadFailed, "http://example.com")

			Expect(value("domainextractor_list_download_errors_total")).Should(Equal(before + 1))
		})

		It("should expose the build info", func() {
			evt.Bus().Publish(evt.ApplicationStarted, "v1.0", "today")

			Expect(value("domainextractor_build_info", "version", "v1.0", "build_time", "today")).Should(Equal(1.0))
		})

		It("should set the rule count and refresh time", func() {
			evt.Bus().Publish(evt.SuffixListLoaded, 42)

			Expect(testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP domainextractor_suffix_rules Number of compiled public suffix rules
# TYPE domainextractor_suffix_rules gauge
domainextractor_suffix_rules 42
`), "domainextractor_suffix_rules")).Should(Succeed())

			Expect(value("domainextractor_last_list_refresh")).Should(BeNumerically(">", 0))
		})

		It("should count requests per operation and result", func() {
			okBefore := value("domainextractor_requests_total", "operation", "extract", "result", "ok")
			errBefore := value("domainextractor_requests_total", "operation", "extract", "result", "error")

			evt.Bus().Publish(evt.RequestProcessed, "extract", true)
			evt.Bus().Publish(evt.RequestProcessed, "extract", true)
			evt.Bus().Publish(evt.RequestProcessed, "extract", false)

			Expect(value("domainextractor_requests_total", "operation", "extract", "result", "ok")).
				Should(Equal(okBefore + 2))
			Expect(value("domainextractor_requests_total", "operation", "extract", "result", "error")).
				Should(Equal(errBefore + 1))
		})

		It("should count cache hits and misses", func() {
			hitsBefore := value("domainextractor_cache_hit_count")
			missesBefore := value("domainextractor_cache_miss_count")

			evt.Bus().Publish(evt.CachingResultCacheHit, "example.com")
			evt.Bus().Publish(evt.CachingResultCacheMiss, "example.com")
			evt.Bus().Publish(evt.CachingResultCacheChanged, 7)

			Expect(value("domainextractor_cache_hit_count")).Should(Equal(hitsBefore + 1))
			Expect(value("domainextractor_cache_miss_count")).Should(Equal(missesBefore + 1))
			Expect(value("domainextractor_cache_entry_count")).Should(Equal(7.0))
		})
	})

	Describe("Start", func() {
		var router *chi.Mux

		BeforeEach(func() {
			router = chi.NewMux()
		})

		When("prometheus is enabled", func() {
			It("should serve the metrics on the configured path", func() {
				Start(router, config.PrometheusConfig{Enable: true, Path: "/custom-metrics"})
				evt.Bus().Publish(evt.SuffixListLoaded, 7)

				resp, body := helpertest.DoGetRequest(context.Background(), "/custom-metrics", router.ServeHTTP)
				Expect(resp).Should(HaveHTTPStatus(http.StatusOK))
				Expect(body.String()).Should(ContainSubstring("domainextractor_suffix_rules 7"))
				Expect(body.String()).Should(ContainSubstring("go_goroutines"))
			})
		})

		When("prometheus is disabled", func() {
			It("should not add a route", func() {
				Start(router, config.PrometheusConfig{Enable: false, Path: "/metrics"})

				Expect(router.Routes()).Should(BeEmpty())
			})
		})
	})
})
