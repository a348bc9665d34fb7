package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/0xERR0R/domainextractor/evt"
	"github.com/0xERR0R/domainextractor/util"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

//nolint:gochecknoglobals
var registerOnce sync.Once

// RegisterEventListeners registers all metric handlers by the event bus
func RegisterEventListeners() {
	registerOnce.Do(func() {
		registerApplicationEventListeners()
		registerSuffixListEventListeners()
		registerRequestEventListeners()
		registerCachingEventListeners()
	})
}

func registerApplicationEventListeners() {
	v := versionNumberGauge()
	RegisterMetric(v)

	subscribe(evt.ApplicationStarted, func(version, buildTime string) {
		v.WithLabelValues(version, buildTime).Set(1)
	})
}

func versionNumberGauge() *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "domainextractor_build_info",
			Help: "Version number and build info",
		}, []string{"version", "build_time"},
	)
}

func registerSuffixListEventListeners() {
	ruleCnt := suffixRulesGauge()
	lastRefresh := lastListRefresh()
	failedDownloadCnt := failedDownloadCount()

	RegisterMetric(ruleCnt)
	RegisterMetric(lastRefresh)
	RegisterMetric(failedDownloadCnt)

	subscribe(evt.SuffixListLoaded, func(cnt int) {
		ruleCnt.Set(float64(cnt))
		lastRefresh.Set(float64(time.Now().Unix()))
	})

	subscribe(evt.ListDownloadFailed, func(_ string) {
		failedDownloadCnt.Inc()
	})
}

func suffixRulesGauge() prometheus.Gauge {
	return prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "domainextractor_suffix_rules",
			Help: "Number of compiled public suffix rules",
		},
	)
}

func lastListRefresh() prometheus.Gauge {
	return prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "domainextractor_last_list_refresh",
			Help: "Timestamp of last suffix list refresh",
		},
	)
}

func failedDownloadCount() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "domainextractor_list_download_errors_total",
		Help: "Failed download counter",
	})
}

func registerRequestEventListeners() {
	requestCnt := requestCount()

	RegisterMetric(requestCnt)

	subscribe(evt.RequestProcessed, func(operation string, success bool) {
		result := resultOK
		if !success {
			result = resultError
		}

		requestCnt.WithLabelValues(operation, result).Inc()
	})
}

func requestCount() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domainextractor_requests_total",
			Help: "Number of processed API requests",
		}, []string{"operation", "result"},
	)
}

func registerCachingEventListeners() {
	entryCount := cacheEntryCount()
	hitCount := cacheHitCount()
	missCount := cacheMissCount()

	RegisterMetric(entryCount)
	RegisterMetric(hitCount)
	RegisterMetric(missCount)

	subscribe(evt.CachingResultCacheMiss, func(_ string) {
		missCount.Inc()
	})

	subscribe(evt.CachingResultCacheHit, func(_ string) {
		hitCount.Inc()
	})

	subscribe(evt.CachingResultCacheChanged, func(cnt int) {
		entryCount.Set(float64(cnt))
	})
}

func cacheHitCount() prometheus.Counter {
	return prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "domainextractor_cache_hit_count",
			Help: "Cache hit counter",
		},
	)
}

func cacheMissCount() prometheus.Counter {
	return prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "domainextractor_cache_miss_count",
			Help: "Cache miss counter",
		},
	)
}

func cacheEntryCount() prometheus.Gauge {
	return prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "domainextractor_cache_entry_count",
			Help: "Number of entries in result cache",
		},
	)
}

func subscribe(topic string, fn interface{}) {
	util.FatalOnError(fmt.Sprintf("can't subscribe topic '%s'", topic), evt.Bus().Subscribe(topic, fn))
}
