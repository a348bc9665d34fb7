package suffixlist

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/0xERR0R/domainextractor/config"
	"github.com/0xERR0R/domainextractor/evt"
	"github.com/0xERR0R/domainextractor/extractor"
	"github.com/0xERR0R/domainextractor/lists"
	"github.com/0xERR0R/domainextractor/log"
	"github.com/0xERR0R/domainextractor/util"
	"github.com/hako/durafmt"
	lru "github.com/hashicorp/golang-lru"
	"github.com/miekg/dns"
	"github.com/sirupsen/logrus"
)

func logger() *logrus.Entry {
	return log.PrefixedLog("suffix_list")
}

// Holder keeps the active extractor and replaces it on refresh.
//
// Results of `Extract` and `ExtractFromURL` are cached until the next successful refresh.
type Holder struct {
	source        config.BytesSource
	downloader    lists.FileDownloader
	cacheSize     int
	refreshPeriod time.Duration

	active    atomic.Pointer[snapshot]
	refreshMu sync.Mutex
}

type snapshot struct {
	extractor *extractor.Extractor
	cache     *lru.Cache
	loaded    time.Time
}

// NewHolder loads the configured suffix list.
//
// The list is reloaded periodically until `ctx` is done if a refresh period is configured.
func NewHolder(ctx context.Context, cfg *config.Config, downloader lists.FileDownloader) (*Holder, error) {
	h := &Holder{
		source:        cfg.SuffixList,
		downloader:    downloader,
		cacheSize:     cfg.CacheSize,
		refreshPeriod: cfg.RefreshPeriod.ToDuration(),
	}

	if err := h.Refresh(ctx); err != nil {
		return nil, err
	}

	if h.refreshPeriod > 0 && !h.source.IsZero() {
		go h.periodicUpdate(ctx)
	}

	return h, nil
}

// periodicUpdate triggers periodical refresh (and download) of the suffix list
func (h *Holder) periodicUpdate(ctx context.Context) {
	ticker := time.NewTicker(h.refreshPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			util.LogOnError("can't refresh suffix list: ", h.Refresh(ctx))

		case <-ctx.Done():
			return
		}
	}
}

// Refresh loads the suffix list again.
//
// On error the previous list stays active.
func (h *Holder) Refresh(ctx context.Context) error {
	h.refreshMu.Lock()
	defer h.refreshMu.Unlock()

	start := time.Now()

	e, err := h.load(ctx)
	if err != nil {
		logger().WithField("source", h.sourceName()).Warn("loading of suffix list failed, keeping the current list")

		return err
	}

	next := &snapshot{extractor: e, loaded: time.Now()}

	if h.cacheSize > 0 {
		next.cache, err = lru.New(h.cacheSize)
		if err != nil {
			return fmt.Errorf("can't create result cache: %w", err)
		}
	}

	h.active.Store(next)

	evt.Bus().Publish(evt.SuffixListLoaded, e.RuleCount())
	evt.Bus().Publish(evt.CachingResultCacheChanged, 0)

	logger().WithFields(logrus.Fields{
		"source":   h.sourceName(),
		"rules":    e.RuleCount(),
		"duration": durafmt.Parse(time.Since(start)).String(),
	}).Info("suffix list loaded")

	return nil
}

// RefreshLists implements `api.ListRefresher`.
func (h *Holder) RefreshLists(ctx context.Context) error {
	return h.Refresh(ctx)
}

func (h *Holder) load(ctx context.Context) (*extractor.Extractor, error) {
	if h.source.IsZero() {
		return extractor.DefaultExtractor(), nil
	}

	r, err := lists.OpenSource(ctx, h.source, h.downloader)
	if err != nil {
		return nil, fmt.Errorf("can't open %s: %w", h.source, err)
	}
	defer r.Close()

	return extractor.New(ctx, r)
}

func (h *Holder) sourceName() string {
	if h.source.IsZero() {
		return "built-in"
	}

	return h.source.String()
}

// Extractor returns the active extractor.
func (h *Holder) Extractor() *extractor.Extractor {
	return h.active.Load().extractor
}

// LastRefresh returns the time the active list was loaded.
func (h *Holder) LastRefresh() time.Time {
	return h.active.Load().loaded
}

// Extract splits `domain` with the active list.
func (h *Holder) Extract(domain string) (extractor.Parts, error) {
	s := h.active.Load()

	return s.cached(domain, s.extractor.Extract)
}

// ExtractFromURL splits the host of `url` with the active list.
func (h *Holder) ExtractFromURL(url string) (extractor.Parts, error) {
	host, err := extractor.HostFromURL(url)
	if err != nil {
		return extractor.Parts{}, err
	}

	return h.Extract(host)
}

// ExtractQuestion splits the name of a DNS question with the active list.
func (h *Holder) ExtractQuestion(question dns.Question) (extractor.Parts, error) {
	return h.Extract(util.ExtractDomain(question))
}

// IsValidDomain checks `domain` with the active list.
func (h *Holder) IsValidDomain(domain string) bool {
	return h.Extractor().IsValidDomain(domain)
}

// ListTLDs returns the rules of the active list.
func (h *Holder) ListTLDs() []string {
	return h.Extractor().ListTLDs()
}

func (s *snapshot) cached(domain string, extract func(string) (extractor.Parts, error)) (extractor.Parts, error) {
	if s.cache == nil {
		return extract(domain)
	}

	if val, ok := s.cache.Get(domain); ok {
		evt.Bus().Publish(evt.CachingResultCacheHit, domain)

		return val.(extractor.Parts), nil
	}

	evt.Bus().Publish(evt.CachingResultCacheMiss, domain)

	parts, err := extract(domain)
	if err != nil {
		return parts, err
	}

	s.cache.Add(domain, parts)

	evt.Bus().Publish(evt.CachingResultCacheChanged, s.cache.Len())

	return parts, nil
}
