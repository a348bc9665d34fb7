package evt

import (
	"github.com/asaskevich/EventBus"
)

const (
	// ApplicationStarted fires on start of the application. Parameter: version number, build time
	ApplicationStarted = "application:started"

	// SuffixListLoaded fires if a suffix list was compiled and activated. Parameter: rule count
	SuffixListLoaded = "suffixList:loaded"

	// ListDownloadFailed fires if a download attempt of a list failed. Parameter: link
	ListDownloadFailed = "suffixList:downloadFailed"

	// RequestProcessed fires after an API request was answered. Parameter: operation name, success
	RequestProcessed = "api:requestProcessed"

	// CachingResultCacheChanged fires if the result cache was changed, Parameter: new cache size
	CachingResultCacheChanged = "caching:resultCacheChanged"

	// CachingResultCacheHit fires, if a result was found in the cache, Parameter: domain name
	CachingResultCacheHit = "caching:cacheHit"

	// CachingResultCacheMiss fires, if a result was not found in the cache, Parameter: domain name
	CachingResultCacheMiss = "caching:cacheMiss"
)

// nolint
var evtBus = EventBus.New()

func Bus() EventBus.Bus {
	return evtBus
}
