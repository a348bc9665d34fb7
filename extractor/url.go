package extractor

import (
	"fmt"
	"strings"
)

const schemeSeparator = "//"

// HostFromURL returns the host of `url`, without user info and port.
//
// Only the parts around the host are stripped, `url` is not validated.
func HostFromURL(url string) (string, error) {
	idx := strings.Index(url, schemeSeparator)
	if idx == -1 {
		return "", fmt.Errorf("%w: no scheme", ErrInvalidURL)
	}

	host := url[idx+len(schemeSeparator):]

	if idx := strings.IndexByte(host, '/'); idx != -1 {
		host = host[:idx]
	}

	if idx := strings.IndexByte(host, '@'); idx != -1 {
		host = host[idx+1:]
	}

	if idx := strings.IndexByte(host, ':'); idx != -1 {
		host = host[:idx]
	}

	if len(host) == 0 {
		return "", fmt.Errorf("%w: no domain", ErrInvalidURL)
	}

	return host, nil
}
