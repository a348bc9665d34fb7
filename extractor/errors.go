package extractor

import "errors"

var (
	// ErrInvalidDomain is returned for domains with misplaced dots or exceeding the length limit.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrInvalidURL is returned if no host can be extracted from an URL.
	ErrInvalidURL = errors.New("invalid url")
)
