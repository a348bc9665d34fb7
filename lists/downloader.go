package lists

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/0xERR0R/domainextractor/config"
	"github.com/0xERR0R/domainextractor/evt"
	"github.com/0xERR0R/domainextractor/log"
	"github.com/0xERR0R/domainextractor/util"
	"github.com/avast/retry-go/v4"
	"github.com/sirupsen/logrus"
)

const (
	defaultDownloadTimeout  = time.Second
	defaultDownloadAttempts = uint(1)
	defaultDownloadCooldown = 500 * time.Millisecond

	// the upstream list is about 250 KB
	maxListSize = 32 << 20
)

func logger() *logrus.Entry {
	return log.PrefixedLog("lists")
}

// TransientError is a failed attempt worth retrying, like a timeout
type TransientError struct {
	inner error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("temporary error occurred: %v", e.inner)
}

func (e *TransientError) Unwrap() error {
	return e.inner
}

// StatusError is returned if the server answers with a status other than 200
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("got status code %d", e.Code)
}

// retryable reports if the server may answer differently later
func (e *StatusError) retryable() bool {
	return e.Code >= http.StatusInternalServerError ||
		e.Code == http.StatusTooManyRequests ||
		e.Code == http.StatusRequestTimeout
}

// FileDownloader is able to download some text file
type FileDownloader interface {
	DownloadFile(ctx context.Context, link string) (io.ReadCloser, error)
}

// HTTPDownloader downloads files via HTTP protocol
type HTTPDownloader struct {
	downloadTimeout  time.Duration
	downloadAttempts uint
	downloadCooldown time.Duration
	httpTransport    *http.Transport
}

type DownloaderOption func(c *HTTPDownloader)

func NewDownloader(options ...DownloaderOption) *HTTPDownloader {
	d := &HTTPDownloader{
		downloadTimeout:  defaultDownloadTimeout,
		downloadAttempts: defaultDownloadAttempts,
		downloadCooldown: defaultDownloadCooldown,
		httpTransport:    &http.Transport{Proxy: http.ProxyFromEnvironment},
	}

	for _, opt := range options {
		opt(d)
	}

	return d
}

// NewDownloaderFromConfig creates a downloader with the configured timeout, attempts and cooldown
func NewDownloaderFromConfig(cfg config.DownloaderConfig, options ...DownloaderOption) *HTTPDownloader {
	options = append([]DownloaderOption{
		WithTimeout(cfg.Timeout.ToDuration()),
		WithAttempts(cfg.Attempts),
		WithCooldown(cfg.Cooldown.ToDuration()),
	}, options...)

	return NewDownloader(options...)
}

// WithTimeout sets the timeout of a single attempt
func WithTimeout(timeout time.Duration) DownloaderOption {
	return func(d *HTTPDownloader) {
		d.downloadTimeout = timeout
	}
}

// WithCooldown sets the pause between 2 download attempts
func WithCooldown(cooldown time.Duration) DownloaderOption {
	return func(d *HTTPDownloader) {
		d.downloadCooldown = cooldown
	}
}

// WithAttempts sets the max count of download attempts
func WithAttempts(downloadAttempts uint) DownloaderOption {
	return func(d *HTTPDownloader) {
		d.downloadAttempts = downloadAttempts
	}
}

// WithTransport sets the HTTP transport
func WithTransport(httpTransport *http.Transport) DownloaderOption {
	return func(d *HTTPDownloader) {
		d.httpTransport = httpTransport
	}
}

// DownloadFile fetches `link`, retrying timeouts, network errors and 5xx answers.
//
// Every failed attempt publishes `evt.ListDownloadFailed`.
func (d *HTTPDownloader) DownloadFile(ctx context.Context, link string) (io.ReadCloser, error) {
	client := &http.Client{
		Timeout:   d.downloadTimeout,
		Transport: d.httpTransport,
	}

	logger().WithField("link", link).Info("starting download")

	var (
		body    io.ReadCloser
		attempt uint
	)

	err := retry.Do(
		func() error {
			attempt++

			var err error

			body, err = d.get(ctx, client, link)
			if err != nil {
				d.onAttemptFailed(link, attempt, err)
			}

			return err
		},
		retry.Context(ctx),
		retry.Attempts(d.downloadAttempts),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(d.downloadCooldown),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}

	return body, nil
}

// get performs a single attempt, errors not worth a retry are marked unrecoverable
func (d *HTTPDownloader) get(ctx context.Context, client *http.Client, link string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}

	req.Header.Set("User-Agent", "domainextractor/"+util.Version)

	resp, err := client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, &TransientError{inner: netErr}
		}

		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()

		statusErr := &StatusError{Code: resp.StatusCode}
		if !statusErr.retryable() {
			return nil, retry.Unrecoverable(statusErr)
		}

		return nil, statusErr
	}

	if resp.ContentLength > maxListSize {
		_ = resp.Body.Close()

		return nil, retry.Unrecoverable(fmt.Errorf("list too large: %d bytes", resp.ContentLength))
	}

	return resp.Body, nil
}

func (d *HTTPDownloader) onAttemptFailed(link string, attempt uint, err error) {
	var (
		transientErr *TransientError
		dnsErr       *net.DNSError
	)

	logger := logger().WithFields(logrus.Fields{
		"link":    link,
		"attempt": fmt.Sprintf("%d/%d", attempt, d.downloadAttempts),
	})

	switch {
	case errors.As(err, &transientErr):
		logger.Warnf("Temporary network err / Timeout occurred: %s", transientErr)
	case errors.As(err, &dnsErr):
		logger.Warnf("Name resolution err: %s", dnsErr.Err)
	default:
		logger.Warnf("Can't download file: %s", err)
	}

	evt.Bus().Publish(evt.ListDownloadFailed, link)
}
