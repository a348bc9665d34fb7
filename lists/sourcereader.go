package lists

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/0xERR0R/domainextractor/config"
)

// OpenSource returns a reader over the content of `source`.
//
// HTTP sources are fetched with `downloader`, which may be nil for the other types.
func OpenSource(ctx context.Context, source config.BytesSource, downloader FileDownloader) (io.ReadCloser, error) {
	switch source.Type {
	case config.BytesSourceTypeText:
		return io.NopCloser(strings.NewReader(source.From)), nil

	case config.BytesSourceTypeFile:
		logger().WithField("file", source.From).Debug("opening list file")

		return os.Open(source.From)

	case config.BytesSourceTypeHttp:
		if downloader == nil {
			return nil, fmt.Errorf("cannot open %s: no downloader", source)
		}

		return downloader.DownloadFile(ctx, source.From)
	}

	return nil, fmt.Errorf("cannot open %s", source)
}
