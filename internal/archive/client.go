package archive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"atlas/pkg/platform/sentinel"
)

var fetchFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "atlas_archive_fetch_failures_total",
	Help: "Archive downloads that ended in a network error or non-success status",
})

const (
	defaultTimeout = 30 * time.Second

	// Nomenclature archives run to a few MB; anything past this is not the
	// archive we asked for.
	maxArchiveBytes = 64 << 20
)

// Fetcher downloads archive blobs with a bounded wait. A failed fetch is an
// environmental condition: callers degrade to curated data, they do not
// propagate the error upward.
type Fetcher struct {
	client *http.Client
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient substitutes the underlying HTTP client, primarily for tests.
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher constructs a Fetcher with a bounded request timeout.
func NewFetcher(timeout time.Duration, opts ...FetcherOption) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	f := &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Fetch retrieves the archive at url as a byte blob. Non-success statuses and
// transport failures are both reported as sentinel.ErrUnavailable.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build archive request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		fetchFailures.Inc()
		return nil, fmt.Errorf("fetch archive: %v: %w", err, sentinel.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fetchFailures.Inc()
		return nil, fmt.Errorf("fetch archive: status %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}

	blob, err := io.ReadAll(io.LimitReader(resp.Body, maxArchiveBytes))
	if err != nil {
		fetchFailures.Inc()
		return nil, fmt.Errorf("read archive body: %v: %w", err, sentinel.ErrUnavailable)
	}
	return blob, nil
}
