package macpack

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	retry "github.com/avast/retry-go/v5"
	"github.com/pion/logging"
)

// https://regauth.standards.ieee.org/standards-ra-web/pub/view.html#registries
const (
	RemoteIeeeMACLarge  string = "http://standards-oui.ieee.org/oui/oui.csv"
	RemoteIeeeMACMedium string = "http://standards-oui.ieee.org/oui28/mam.csv"
	RemoteIeeeMACSmall  string = "http://standards-oui.ieee.org/oui36/oui36.csv"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultAttempts   = 3
	defaultRetryDelay = time.Second
)

// A RemoteOption configures how a remote registry is fetched.
type RemoteOption func(*remote)

type remote struct {
	ctx      context.Context
	client   *http.Client
	attempts uint
	delay    time.Duration
	log      logging.LeveledLogger
}

// WithHTTPClient replaces the default client, which times out after 30s.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(r *remote) { r.client = c }
}

// WithAttempts sets how many times a fetch is tried before giving up.
func WithAttempts(n uint) RemoteOption {
	return func(r *remote) {
		if n > 0 {
			r.attempts = n
		}
	}
}

// WithRetryDelay sets the base delay between attempts.
func WithRetryDelay(d time.Duration) RemoteOption {
	return func(r *remote) { r.delay = d }
}

// WithContext bounds the whole fetch, retries included.
func WithContext(ctx context.Context) RemoteOption {
	return func(r *remote) { r.ctx = ctx }
}

// WithFetchLogger reports failed attempts to l.
func WithFetchLogger(l logging.LeveledLogger) RemoteOption {
	return func(r *remote) { r.log = l }
}

func newRemote(opts []RemoteOption) *remote {
	r := &remote{
		ctx:      context.Background(),
		client:   &http.Client{Timeout: defaultTimeout},
		attempts: defaultAttempts,
		delay:    defaultRetryDelay,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// WithRemoteSource adds entries from a remote location to the table.
// e.g. path: http://example.com/list.csv
// The csv source should be formatted like the local source.
func WithRemoteSource(url string, opts ...RemoteOption) Option {
	return func(b *builder) error {
		b.loaders = append(b.loaders, func(log logging.LeveledLogger) (Pack, error) {
			r := newRemote(opts)
			if r.log == nil {
				r.log = log
			}
			payload, err := r.fetch(url)
			if err != nil {
				return Pack{}, err
			}
			return readRegistry(bytes.NewReader(payload), log)
		})
		return nil
	}
}

// Fetch downloads url, retrying transient failures. A 4xx response is
// not retried.
func Fetch(url string, opts ...RemoteOption) ([]byte, error) {
	return newRemote(opts).fetch(url)
}

func (r *remote) fetch(url string) ([]byte, error) {
	return retry.NewWithData[[]byte](
		retry.Context(r.ctx),
		retry.Attempts(r.attempts),
		retry.Delay(r.delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			if r.log != nil {
				r.log.Warnf("fetch %s attempt %d failed: %v", url, n+1, err)
			}
		}),
	).Do(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(r.ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, retry.Unrecoverable(err)
		}
		resp, err := r.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("macpack: GET %s: %s", url, resp.Status)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return nil, retry.Unrecoverable(err)
			}
			return nil, err
		}
		return io.ReadAll(resp.Body)
	})
}
