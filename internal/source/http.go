package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/logging"
)

// maxBodyBytes caps the feed body read into memory.
const maxBodyBytes = 32 << 20

// HTTPSource fetches the feed with a single GET. It never retries.
type HTTPSource struct {
	url        string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	logger     *logging.Logger
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithTimeout bounds each fetch. Zero means no timeout beyond ctx.
func WithTimeout(timeout time.Duration) HTTPOption {
	return func(s *HTTPSource) {
		s.timeout = timeout
	}
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *logging.Logger) HTTPOption {
	return func(s *HTTPSource) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) HTTPOption {
	return func(s *HTTPSource) {
		s.userAgent = ua
	}
}

// NewHTTPSource creates a source reading url.
func NewHTTPSource(url string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		url:        url,
		userAgent:  "kanban",
		httpClient: &http.Client{},
		logger:     logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("source").With("url", url)
	return s
}

// Describe implements Source.
func (s *HTTPSource) Describe() string {
	return s.url
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) (*Dataset, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.NewFetchError("create request", err).WithURL(s.url).WithRetryable(false)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewFetchError("send request", err).WithURL(s.url)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.NewFetchError("read response", err).WithURL(s.url)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewFetchError(fmt.Sprintf("unexpected status %d", resp.StatusCode), errors.ErrBadResponse).
			WithURL(s.url).
			WithStatusCode(resp.StatusCode)
	}

	ds, err := decode(body)
	if err != nil {
		return nil, errors.NewFetchError("decode response", err).WithURL(s.url).WithRetryable(false)
	}

	s.logger.Debug("feed fetched",
		"tickets", len(ds.Tickets),
		"users", len(ds.Users),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return ds, nil
}
