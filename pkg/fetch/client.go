package fetch

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"

	"github.com/koopamoopa/Decoding-Unicode/pkg/buildinfo"
	apperrors "github.com/koopamoopa/Decoding-Unicode/pkg/errors"
	"github.com/koopamoopa/Decoding-Unicode/pkg/httputil"
	"github.com/koopamoopa/Decoding-Unicode/pkg/observability"
)

// Defaults applied by [NewClient] to zero-valued [Options] fields.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxBodyBytes = 32 << 20
)

// Options configures a [Client].
type Options struct {
	Timeout      time.Duration // per-attempt request timeout
	Attempts     int           // total attempts for retryable failures
	RetryDelay   time.Duration // initial backoff, doubled per retry
	UserAgent    string
	MaxBodyBytes int64
	Logger       *log.Logger
}

// Client fetches document bodies.
type Client struct {
	http      *http.Client
	attempts  int
	delay     time.Duration
	userAgent string
	maxBody   int64
	logger    *log.Logger
}

// NewClient creates a Client, filling unset options with defaults.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Attempts <= 0 {
		opts.Attempts = httputil.DefaultAttempts
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = httputil.DefaultDelay
	}
	if opts.UserAgent == "" {
		opts.UserAgent = buildinfo.UserAgent()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Client{
		http:      &http.Client{Timeout: opts.Timeout},
		attempts:  opts.Attempts,
		delay:     opts.RetryDelay,
		userAgent: opts.UserAgent,
		maxBody:   opts.MaxBodyBytes,
		logger:    opts.Logger,
	}
}

// Fetch performs a GET request for rawURL and returns the body as text.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := apperrors.ValidateURL(rawURL); err != nil {
		return "", err
	}

	var body string
	attempt := 0
	err := httputil.Retry(ctx, c.attempts, c.delay, func() error {
		attempt++
		var err error
		body, err = c.get(ctx, rawURL)
		if err != nil && httputil.IsRetryable(err) && attempt < c.attempts {
			c.logger.Warn("fetch failed, retrying", "attempt", attempt, "err", err)
		}
		return err
	})
	if err != nil {
		var re *httputil.RetryableError
		if errors.As(err, &re) {
			err = re.Err
		}
		return "", err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInvalidURL, err, "build request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html, text/plain;q=0.9, */*;q=0.5")

	host, path := hostPath(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	c.logger.Debug("GET", "url", rawURL)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", httputil.Retryable(transportError(err))
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return "", httputil.Retryable(transportError(err))
	}
	if int64(len(data)) > c.maxBody {
		return "", apperrors.New(apperrors.ErrCodeNetwork, "response body exceeds %d bytes", c.maxBody)
	}
	return string(data), nil
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		return nil
	case code >= 500, code == http.StatusTooManyRequests:
		return httputil.Retryable(apperrors.New(apperrors.ErrCodeNetwork, "status %s", resp.Status))
	default:
		return apperrors.New(apperrors.ErrCodeNetwork, "status %s", resp.Status)
	}
}

func transportError(err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return apperrors.Wrap(apperrors.ErrCodeTimeout, err, "request timed out")
	}
	return apperrors.Wrap(apperrors.ErrCodeNetwork, err, "request failed")
}

func hostPath(u *url.URL) (string, string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.Path
}
