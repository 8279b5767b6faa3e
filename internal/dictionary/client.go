package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/alexisbeaulieu97/wordbook/internal/logger"
	"github.com/alexisbeaulieu97/wordbook/internal/query"
	wordbookerrors "github.com/alexisbeaulieu97/wordbook/pkg/errors"
)

// DefaultBaseURL is the public English endpoint of the dictionary service.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

const (
	defaultTimeout    = 15 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
	maxBodyBytes      = 4 << 20
)

// ErrEmptyTerm is returned when Lookup is called with a blank term.
var ErrEmptyTerm = errors.New("term must not be empty")

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	// RateLimit is the sustained number of requests per second; zero disables limiting.
	RateLimit  float64
	Burst      int
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Client fetches word entries from the dictionary service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	retries    int
	retryDelay time.Duration
	log        *logger.Logger
}

// NewClient builds a Client from opts, filling in defaults.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid service url %q", opts.BaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	if opts.Retries < 0 {
		return nil, fmt.Errorf("retries must not be negative, got %d", opts.Retries)
	}

	retryDelay := opts.RetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}

	limit := rate.Inf
	burst := opts.Burst
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
		if burst <= 0 {
			burst = 1
		}
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		retries:    opts.Retries,
		retryDelay: retryDelay,
		log:        log.Component("dictionary"),
	}, nil
}

// BaseURL returns the endpoint the client queries.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URLFor returns the request URL used for term.
func (c *Client) URLFor(term string) string {
	return c.baseURL + "/" + url.PathEscape(term)
}

// Lookup fetches and classifies the service reply for term. Not-found and
// malformed replies are reported through the Result, not the error.
func (c *Client) Lookup(ctx context.Context, term string) (Result, error) {
	term = query.Normalize(term)
	if term == "" {
		return Result{}, wordbookerrors.NewLookupError(term, ErrEmptyTerm)
	}

	log := c.log.WithFields(map[string]any{"term": term})

	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, wordbookerrors.NewLookupError(term, fmt.Errorf("rate limit: %w", err))
	}

	reqURL := c.URLFor(term)
	log.Debug("dictionary request")

	resp, err := c.doWithRetry(ctx, reqURL, log)
	if err != nil {
		log.Error(err, "dictionary request failed")
		return Result{}, wordbookerrors.NewLookupError(term, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Error(err, "dictionary response read failed")
		return Result{}, wordbookerrors.NewLookupError(term, fmt.Errorf("read body: %w", err))
	}

	log.WithFields(map[string]any{"status": resp.StatusCode}).Payload("dictionary response", body)

	result, err := Classify(resp.StatusCode, body)
	if err != nil {
		return result, wordbookerrors.NewLookupError(term, err)
	}
	return result, nil
}

func (c *Client) doWithRetry(ctx context.Context, reqURL string, log *logger.Logger) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		retryable := err != nil || resp.StatusCode >= http.StatusInternalServerError
		if !retryable || attempt >= c.retries || ctx.Err() != nil {
			return resp, err
		}

		reason := "network error"
		if err == nil {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
			resp.Body.Close()
		}
		log.WithFields(map[string]any{"attempt": attempt + 1, "reason": reason}).Warn("dictionary retry")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}
}
