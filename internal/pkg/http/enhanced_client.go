package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/piresc/quickconnect/internal/pkg/circuitbreaker"
	"github.com/piresc/quickconnect/internal/pkg/logger"
	nrpkg "github.com/piresc/quickconnect/internal/pkg/newrelic"
	"github.com/piresc/quickconnect/internal/pkg/retry"
)

// Options tunes the outbound client
type Options struct {
	Name          string
	Timeout       time.Duration
	MaxRetries    int
	OnStateChange func(name string, from, to circuitbreaker.State)
}

// EnhancedClient wraps http.Client with retry and circuit breaker functionality
type EnhancedClient struct {
	client  *http.Client
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
	logger  *logger.ZapLogger
}

// NewEnhancedClient creates a new enhanced HTTP client
func NewEnhancedClient(log *logger.ZapLogger, opts Options) *EnhancedClient {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = opts.MaxRetries
	retryCfg.IsRetryable = retry.IsTransient

	breakerCfg := circuitbreaker.DefaultConfig(opts.Name)
	breakerCfg.OnStateChange = opts.OnStateChange

	return &EnhancedClient{
		client:  &http.Client{Timeout: opts.Timeout},
		retrier: retry.New(retryCfg, log),
		breaker: circuitbreaker.New(breakerCfg, log),
		logger:  log,
	}
}

// Do executes an HTTP request with retry and circuit breaker protection.
// A non-2xx response is returned as *retry.StatusError with the body closed.
func (c *EnhancedClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var resp *http.Response

	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			r, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
				return c.client.Do(req.Clone(ctx))
			})
			if err != nil {
				return err
			}
			if r.StatusCode < 200 || r.StatusCode > 299 {
				_, _ = io.Copy(io.Discard, r.Body)
				r.Body.Close()
				return &retry.StatusError{StatusCode: r.StatusCode}
			}
			resp = r
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetJSON performs a GET and decodes the JSON body into out
func (c *EnhancedClient) GetJSON(ctx context.Context, url string, headers map[string]string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Host, err)
	}
	return nil
}

// BreakerState reports the breaker state guarding this client
func (c *EnhancedClient) BreakerState() circuitbreaker.State {
	return c.breaker.State()
}
