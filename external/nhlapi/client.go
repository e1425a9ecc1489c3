package nhlapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/resilience"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/usecase"
)

const (
	DefaultBaseURL = "https://api-web.nhle.com/v1"

	defaultTimeout    = 20 * time.Second
	maxResponseBytes  = 16 << 20
	maxLoggedBodySize = 240
)

var errNHLTransient = crerr.New("nhl api transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads schedule and game payloads from api-web.nhle.com. Payloads
// are returned raw; decoding belongs to the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	retry      resilience.RetryPolicy
	logger     *logging.Logger
	breaker    *resilience.Breaker
	flight     singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		retry: resilience.RetryPolicy{
			MaxRetries: max(cfg.MaxRetries, 0),
			Backoff:    resilience.LinearBackoff(backoff),
		},
		logger:  logger,
		breaker: resilience.NewBreaker(cfg.CircuitBreaker),
	}
}

// FetchSchedule returns the week schedule that starts around date (YYYY-MM-DD).
func (c *Client) FetchSchedule(ctx context.Context, date string) ([]byte, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, fmt.Errorf("%w: schedule date is required", usecase.ErrInvalidInput)
	}
	return c.get(ctx, "/schedule/"+url.PathEscape(date))
}

func (c *Client) FetchPlayByPlay(ctx context.Context, gameID int64) ([]byte, error) {
	if gameID <= 0 {
		return nil, fmt.Errorf("%w: game id must be positive", usecase.ErrInvalidInput)
	}
	return c.get(ctx, fmt.Sprintf("/gamecenter/%d/play-by-play", gameID))
}

func (c *Client) FetchGameStory(ctx context.Context, gameID int64) ([]byte, error) {
	if gameID <= 0 {
		return nil, fmt.Errorf("%w: game id must be positive", usecase.ErrInvalidInput)
	}
	return c.get(ctx, fmt.Sprintf("/wsc/game-story/%d", gameID))
}

// get collapses concurrent requests for the same path and only lets
// transient failures count against the circuit breaker.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	fullURL := c.baseURL + path
	out, err, _ := c.flight.Do(path, func() (any, error) {
		var raw []byte
		err := c.breaker.Do(ctx, func(ctx context.Context) error {
			body, reqErr := c.executeRequest(ctx, fullURL)
			raw = body
			return reqErr
		}, isTransient)
		return raw, err
	})
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "nhl api circuit breaker rejected request", "state", c.breaker.State(), "path", path)
		return nil, fmt.Errorf("%w: nhl api is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, crerr.Newf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var raw []byte
	err := resilience.Retry(ctx, c.retry, isTransient, func(ctx context.Context, attempt int) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return crerr.Wrap(err, "build request")
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return crerr.Mark(crerr.Wrapf(err, "send request attempt=%d", attempt+1), errNHLTransient)
		}
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		_ = resp.Body.Close()
		if readErr != nil {
			return crerr.Mark(crerr.Wrap(readErr, "read response body"), errNHLTransient)
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			raw = body
			return nil
		case resp.StatusCode == http.StatusNotFound:
			return fmt.Errorf("%w: nhl api status=404 url=%s", usecase.ErrNotFound, fullURL)
		case isRetryableStatus(resp.StatusCode):
			return crerr.Mark(crerr.Newf("nhl api status=%d body=%s", resp.StatusCode, abbreviateBody(body)), errNHLTransient)
		default:
			return crerr.Newf("nhl api status=%d body=%s", resp.StatusCode, abbreviateBody(body))
		}
	})
	if err != nil {
		c.logger.WarnContext(ctx, "nhl api request failed", "url", fullURL, "error", err)
		return nil, err
	}
	return raw, nil
}

func isTransient(err error) bool {
	return err != nil && crerr.Is(err, errNHLTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= maxLoggedBodySize {
		return text
	}
	return text[:maxLoggedBodySize] + "..."
}
