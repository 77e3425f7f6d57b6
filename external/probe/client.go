package probe

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/streampulse/sportscast/internal/domain/stream"
	"github.com/streampulse/sportscast/internal/platform/cache"
	"github.com/streampulse/sportscast/internal/platform/logging"
	"github.com/streampulse/sportscast/internal/platform/resilience"
)

const (
	defaultBaseURL = "https://gg.poocloud.in"
	defaultTimeout = 10 * time.Second

	probeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0"

	playbackOrigin    = "https://ppv.to"
	playbackReferrer  = "https://ppv.to/"
	playbackUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:143.0) Gecko/20100101 Firefox/143.0"
)

type Config struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Logger     *logging.Logger
	Breaker    resilience.CircuitBreakerConfig
}

// Client probes the streaming host for live endpoints. Verdicts are
// cached per slug so the same team is never probed twice in one pass;
// transport errors stay uncached and count against the breaker.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	verdicts   *cache.Store
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	var breaker *resilience.CircuitBreaker
	bcfg := resilience.NormalizeCircuitBreakerConfig(cfg.Breaker)
	if bcfg.Enabled {
		breaker = resilience.NewCircuitBreaker(bcfg.FailureThreshold, bcfg.OpenTimeout, bcfg.HalfOpenMaxReq)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
		breaker:    breaker,
		verdicts:   cache.NewStore(0),
	}
}

// StreamURL builds the playable endpoint for a slug.
func (c *Client) StreamURL(slug string) string {
	return fmt.Sprintf("%s/%s/tracks-v1a1/mono.ts.m3u8", c.baseURL, slug)
}

// Headers is the request header bundle players need for playback.
func (c *Client) Headers() stream.Headers {
	return stream.Headers{
		Origin:    playbackOrigin,
		Referrer:  playbackReferrer,
		UserAgent: playbackUserAgent,
	}
}

// Verify reports whether the slug's endpoint answers with HTTP 200 to
// a HEAD request, following redirects. Any failure, including an open
// breaker, reads as not live.
func (c *Client) Verify(ctx context.Context, slug string) bool {
	if slug == "" {
		return false
	}

	verdict, err := c.verdicts.GetOrLoad(ctx, slug, func(ctx context.Context) (any, error) {
		return c.probe(ctx, slug)
	})
	if err != nil {
		c.logger.DebugContext(ctx, "probe failed", "slug", slug, "error", err)
		return false
	}
	live, _ := verdict.(bool)
	return live
}

func (c *Client) probe(ctx context.Context, slug string) (bool, error) {
	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			return false, fmt.Errorf("probe %s: %w", slug, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.StreamURL(slug), nil)
	if err != nil {
		return false, fmt.Errorf("build probe request: %w", err)
	}
	req.Header.Set("User-Agent", probeUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.breaker != nil {
			c.breaker.RecordFailure()
		}
		return false, fmt.Errorf("probe %s: %w", slug, err)
	}
	defer resp.Body.Close()

	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
	return resp.StatusCode == http.StatusOK, nil
}
