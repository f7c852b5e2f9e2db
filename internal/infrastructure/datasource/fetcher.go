// Package datasource reads the static list documents from a URL or a local file.
package datasource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/solblist-api/internal/domain/dataset"
	"github.com/riskibarqy/solblist-api/internal/platform/logging"
	"github.com/riskibarqy/solblist-api/internal/platform/resilience"
	"github.com/riskibarqy/solblist-api/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"gopkg.in/yaml.v3"
)

const (
	defaultTimeout = 20 * time.Second
	maxBodySize    = 8 << 20
)

var errTransient = crerr.New("dataset source transient failure")

type Config struct {
	HTTPClient     *fasthttp.Client
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Fetcher struct {
	client     *fasthttp.Client
	timeout    time.Duration
	maxRetries int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.SingleFlight
}

func NewFetcher(cfg Config) *Fetcher {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &fasthttp.Client{
			Name:                "solblist-importer",
			MaxResponseBodySize: maxBodySize,
		}
	}

	breaker := resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("dataset source circuit breaker changed state", "from", from, "to", to)
	})

	return &Fetcher{
		client:     client,
		timeout:    timeout,
		maxRetries: max(cfg.MaxRetries, 0),
		logger:     logger,
		breaker:    breaker,
	}
}

func (f *Fetcher) Levels(ctx context.Context, source string) ([]dataset.LevelRecord, error) {
	var out []dataset.LevelRecord
	if err := f.load(ctx, source, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *Fetcher) Challenges(ctx context.Context, source string) (dataset.ChallengeFile, error) {
	var out dataset.ChallengeFile
	if err := f.load(ctx, source, &out); err != nil {
		return dataset.ChallengeFile{}, err
	}
	return out, nil
}

func (f *Fetcher) Changelogs(ctx context.Context, source string) (dataset.ChangelogFile, error) {
	var out dataset.ChangelogFile
	if err := f.load(ctx, source, &out); err != nil {
		return dataset.ChangelogFile{}, err
	}
	return out, nil
}

func (f *Fetcher) load(ctx context.Context, source string, target any) error {
	raw, err := f.Fetch(ctx, source)
	if err != nil {
		return err
	}
	return Decode(source, raw, target)
}

// Fetch returns the raw document behind source, which is an http(s) URL or a file path.
func (f *Fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, crerr.Newf("dataset source is required")
	}
	if !isRemote(source) {
		raw, err := os.ReadFile(source)
		if err != nil {
			return nil, crerr.Wrapf(err, "read dataset file %s", source)
		}
		return raw, nil
	}

	out, err, _ := f.flight.Do(source, func() (any, error) {
		var (
			body      []byte
			permanent error
		)
		execErr := f.breaker.Execute(ctx, func(ctx context.Context) error {
			raw, err := f.fetchWithRetry(ctx, source)
			if err != nil && !crerr.Is(err, errTransient) {
				permanent = err
				return nil
			}
			body = raw
			return err
		})
		if crerr.Is(execErr, resilience.ErrCircuitOpen) {
			f.logger.WarnContext(ctx, "dataset circuit breaker rejected request", "source", source, "state", f.breaker.State())
			return nil, crerr.Wrapf(usecase.ErrDependencyUnavailable, "dataset source %s is temporarily unavailable", source)
		}
		if execErr != nil {
			return nil, execErr
		}
		if permanent != nil {
			return nil, permanent
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, crerr.Newf("unexpected dataset payload type %T", out)
	}
	return raw, nil
}

func (f *Fetcher) fetchWithRetry(ctx context.Context, source string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		raw, err := f.get(ctx, source)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !crerr.Is(err, errTransient) || attempt == f.maxRetries {
			break
		}

		backoff := time.Duration(attempt+1) * 250 * time.Millisecond
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	f.logger.WarnContext(ctx, "dataset request failed", "source", source, "error", lastErr)
	return nil, lastErr
}

func (f *Fetcher) get(ctx context.Context, source string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(source)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json, application/yaml")

	deadline := time.Now().Add(f.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := f.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "get %s", source), errTransient)
	}

	status := resp.StatusCode()
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := resp.BodyWriteTo(buf); err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "read %s", source), errTransient)
	}

	if status < 200 || status >= 300 {
		err := crerr.Newf("dataset source status=%d body=%s", status, abbreviate(buf.String()))
		if isRetryableStatus(status) {
			return nil, crerr.Mark(err, errTransient)
		}
		return nil, err
	}

	return append([]byte(nil), buf.B...), nil
}

// Decode unmarshals raw into target, as YAML for .yaml/.yml sources and JSON otherwise.
func Decode(source string, raw []byte, target any) error {
	switch strings.ToLower(filepath.Ext(stripQuery(source))) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, target); err != nil {
			return crerr.Wrapf(err, "decode yaml dataset %s", source)
		}
	default:
		if err := sonic.Unmarshal(raw, target); err != nil {
			return crerr.Wrapf(err, "decode json dataset %s", source)
		}
	}
	return nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func stripQuery(source string) string {
	if idx := strings.IndexAny(source, "?#"); idx >= 0 {
		return source[:idx]
	}
	return source
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func abbreviate(body string) string {
	body = strings.TrimSpace(body)
	if len(body) > 200 {
		return fmt.Sprintf("%s...(%d bytes)", body[:200], len(body))
	}
	return body
}
