package stylist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/joshua-takyi/wearorithm/internal/metrics"
	"github.com/joshua-takyi/wearorithm/internal/models"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout         = 60 * time.Second
	defaultRate            = 2
	defaultBurst           = 4
	defaultBreakerFailures = 5
)

// Guard bounds every outbound call: it waits on a token-bucket limiter,
// runs through a circuit breaker and carries a per-call deadline.
type Guard struct {
	next    Stylist
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[any]
	timeout time.Duration
	logger  *slog.Logger
}

func NewGuard(next Stylist, opts Options, logger *slog.Logger) *Guard {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Rate <= 0 {
		opts.Rate = defaultRate
	}
	if opts.Burst <= 0 {
		opts.Burst = defaultBurst
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = defaultBreakerFailures
	}

	g := &Guard{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(opts.Rate), opts.Burst),
		timeout: opts.Timeout,
		logger:  logger,
	}

	g.breaker = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Stylist circuit breaker state change",
				"breaker", name, "from", from.String(), "to", to.String())
			metrics.SetBreakerState(int(to))
		},
		// The caller going away is not a model failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
	metrics.SetBreakerState(int(gobreaker.StateClosed))

	return g
}

func (g *Guard) Recommend(ctx context.Context, req RecommendRequest) ([]Recommendation, error) {
	return guarded(g, ctx, OpRecommend, func(ctx context.Context) ([]Recommendation, error) {
		return g.next.Recommend(ctx, req)
	})
}

func (g *Guard) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (*models.AnalysisResult, error) {
	return guarded(g, ctx, OpAnalyze, func(ctx context.Context) (*models.AnalysisResult, error) {
		return g.next.AnalyzeImage(ctx, data, mimeType)
	})
}

func (g *Guard) Palette(ctx context.Context, baseColors []string) ([]string, error) {
	return guarded(g, ctx, OpPalette, func(ctx context.Context) ([]string, error) {
		return g.next.Palette(ctx, baseColors)
	})
}

func guarded[T any](g *Guard, ctx context.Context, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.limiter.Wait(ctx); err != nil {
		metrics.RecordStylistCall(op, "rejected", 0)
		return zero, fmt.Errorf("%w: rate limited: %w", ErrStylistUnavailable, err)
	}

	start := time.Now()
	out, err := g.breaker.Execute(func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordStylistCall(op, "rejected", 0)
		} else {
			metrics.RecordStylistCall(op, "error", time.Since(start))
		}
		g.logger.ErrorContext(ctx, "Stylist call failed", "operation", op, "error", err)
		return zero, fmt.Errorf("%w: %w", ErrStylistUnavailable, err)
	}
	metrics.RecordStylistCall(op, "success", time.Since(start))

	result, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("%w: unexpected result type %T", ErrStylistUnavailable, out)
	}
	return result, nil
}
