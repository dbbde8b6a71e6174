package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"jeju-tour-api/internal/domain/entity"
	"jeju-tour-api/internal/domain/repository"
	"jeju-tour-api/internal/metrics"
)

// GuardedProvider makes exactly one call to the wrapped provider and turns
// every failure into an *entity.ProviderError. It never retries.
type GuardedProvider struct {
	inner   repository.AIProvider
	name    string
	timeout time.Duration
}

// NewGuardedProvider wraps inner. A zero timeout leaves the call bounded only
// by the caller's context and the provider client.
func NewGuardedProvider(name string, inner repository.AIProvider, timeout time.Duration) *GuardedProvider {
	return &GuardedProvider{
		inner:   inner,
		name:    name,
		timeout: timeout,
	}
}

func (g *GuardedProvider) Generate(ctx context.Context, req entity.ProviderRequest) (*entity.ProviderReply, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.inner.Generate(ctx, req)
	metrics.ProviderCallDuration.WithLabelValues(g.name).Observe(time.Since(start).Seconds())

	if err != nil {
		perr := g.classify(ctx, err)
		metrics.ProviderCalls.WithLabelValues(g.name, string(perr.Kind)).Inc()
		return nil, perr
	}
	if resp == nil || strings.TrimSpace(resp.Output) == "" {
		metrics.ProviderCalls.WithLabelValues(g.name, string(entity.KindEmpty)).Inc()
		return nil, &entity.ProviderError{
			Kind:     entity.KindEmpty,
			Provider: g.name,
			Err:      errors.New("provider returned no text"),
		}
	}

	metrics.ProviderCalls.WithLabelValues(g.name, "success").Inc()
	return resp, nil
}

func (g *GuardedProvider) classify(ctx context.Context, err error) *entity.ProviderError {
	var perr *entity.ProviderError
	if errors.As(err, &perr) {
		return perr
	}

	kind := entity.KindTransport
	var statusErr *entity.StatusError
	switch {
	case g.isTimeout(ctx, err):
		kind = entity.KindTimeout
	case errors.As(err, &statusErr):
		kind = entity.KindStatus
		if statusErr.StatusCode == http.StatusRequestTimeout || statusErr.StatusCode == http.StatusGatewayTimeout {
			kind = entity.KindTimeout
		}
	}
	return &entity.ProviderError{Kind: kind, Provider: g.name, Err: err}
}

func (g *GuardedProvider) isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline")
}
