package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"jeju-tour-api/internal/domain/entity"
	"jeju-tour-api/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardedProvider_Success(t *testing.T) {
	inner := &fakeProvider{reply: &entity.ProviderReply{ID: "r1", Output: "{}"}}
	g := NewGuardedProvider("success-test", inner, time.Second)

	reply, err := g.Generate(context.Background(), entity.ProviderRequest{Prompt: "q"})
	require.NoError(t, err)
	assert.Equal(t, "r1", reply.ID)
	assert.Equal(t, 1, inner.callCount())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ProviderCalls.WithLabelValues("success-test", "success")))
}

func TestGuardedProvider_Classification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		reply    *entity.ProviderReply
		wantKind entity.ProviderErrorKind
		wantCode entity.ErrorCode
	}{
		{
			name:     "transport",
			err:      errors.New("dial tcp: connection refused"),
			wantKind: entity.KindTransport,
			wantCode: entity.ErrCodeProviderFailed,
		},
		{
			name:     "bad status",
			err:      &entity.StatusError{StatusCode: http.StatusInternalServerError, Body: "oops"},
			wantKind: entity.KindStatus,
			wantCode: entity.ErrCodeProviderStatus,
		},
		{
			name:     "gateway timeout status",
			err:      fmt.Errorf("wrapped: %w", &entity.StatusError{StatusCode: http.StatusGatewayTimeout}),
			wantKind: entity.KindTimeout,
			wantCode: entity.ErrCodeProviderTimeout,
		},
		{
			name:     "deadline",
			err:      context.DeadlineExceeded,
			wantKind: entity.KindTimeout,
			wantCode: entity.ErrCodeProviderTimeout,
		},
		{
			name:     "client timeout message",
			err:      errors.New("net/http: request canceled (Client.Timeout exceeded while awaiting headers)"),
			wantKind: entity.KindTimeout,
			wantCode: entity.ErrCodeProviderTimeout,
		},
		{
			name:     "empty output",
			reply:    &entity.ProviderReply{ID: "r1", Output: "  \n"},
			wantKind: entity.KindEmpty,
			wantCode: entity.ErrCodeProviderEmpty,
		},
		{
			name:     "nil reply",
			wantKind: entity.KindEmpty,
			wantCode: entity.ErrCodeProviderEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &fakeProvider{err: tt.err, reply: tt.reply}
			g := NewGuardedProvider("classify", inner, time.Second)

			_, err := g.Generate(context.Background(), entity.ProviderRequest{Prompt: "q"})

			var perr *entity.ProviderError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, tt.wantKind, perr.Kind)
			assert.Equal(t, tt.wantCode, perr.Code())
			assert.Equal(t, "classify", perr.Provider)
			assert.Equal(t, 1, inner.callCount(), "exactly one outbound call")
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestGuardedProvider_KeepsExistingProviderError(t *testing.T) {
	orig := &entity.ProviderError{Kind: entity.KindMalformed, Provider: "inner", RawOutput: "x", Err: errors.New("bad")}
	g := NewGuardedProvider("outer", &fakeProvider{err: orig}, 0)

	_, err := g.Generate(context.Background(), entity.ProviderRequest{})
	var perr *entity.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Same(t, orig, perr)
}

func TestGuardedProvider_Timeout(t *testing.T) {
	inner := &fakeProvider{delay: time.Second, reply: &entity.ProviderReply{Output: "late"}}
	g := NewGuardedProvider("timeout-test", inner, 20*time.Millisecond)

	start := time.Now()
	_, err := g.Generate(context.Background(), entity.ProviderRequest{Prompt: "q"})
	elapsed := time.Since(start)

	var perr *entity.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, entity.KindTimeout, perr.Kind)
	assert.Less(t, elapsed, 500*time.Millisecond)
	assert.Equal(t, 1, inner.callCount())
}

func TestGuardedProvider_ZeroTimeoutUsesCallerContext(t *testing.T) {
	inner := &fakeProvider{delay: 10 * time.Millisecond, reply: &entity.ProviderReply{Output: "ok"}}
	g := NewGuardedProvider("unbounded", inner, 0)

	reply, err := g.Generate(context.Background(), entity.ProviderRequest{Prompt: "q"})
	require.NoError(t, err)
	assert.Equal(t, "ok", reply.Output)
}
