package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"jeju-tour-api/internal/adapter/store"
	"jeju-tour-api/internal/domain/entity"
	"jeju-tour-api/internal/domain/repository"
	"jeju-tour-api/internal/logger"

	"github.com/stretchr/testify/require"
)

const validCatalogJSON = `{
  "filters": [
    {"key": "duration", "label": "소요 시간", "type": "single_select",
     "options": [{"label": "3시간", "value": "3시간"}]}
  ],
  "items": [
    {"title": "[우도] 자전거 투어", "link": "https://example.com/1", "course": "A → B",
     "price": 30000, "region": "제주시 우도면", "attributes": {"duration": "3시간", "seats": 12}}
  ]
}`

// fakeProvider records every request and answers with a fixed reply.
type fakeProvider struct {
	mu    sync.Mutex
	calls []entity.ProviderRequest
	reply *entity.ProviderReply
	err   error
	delay time.Duration
}

func (f *fakeProvider) Generate(ctx context.Context, req entity.ProviderRequest) (*entity.ProviderReply, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestDelegation(t *testing.T, p *fakeProvider, mode OutputMode) *Delegation {
	t.Helper()
	var provider repository.AIProvider
	if p != nil {
		provider = NewGuardedProvider("fake", p, time.Second)
	}
	d, err := NewDelegation(provider, DelegationConfig{ProviderName: "fake", OutputMode: mode, WebSearch: true}, logger.NewTestLogger(t))
	require.NoError(t, err)
	return d
}

func newTestResolver(t *testing.T, p *fakeProvider, secret string) *Resolver {
	t.Helper()
	return NewResolver(
		NewAccessGuard(secret),
		store.NewStaticCatalog("/images"),
		newTestDelegation(t, p, OutputPassthrough),
		logger.NewTestLogger(t),
	)
}

// recordingLogger keeps the errors attached through WithError.
type recordingLogger struct {
	mu     sync.Mutex
	errors []error
}

func (r *recordingLogger) Debug(string, map[string]interface{}) {}
func (r *recordingLogger) Info(string, map[string]interface{})  {}
func (r *recordingLogger) Warn(string, map[string]interface{})  {}
func (r *recordingLogger) Error(string, map[string]interface{}) {}

func (r *recordingLogger) With(map[string]interface{}) logger.Logger { return r }

func (r *recordingLogger) WithError(err error) logger.Logger {
	r.mu.Lock()
	r.errors = append(r.errors, err)
	r.mu.Unlock()
	return r
}
