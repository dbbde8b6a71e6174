package usecase

import (
	"context"
	"fmt"
	"time"

	"jeju-tour-api/internal/domain/entity"
	"jeju-tour-api/internal/domain/repository"
	"jeju-tour-api/internal/logger"
)

type DelegationConfig struct {
	ProviderName string
	OutputMode   OutputMode
	MaxItems     int
	WebSearch    bool
}

// Delegation forwards tour queries to the AI provider, one call per query.
type Delegation struct {
	provider  repository.AIProvider
	name      string
	prompts   *PromptBuilder
	mode      OutputMode
	validator *catalogValidator
	webSearch bool
	logger    logger.Logger
}

// NewDelegation accepts a nil provider; every call then fails with
// entity.ErrProviderUnavailable.
func NewDelegation(provider repository.AIProvider, cfg DelegationConfig, log logger.Logger) (*Delegation, error) {
	if cfg.OutputMode == "" {
		cfg.OutputMode = OutputPassthrough
	}
	d := &Delegation{
		provider:  provider,
		name:      cfg.ProviderName,
		prompts:   NewPromptBuilder(cfg.MaxItems),
		mode:      cfg.OutputMode,
		webSearch: cfg.WebSearch,
		logger:    log.With(map[string]interface{}{"provider": cfg.ProviderName}),
	}
	switch cfg.OutputMode {
	case OutputPassthrough:
	case OutputStrict:
		v, err := newCatalogValidator(d.prompts.maxItems)
		if err != nil {
			return nil, err
		}
		d.validator = v
	default:
		return nil, fmt.Errorf("unknown output mode %q", cfg.OutputMode)
	}
	return d, nil
}

func (d *Delegation) Initial(ctx context.Context, location string) (entity.Envelope, error) {
	prompt, err := d.prompts.Initial(location)
	if err != nil {
		return entity.Envelope{}, fmt.Errorf("render prompt: %w", err)
	}
	return d.run(ctx, entity.ProviderRequest{Prompt: prompt, WebSearch: d.webSearch})
}

func (d *Delegation) Continue(ctx context.Context, previousID, condition string) (entity.Envelope, error) {
	prompt, err := d.prompts.Continue(condition)
	if err != nil {
		return entity.Envelope{}, fmt.Errorf("render prompt: %w", err)
	}
	return d.run(ctx, entity.ProviderRequest{Prompt: prompt, PreviousID: previousID, WebSearch: d.webSearch})
}

func (d *Delegation) run(ctx context.Context, req entity.ProviderRequest) (entity.Envelope, error) {
	if d.provider == nil {
		return entity.Envelope{}, entity.ErrProviderUnavailable
	}

	start := time.Now()
	reply, err := d.provider.Generate(ctx, req)
	if err != nil {
		d.logger.WithError(err).Error("provider call failed", map[string]interface{}{
			"previousId": req.PreviousID,
			"latencyMs":  time.Since(start).Milliseconds(),
		})
		return entity.Envelope{}, err
	}

	output := reply.Output
	if d.mode == OutputStrict {
		normalized, err := d.validator.Normalize(reply.Output)
		if err != nil {
			d.logger.WithError(err).Warn("provider output rejected", map[string]interface{}{
				"responseId": reply.ID,
			})
			return entity.Envelope{}, &entity.ProviderError{
				Kind:      entity.KindMalformed,
				Provider:  d.name,
				RawOutput: reply.Output,
				Err:       err,
			}
		}
		output = normalized
	}

	d.logger.Info("provider call completed", map[string]interface{}{
		"responseId":  reply.ID,
		"previousId":  req.PreviousID,
		"model":       reply.Model,
		"outputBytes": len(reply.Output),
		"latencyMs":   time.Since(start).Milliseconds(),
	})
	return entity.AIEnvelope(reply.ID, output), nil
}
