package entity

import (
	"errors"
	"fmt"
)

// Standard domain errors
var (
	ErrProviderUnavailable  = errors.New("ai provider is not configured")
	ErrMalformedOutput      = errors.New("ai output is not a valid tour catalog")
	ErrConversationNotFound = errors.New("conversation not found or expired")
)

// ErrorCode is the machine-readable code carried in error responses.
type ErrorCode string

const (
	ErrCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrCodeProviderFailed   ErrorCode = "PROVIDER_FAILED"
	ErrCodeProviderTimeout  ErrorCode = "PROVIDER_TIMEOUT"
	ErrCodeProviderStatus   ErrorCode = "PROVIDER_BAD_STATUS"
	ErrCodeProviderEmpty    ErrorCode = "PROVIDER_EMPTY_OUTPUT"
	ErrCodeMalformedOutput  ErrorCode = "MALFORMED_OUTPUT"
	ErrCodeConversation     ErrorCode = "CONVERSATION_SAVE_FAILED"
	ErrCodeProviderDisabled ErrorCode = "PROVIDER_DISABLED"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

type ProviderErrorKind string

// KindConversation means the provider answered but its turn could not be
// stored for a later continuation.
const (
	KindTransport    ProviderErrorKind = "transport"
	KindTimeout      ProviderErrorKind = "timeout"
	KindStatus       ProviderErrorKind = "status"
	KindEmpty        ProviderErrorKind = "empty"
	KindMalformed    ProviderErrorKind = "malformed"
	KindConversation ProviderErrorKind = "conversation"
)

// ProviderError is any failure while invoking the AI provider or shaping its
// answer. RawOutput holds whatever text the provider returned, if any.
type ProviderError struct {
	Kind      ProviderErrorKind
	Provider  string
	RawOutput string
	Err       error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s %s failure: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) Code() ErrorCode {
	switch e.Kind {
	case KindTimeout:
		return ErrCodeProviderTimeout
	case KindStatus:
		return ErrCodeProviderStatus
	case KindEmpty:
		return ErrCodeProviderEmpty
	case KindMalformed:
		return ErrCodeMalformedOutput
	case KindConversation:
		return ErrCodeConversation
	}
	return ErrCodeProviderFailed
}

// StatusError reports a non-2xx answer from a provider HTTP API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
