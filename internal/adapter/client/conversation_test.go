package client

import (
	"context"
	"errors"
	"testing"

	"jeju-tour-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenConversation_FreshPrompt(t *testing.T) {
	turns, err := openConversation(context.Background(), nil, entity.ProviderRequest{Prompt: "q"})
	require.NoError(t, err)
	assert.Equal(t, []entity.Turn{{Role: entity.RoleUser, Text: "q"}}, turns)
}

func TestOpenConversation_NoStoreCannotContinue(t *testing.T) {
	_, err := openConversation(context.Background(), nil, entity.ProviderRequest{Prompt: "q", PreviousID: "x"})
	assert.ErrorIs(t, err, entity.ErrConversationNotFound)
}

func TestConversation_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore()

	turns, err := openConversation(ctx, s, entity.ProviderRequest{Prompt: "first"})
	require.NoError(t, err)
	id, err := closeConversation(ctx, s, "test", turns, "answer")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	next, err := openConversation(ctx, s, entity.ProviderRequest{Prompt: "second", PreviousID: id})
	require.NoError(t, err)
	assert.Equal(t, []entity.Turn{
		{Role: entity.RoleUser, Text: "first"},
		{Role: entity.RoleModel, Text: "answer"},
		{Role: entity.RoleUser, Text: "second"},
	}, next)

	id2, err := closeConversation(ctx, s, "test", next, "answer2")
	require.NoError(t, err)
	assert.NotEqual(t, id, id2)
}

func TestConversation_UnknownPreviousID(t *testing.T) {
	_, err := openConversation(context.Background(), newMemoryStore(), entity.ProviderRequest{Prompt: "q", PreviousID: "gone"})
	assert.ErrorIs(t, err, entity.ErrConversationNotFound)
}

func TestCloseConversation_SaveFailureKeepsAnswer(t *testing.T) {
	boom := errors.New("redis down")
	s := newMemoryStore()
	s.saveErr = boom

	id, err := closeConversation(context.Background(), s, "gemini", []entity.Turn{{Role: entity.RoleUser, Text: "q"}}, "the answer")
	assert.Empty(t, id)

	var perr *entity.ProviderError
	require.True(t, errors.As(err, &perr), "got %v", err)
	assert.Equal(t, entity.KindConversation, perr.Kind)
	assert.Equal(t, entity.ErrCodeConversation, perr.Code())
	assert.Equal(t, "gemini", perr.Provider)
	assert.Equal(t, "the answer", perr.RawOutput)
	assert.ErrorIs(t, err, boom)
}

func TestCloseConversation_NoStore(t *testing.T) {
	id, err := closeConversation(context.Background(), nil, "openai", nil, "a")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
