package client

import (
	"context"
	"fmt"

	"jeju-tour-api/internal/domain/entity"
	"jeju-tour-api/internal/domain/repository"

	"github.com/google/uuid"
)

// openConversation returns the history of req.PreviousID followed by the new
// user turn.
func openConversation(ctx context.Context, store repository.ConversationStore, req entity.ProviderRequest) ([]entity.Turn, error) {
	var turns []entity.Turn
	if req.PreviousID != "" {
		if store == nil {
			return nil, entity.ErrConversationNotFound
		}
		prev, err := store.Load(ctx, req.PreviousID)
		if err != nil {
			return nil, err
		}
		turns = prev
	}
	return append(turns, entity.Turn{Role: entity.RoleUser, Text: req.Prompt}), nil
}

// closeConversation stores the finished exchange under a fresh id and
// returns that id as the continuation token. A failed save keeps the answer
// in the returned error's RawOutput.
func closeConversation(ctx context.Context, store repository.ConversationStore, provider string, turns []entity.Turn, answer string) (string, error) {
	id := uuid.NewString()
	if store == nil {
		return id, nil
	}
	turns = append(turns, entity.Turn{Role: entity.RoleModel, Text: answer})
	if err := store.Save(ctx, id, turns); err != nil {
		return "", &entity.ProviderError{
			Kind:      entity.KindConversation,
			Provider:  provider,
			RawOutput: answer,
			Err:       fmt.Errorf("save conversation: %w", err),
		}
	}
	return id, nil
}
