package client

import (
	"context"

	"jeju-tour-api/internal/domain/entity"
	"jeju-tour-api/internal/domain/repository"

	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

type chatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// OllamaClient runs prompts against a local Ollama model. It has no web
// search; answers come from the model's own knowledge.
type OllamaClient struct {
	chat          chatModel
	model         string
	conversations repository.ConversationStore
}

func NewOllamaClient(ctx context.Context, baseURL, modelName string, conversations repository.ConversationStore) (*OllamaClient, error) {
	cm, err := ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
		BaseURL: baseURL,
		Model:   modelName,
	})
	if err != nil {
		return nil, err
	}
	return newOllamaClient(cm, modelName, conversations), nil
}

func newOllamaClient(chat chatModel, modelName string, conversations repository.ConversationStore) *OllamaClient {
	return &OllamaClient{chat: chat, model: modelName, conversations: conversations}
}

func (o *OllamaClient) Generate(ctx context.Context, req entity.ProviderRequest) (*entity.ProviderReply, error) {
	turns, err := openConversation(ctx, o.conversations, req)
	if err != nil {
		return nil, err
	}

	msgs := make([]*schema.Message, 0, len(turns))
	for _, t := range turns {
		if t.Role == entity.RoleModel {
			msgs = append(msgs, schema.AssistantMessage(t.Text, nil))
		} else {
			msgs = append(msgs, schema.UserMessage(t.Text))
		}
	}

	resp, err := o.chat.Generate(ctx, msgs)
	if err != nil {
		return nil, err
	}

	id, err := closeConversation(ctx, o.conversations, "ollama", turns, resp.Content)
	if err != nil {
		return nil, err
	}
	return &entity.ProviderReply{ID: id, Output: resp.Content, Model: o.model}, nil
}
