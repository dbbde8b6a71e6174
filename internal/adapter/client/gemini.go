package client

import (
	"context"
	"errors"

	"jeju-tour-api/internal/domain/entity"
	"jeju-tour-api/internal/domain/repository"

	"google.golang.org/genai"
)

type GeminiConfig struct {
	APIKey        string
	Project       string
	Location      string
	Model         string
	BaseURL       string
	Conversations repository.ConversationStore
}

type GeminiClient struct {
	client        *genai.Client
	model         string
	conversations repository.ConversationStore
}

// NewGeminiClient uses the Gemini API when an API key is set and Vertex AI
// otherwise.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		Project:  cfg.Project,
		Location: cfg.Location,
		Backend:  genai.BackendVertexAI,
	}
	if cfg.APIKey != "" {
		cc = &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		}
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return NewGeminiClientFromClient(client, cfg.Model, cfg.Conversations), nil
}

func NewGeminiClientFromClient(c *genai.Client, model string, conversations repository.ConversationStore) *GeminiClient {
	return &GeminiClient{
		client:        c,
		model:         model,
		conversations: conversations,
	}
}

func (g *GeminiClient) Generate(ctx context.Context, req entity.ProviderRequest) (*entity.ProviderReply, error) {
	turns, err := openConversation(ctx, g.conversations, req)
	if err != nil {
		return nil, err
	}

	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		var role genai.Role = genai.RoleUser
		if t.Role == entity.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, role))
	}

	var config *genai.GenerateContentConfig
	if req.WebSearch {
		config = &genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return nil, &entity.StatusError{StatusCode: apiErr.Code, Body: apiErr.Message}
		}
		return nil, err
	}

	text := result.Text()
	id, err := closeConversation(ctx, g.conversations, "gemini", turns, text)
	if err != nil {
		return nil, err
	}
	return &entity.ProviderReply{ID: id, Output: text, Model: g.model}, nil
}
