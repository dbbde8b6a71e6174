package client

import (
	"context"
	"errors"
	"fmt"

	"jeju-tour-api/internal/domain/entity"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// OpenAIClient talks to the OpenAI Responses API, which keeps conversation
// state on its side and accepts previous_response_id for follow-ups.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient disables SDK retries; each Generate is one HTTP request.
func NewOpenAIClient(baseURL, apiKey, model string, opts ...option.RequestOption) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing")
	}
	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		base = append(base, option.WithBaseURL(baseURL))
	}
	return &OpenAIClient{
		client: openai.NewClient(append(base, opts...)...),
		model:  model,
	}, nil
}

func (c *OpenAIClient) Generate(ctx context.Context, req entity.ProviderRequest) (*entity.ProviderReply, error) {
	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(c.model),
		Input: responses.ResponseNewParamsInputUnion{OfString: openai.String(req.Prompt)},
	}
	if req.PreviousID != "" {
		params.PreviousResponseID = openai.String(req.PreviousID)
	}
	if req.WebSearch {
		params.Tools = []responses.ToolUnionParam{{
			OfWebSearch: &responses.WebSearchToolParam{Type: responses.WebSearchToolTypeWebSearchPreview},
		}}
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, &entity.StatusError{StatusCode: apiErr.StatusCode, Body: apiErr.Message}
		}
		return nil, err
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("openai: %s", resp.Error.Message)
	}

	model := string(resp.Model)
	if model == "" {
		model = c.model
	}
	return &entity.ProviderReply{ID: resp.ID, Output: resp.OutputText(), Model: model}, nil
}
