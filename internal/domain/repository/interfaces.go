package repository

import (
	"context"
	"jeju-tour-api/internal/domain/entity"
)

type AIProvider interface {
	Generate(ctx context.Context, req entity.ProviderRequest) (*entity.ProviderReply, error)
}

type ConversationStore interface {
	Load(ctx context.Context, id string) ([]entity.Turn, error)
	Save(ctx context.Context, id string, turns []entity.Turn) error
}

type CatalogSource interface {
	Lookup(location string) entity.Catalog
	Refined(location string) entity.Catalog
	Destinations() []entity.Destination
}
