package client

import (
	"context"

	"estimateai/internal/domain"
)

type ClientRepository interface {
	ListByUser(ctx context.Context, userID int64, search string) ([]domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
	CountEstimateReferences(ctx context.Context, clientID int64) (int64, error)
}
