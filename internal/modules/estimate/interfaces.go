package estimate

import (
	"context"
	"time"

	"estimateai/internal/domain"
	"estimateai/internal/pkg/costing"
)

// EstimateRepository defines the persistence operations the service needs.
type EstimateRepository interface {
	ListByUser(ctx context.Context, userID int64, status string, limit, offset int) ([]domain.Estimate, error)
	GetByID(ctx context.Context, id int64) (*domain.Estimate, error)
	Create(ctx context.Context, e *domain.Estimate) error
	Update(ctx context.Context, e *domain.Estimate) error
	UpdateStatus(ctx context.Context, id int64, status domain.EstimateStatus) error
	UpdateTotalCost(ctx context.Context, id int64, total float64) error
	Delete(ctx context.Context, id int64) error

	ListMaterials(ctx context.Context, estimateID int64) ([]domain.MaterialItem, error)
	GetMaterial(ctx context.Context, estimateID, itemID int64) (*domain.MaterialItem, error)
	AddMaterial(ctx context.Context, m *domain.MaterialItem) error
	UpdateMaterial(ctx context.Context, m *domain.MaterialItem) error
	DeleteMaterial(ctx context.Context, estimateID, itemID int64) error

	ListLabor(ctx context.Context, estimateID int64) ([]domain.LaborItem, error)
	GetLabor(ctx context.Context, estimateID, itemID int64) (*domain.LaborItem, error)
	AddLabor(ctx context.Context, l *domain.LaborItem) error
	UpdateLabor(ctx context.Context, l *domain.LaborItem) error
	DeleteLabor(ctx context.Context, estimateID, itemID int64) error

	ListStale(ctx context.Context, statuses []domain.EstimateStatus, before time.Time) ([]domain.Estimate, error)
}

// ClientRepository is the non-owning client directory the estimate module
// resolves references against.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// PDFRenderer turns a priced estimate into a document. The concrete renderer
// lives in internal/pkg/pdf.
type PDFRenderer interface {
	Render(e *domain.Estimate, materials []domain.MaterialItem, labor []domain.LaborItem, totals costing.Totals) ([]byte, error)
}

// Mailer delivers a rendered estimate to a client. Transport is external to
// this service; implementations are injected from cmd/api.
type Mailer interface {
	SendEstimate(ctx context.Context, to, subject string, pdf []byte) error
}
