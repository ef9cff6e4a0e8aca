package estimate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"estimateai/internal/domain"
	"estimateai/internal/pkg/costing"
)

const maxZipcodeLen = 10

type Service struct {
	estimates     EstimateRepository
	clients       ClientRepository
	drafts        *DraftStore
	pdf           PDFRenderer
	mailer        Mailer
	defaultMargin float64
}

func NewService(
	estimates EstimateRepository,
	clients ClientRepository,
	drafts *DraftStore,
	pdf PDFRenderer,
	mailer Mailer,
	defaultMargin float64,
) *Service {
	return &Service{
		estimates:     estimates,
		clients:       clients,
		drafts:        drafts,
		pdf:           pdf,
		mailer:        mailer,
		defaultMargin: defaultMargin,
	}
}

func (s *Service) List(ctx context.Context, userID int64, status string, limit, offset int) ([]domain.Estimate, error) {
	if status != "" && !domain.EstimateStatus(status).Valid() {
		return nil, ErrValidation
	}
	return s.estimates.ListByUser(ctx, userID, status, limit, offset)
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Estimate, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateEstimateRequest) (*domain.Estimate, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrValidation
	}

	margin := s.defaultMargin
	if req.ProfitMargin != nil {
		margin = *req.ProfitMargin
	}
	if err := costing.ValidateMargin(margin); err != nil {
		return nil, err
	}
	if len(req.LocationZipcode) > maxZipcodeLen {
		return nil, ErrValidation
	}
	if req.ClientID != nil {
		if _, err := s.clients.GetByID(ctx, *req.ClientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrValidation
			}
			return nil, err
		}
	}

	e := &domain.Estimate{
		UserID:          userID,
		Title:           title,
		Description:     req.Description,
		Status:          domain.EstimateDraft,
		ProfitMargin:    margin,
		LocationZipcode: req.LocationZipcode,
		ClientID:        req.ClientID,
		TotalCost:       0,
	}

	if err := s.estimates.Create(ctx, e); err != nil {
		return nil, err
	}

	// the creation flow is committed, drop its draft buffer
	s.drafts.ClearTarget(DraftTargetNew)
	return e, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateEstimateRequest) (*domain.Estimate, error) {
	e, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrValidation
		}
		e.Title = title
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.ProfitMargin != nil {
		if err := costing.ValidateMargin(*req.ProfitMargin); err != nil {
			return nil, err
		}
		e.ProfitMargin = *req.ProfitMargin
	}
	if req.LocationZipcode != nil {
		if len(*req.LocationZipcode) > maxZipcodeLen {
			return nil, ErrValidation
		}
		e.LocationZipcode = *req.LocationZipcode
	}
	if req.ClientID != nil {
		if _, err := s.clients.GetByID(ctx, *req.ClientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrValidation
			}
			return nil, err
		}
		e.ClientID = req.ClientID
	}

	totals, err := s.totalsFor(ctx, e)
	if err != nil {
		return nil, err
	}
	e.TotalCost = totals.Total

	if err := s.estimates.Update(ctx, e); err != nil {
		return nil, err
	}

	s.drafts.ClearTarget(strconv.FormatInt(id, 10))
	return e, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.estimates.Delete(ctx, id)
}

// UpdateStatus applies a lifecycle transition. Anything outside the
// transition table surfaces as domain.ErrInvalidStatusTransition.
func (s *Service) UpdateStatus(ctx context.Context, userID, id int64, newStatus string) (*domain.Estimate, error) {
	e, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	next, err := e.Status.Transition(domain.EstimateStatus(newStatus))
	if err != nil {
		return nil, err
	}

	if err := s.estimates.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	e.Status = next
	return e, nil
}

// Totals computes the live summary for an estimate. This is the same
// computation used for the persisted total_cost snapshot.
func (s *Service) Totals(ctx context.Context, userID, id int64) (*costing.Totals, error) {
	e, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	totals, err := s.totalsFor(ctx, e)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (s *Service) ListMaterials(ctx context.Context, userID, estimateID int64) ([]domain.MaterialItem, error) {
	if _, err := s.getOwned(ctx, userID, estimateID); err != nil {
		return nil, err
	}
	return s.estimates.ListMaterials(ctx, estimateID)
}

func (s *Service) AddMaterial(ctx context.Context, userID, estimateID int64, req MaterialItemRequest) (*domain.MaterialItem, error) {
	e, err := s.getOwned(ctx, userID, estimateID)
	if err != nil {
		return nil, err
	}

	m, err := materialFromRequest(estimateID, req)
	if err != nil {
		return nil, err
	}

	if err := s.estimates.AddMaterial(ctx, m); err != nil {
		return nil, err
	}
	if err := s.refreshTotalSnapshot(ctx, e); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) UpdateMaterial(ctx context.Context, userID, estimateID, itemID int64, req MaterialItemRequest) (*domain.MaterialItem, error) {
	e, err := s.getOwned(ctx, userID, estimateID)
	if err != nil {
		return nil, err
	}

	existing, err := s.estimates.GetMaterial(ctx, estimateID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	m, err := materialFromRequest(estimateID, req)
	if err != nil {
		return nil, err
	}
	m.ID = existing.ID

	if err := s.estimates.UpdateMaterial(ctx, m); err != nil {
		return nil, err
	}
	if err := s.refreshTotalSnapshot(ctx, e); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) RemoveMaterial(ctx context.Context, userID, estimateID, itemID int64) error {
	e, err := s.getOwned(ctx, userID, estimateID)
	if err != nil {
		return err
	}
	if err := s.estimates.DeleteMaterial(ctx, estimateID, itemID); err != nil {
		return err
	}
	return s.refreshTotalSnapshot(ctx, e)
}

func (s *Service) ListLabor(ctx context.Context, userID, estimateID int64) ([]domain.LaborItem, error) {
	if _, err := s.getOwned(ctx, userID, estimateID); err != nil {
		return nil, err
	}
	return s.estimates.ListLabor(ctx, estimateID)
}

func (s *Service) AddLabor(ctx context.Context, userID, estimateID int64, req LaborItemRequest) (*domain.LaborItem, error) {
	e, err := s.getOwned(ctx, userID, estimateID)
	if err != nil {
		return nil, err
	}

	l, err := laborFromRequest(estimateID, req)
	if err != nil {
		return nil, err
	}

	if err := s.estimates.AddLabor(ctx, l); err != nil {
		return nil, err
	}
	if err := s.refreshTotalSnapshot(ctx, e); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) UpdateLabor(ctx context.Context, userID, estimateID, itemID int64, req LaborItemRequest) (*domain.LaborItem, error) {
	e, err := s.getOwned(ctx, userID, estimateID)
	if err != nil {
		return nil, err
	}

	existing, err := s.estimates.GetLabor(ctx, estimateID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	l, err := laborFromRequest(estimateID, req)
	if err != nil {
		return nil, err
	}
	l.ID = existing.ID

	if err := s.estimates.UpdateLabor(ctx, l); err != nil {
		return nil, err
	}
	if err := s.refreshTotalSnapshot(ctx, e); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) RemoveLabor(ctx context.Context, userID, estimateID, itemID int64) error {
	e, err := s.getOwned(ctx, userID, estimateID)
	if err != nil {
		return err
	}
	if err := s.estimates.DeleteLabor(ctx, estimateID, itemID); err != nil {
		return err
	}
	return s.refreshTotalSnapshot(ctx, e)
}

func (s *Service) ExportPDF(ctx context.Context, userID, id int64) ([]byte, error) {
	e, materials, labor, totals, err := s.loadForRender(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.pdf.Render(e, materials, labor, totals)
}

func (s *Service) SendEmail(ctx context.Context, userID, id int64, email string) error {
	if s.mailer == nil {
		return ErrMailerUnavailable
	}

	e, materials, labor, totals, err := s.loadForRender(ctx, userID, id)
	if err != nil {
		return err
	}

	pdf, err := s.pdf.Render(e, materials, labor, totals)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Estimate: %s", e.Title)
	return s.mailer.SendEstimate(ctx, email, subject, pdf)
}

// BeginDraft scopes the draft buffer to the given target, dropping any
// leftover draft for a different estimate.
func (s *Service) BeginDraft(targetID string) {
	s.drafts.Begin(targetID)
}

func (s *Service) MergeDraft(targetID string, patch map[string]any) (map[string]any, error) {
	if raw, ok := patch["profit_margin"]; ok {
		margin, ok := numberField(patch, "profit_margin")
		if !ok && raw != nil {
			return nil, ErrValidation
		}
		if ok {
			if err := costing.ValidateMargin(margin); err != nil {
				return nil, err
			}
		}
	}
	if zip, ok := stringField(patch, "location_zipcode"); ok && len(zip) > maxZipcodeLen {
		return nil, ErrValidation
	}
	return s.drafts.Merge(targetID, patch)
}

// DraftBaseline resolves what the form should display for the current draft
// target: buffered fields over the stored estimate over defaults.
func (s *Service) DraftBaseline(ctx context.Context, userID int64) (*domain.Estimate, error) {
	target, _ := s.drafts.Snapshot()

	var initial *domain.Estimate
	if target != "" && target != DraftTargetNew {
		id, err := strconv.ParseInt(target, 10, 64)
		if err != nil {
			return nil, ErrValidation
		}
		initial, err = s.getOwned(ctx, userID, id)
		if err != nil {
			return nil, err
		}
	}

	baseline := s.drafts.Baseline(initial)
	return &baseline, nil
}

func (s *Service) CancelDraft() {
	s.drafts.Clear()
}

func (s *Service) getOwned(ctx context.Context, userID, id int64) (*domain.Estimate, error) {
	e, err := s.estimates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if e.UserID != userID {
		return nil, ErrForbidden
	}
	return e, nil
}

func (s *Service) totalsFor(ctx context.Context, e *domain.Estimate) (costing.Totals, error) {
	materials, err := s.estimates.ListMaterials(ctx, e.ID)
	if err != nil {
		return costing.Totals{}, err
	}
	labor, err := s.estimates.ListLabor(ctx, e.ID)
	if err != nil {
		return costing.Totals{}, err
	}
	return costing.ComputeTotals(e.ProfitMargin, materials, labor), nil
}

// refreshTotalSnapshot re-derives the persisted grand total after any line
// item change, keeping Estimate.TotalCost consistent with ComputeTotals.
func (s *Service) refreshTotalSnapshot(ctx context.Context, e *domain.Estimate) error {
	totals, err := s.totalsFor(ctx, e)
	if err != nil {
		return err
	}
	return s.estimates.UpdateTotalCost(ctx, e.ID, totals.Total)
}

func (s *Service) loadForRender(ctx context.Context, userID, id int64) (*domain.Estimate, []domain.MaterialItem, []domain.LaborItem, costing.Totals, error) {
	e, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, nil, nil, costing.Totals{}, err
	}
	materials, err := s.estimates.ListMaterials(ctx, id)
	if err != nil {
		return nil, nil, nil, costing.Totals{}, err
	}
	labor, err := s.estimates.ListLabor(ctx, id)
	if err != nil {
		return nil, nil, nil, costing.Totals{}, err
	}
	totals := costing.ComputeTotals(e.ProfitMargin, materials, labor)
	return e, materials, labor, totals, nil
}

func materialFromRequest(estimateID int64, req MaterialItemRequest) (*domain.MaterialItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Quantity == nil || req.UnitCost == nil {
		return nil, ErrValidation
	}
	if err := costing.ValidateLineInputs(*req.Quantity, *req.UnitCost); err != nil {
		return nil, err
	}
	if req.Unit != "" && !domain.ValidMaterialUnit(req.Unit) {
		return nil, ErrValidation
	}

	category := req.Category
	if category == "" {
		category = domain.DefaultMaterialCategory
	}

	return &domain.MaterialItem{
		EstimateID:  estimateID,
		Name:        name,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Unit:        req.Unit,
		UnitCost:    *req.UnitCost,
		TotalCost:   costing.LineTotal(*req.Quantity, *req.UnitCost),
		Category:    category,
	}, nil
}

func laborFromRequest(estimateID int64, req LaborItemRequest) (*domain.LaborItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Hours == nil || req.RatePerHour == nil {
		return nil, ErrValidation
	}
	if err := costing.ValidateLineInputs(*req.Hours, *req.RatePerHour); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = domain.DefaultLaborCategory
	}

	return &domain.LaborItem{
		EstimateID:  estimateID,
		Name:        name,
		Description: req.Description,
		Hours:       *req.Hours,
		RatePerHour: *req.RatePerHour,
		TotalCost:   costing.LineTotal(*req.Hours, *req.RatePerHour),
		Category:    category,
	}, nil
}
