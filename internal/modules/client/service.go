package client

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"estimateai/internal/domain"
)

type Service struct {
	clients ClientRepository
}

func NewService(clients ClientRepository) *Service {
	return &Service{clients: clients}
}

func (s *Service) List(ctx context.Context, userID int64, search string) ([]domain.Client, error) {
	return s.clients.ListByUser(ctx, userID, strings.TrimSpace(search))
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Client, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateClientRequest) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}

	c := &domain.Client{
		UserID:  userID,
		Name:    name,
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
		Notes:   req.Notes,
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateClientRequest) (*domain.Client, error) {
	c, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrValidation
		}
		c.Name = name
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		c.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		c.Address = strings.TrimSpace(*req.Address)
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := s.clients.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete refuses to remove a client that estimates still point at.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}

	refs, err := s.clients.CountEstimateReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrInUse
	}

	return s.clients.Delete(ctx, id)
}

func (s *Service) getOwned(ctx context.Context, userID, id int64) (*domain.Client, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if c.UserID != userID {
		return nil, ErrForbidden
	}
	return c, nil
}
