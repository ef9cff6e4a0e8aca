package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"estimateai/internal/domain"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) ListByUser(ctx context.Context, userID int64, search string) ([]domain.Client, error) {
	args := m.Called(ctx, userID, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) Create(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 11 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) CountEstimateReferences(ctx context.Context, clientID int64) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreate_TrimsAndStores(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	c, err := svc.Create(context.Background(), 1, CreateClientRequest{
		Name:  "  John Smith  ",
		Email: " john@example.com ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "John Smith", c.Name)
	assert.Equal(t, "john@example.com", c.Email)
	assert.Equal(t, int64(1), c.UserID)
}

func TestCreate_RejectsBlankName(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), 1, CreateClientRequest{Name: "   "})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGet_OtherUsersClientIsForbidden(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(11)).Return(&domain.Client{ID: 11, UserID: 2}, nil)

	_, err := svc.Get(context.Background(), 1, 11)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDelete_RefusedWhileReferenced(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(11)).Return(&domain.Client{ID: 11, UserID: 1}, nil)
	repo.On("CountEstimateReferences", mock.Anything, int64(11)).Return(int64(3), nil)

	err := svc.Delete(context.Background(), 1, 11)

	assert.ErrorIs(t, err, ErrInUse)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_UnreferencedClientIsRemoved(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(11)).Return(&domain.Client{ID: 11, UserID: 1}, nil)
	repo.On("CountEstimateReferences", mock.Anything, int64(11)).Return(int64(0), nil)
	repo.On("Delete", mock.Anything, int64(11)).Return(nil)

	err := svc.Delete(context.Background(), 1, 11)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_PartialPatch(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(11)).Return(&domain.Client{ID: 11, UserID: 1, Name: "John Smith", Phone: "555-0100"}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	newPhone := "555-0199"
	c, err := svc.Update(context.Background(), 1, 11, UpdateClientRequest{Phone: &newPhone})

	assert.NoError(t, err)
	assert.Equal(t, "John Smith", c.Name)
	assert.Equal(t, "555-0199", c.Phone)
}

func TestGet_MissingClientIsNotFound(t *testing.T) {
	repo := new(MockClientRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 1, 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
