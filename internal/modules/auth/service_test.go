package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"estimateai/internal/domain"
	"estimateai/internal/pkg/jwt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func newTestService(users *MockUserRepository) *Service {
	return NewService(users, jwt.New("test-secret", time.Hour))
}

func TestRegister_HashesPasswordAndIssuesToken(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users)

	users.On("GetByEmail", mock.Anything, "bob@builders.test").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Name:        "Bob",
		Email:       "Bob@Builders.test",
		CompanyName: "Bob's Construction",
		Password:    "hunter22",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "bob@builders.test", result.User.Email)
	assert.Equal(t, domain.TierFree, result.User.SubscriptionTier)
	assert.Empty(t, result.User.PasswordHash)

	// the hash actually stored must verify against the raw password
	created := users.Calls[1].Arguments.Get(1).(*domain.User)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter22")))
}

func TestRegister_DuplicateEmailIsRejected(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users)

	users.On("GetByEmail", mock.Anything, "bob@builders.test").Return(&domain.User{ID: 1, Email: "bob@builders.test"}, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Bob",
		Email:    "bob@builders.test",
		Password: "hunter22",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_ValidCredentials(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users)

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "bob@builders.test").Return(&domain.User{
		ID:           42,
		Email:        "bob@builders.test",
		PasswordHash: string(hash),
	}, nil)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "bob@builders.test",
		Password: "hunter22",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Empty(t, result.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users)

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "bob@builders.test").Return(&domain.User{
		ID:           42,
		Email:        "bob@builders.test",
		PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "bob@builders.test",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users)

	users.On("GetByEmail", mock.Anything, "nobody@builders.test").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@builders.test",
		Password: "hunter22",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_RejectsBlankName(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users)

	users.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{ID: 42, Name: "Bob"}, nil)

	blank := "   "
	_, err := svc.UpdateProfile(context.Background(), 42, UpdateProfileRequest{Name: &blank})

	assert.ErrorIs(t, err, ErrValidation)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateProfile_PatchesCompanyName(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users)

	users.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{ID: 42, Name: "Bob", CompanyName: "Old LLC"}, nil)
	users.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	company := "Bob's Construction"
	user, err := svc.UpdateProfile(context.Background(), 42, UpdateProfileRequest{CompanyName: &company})

	assert.NoError(t, err)
	assert.Equal(t, "Bob", user.Name)
	assert.Equal(t, "Bob's Construction", user.CompanyName)
}
