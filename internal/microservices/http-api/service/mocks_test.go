package service

import (
	"context"

	"libraryhub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockBookRepository mocks the BookRepository interface
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, book *models.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) FindByID(ctx context.Context, id int64) (*models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

// MockBorrowRepository mocks the BorrowRepository interface
type MockBorrowRepository struct {
	mock.Mock
}

func (m *MockBorrowRepository) Create(ctx context.Context, record *models.BorrowRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockBorrowRepository) ListByUser(ctx context.Context, userID int64) ([]models.BorrowRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BorrowRecord), args.Error(1)
}

// MockBorrowListCache mocks the BorrowListCache interface
type MockBorrowListCache struct {
	mock.Mock
}

func (m *MockBorrowListCache) Get(ctx context.Context, userID int64) ([]models.BorrowRecord, int64, bool) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Bool(2)
	}
	return args.Get(0).([]models.BorrowRecord), args.Get(1).(int64), args.Bool(2)
}

func (m *MockBorrowListCache) Set(ctx context.Context, userID int64, version int64, records []models.BorrowRecord) {
	m.Called(ctx, userID, version, records)
}

func (m *MockBorrowListCache) Invalidate(ctx context.Context, userID int64) {
	m.Called(ctx, userID)
}
