package repository

import (
	"context"
	"fmt"

	"libraryhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type BorrowRepository interface {
	Create(ctx context.Context, record *models.BorrowRecord) error
	ListByUser(ctx context.Context, userID int64) ([]models.BorrowRecord, error)
}

type borrowRepository struct {
	db *gorm.DB
}

func NewBorrowRepository(db *gorm.DB) BorrowRepository {
	return &borrowRepository{db: db}
}

// Create inserts the record. A user_id or book_id without a matching row
// fails with gorm.ErrForeignKeyViolated when the DB was opened with TranslateError.
func (r *borrowRepository) Create(ctx context.Context, record *models.BorrowRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("create borrow record: %w", err)
	}
	return nil
}

// ListByUser returns the user's records in insertion order.
func (r *borrowRepository) ListByUser(ctx context.Context, userID int64) ([]models.BorrowRecord, error) {
	records := make([]models.BorrowRecord, 0)

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list borrow records: %w", err)
	}

	return records, nil
}
