package service

import (
	"context"
	"errors"
	"log/slog"

	"libraryhub/internal/microservices/http-api/models"
	"libraryhub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

// BorrowListCache caches a user's borrow list. *cache.BorrowListCache implements it.
//
// Every Invalidate bumps the user's version. Get reports the version current at
// the time of the lookup, and Set stores a list only while that version is still
// current, so a list read before a borrow is never written back after it.
// A negative version means unknown; Set ignores it.
type BorrowListCache interface {
	Get(ctx context.Context, userID int64) (records []models.BorrowRecord, version int64, hit bool)
	Set(ctx context.Context, userID int64, version int64, records []models.BorrowRecord)
	Invalidate(ctx context.Context, userID int64)
}

type noopBorrowListCache struct{}

func (noopBorrowListCache) Get(context.Context, int64) ([]models.BorrowRecord, int64, bool) {
	return nil, -1, false
}
func (noopBorrowListCache) Set(context.Context, int64, int64, []models.BorrowRecord) {}
func (noopBorrowListCache) Invalidate(context.Context, int64) {}

type BorrowService interface {
	Borrow(ctx context.Context, userID, bookID int64) (*models.BorrowRecord, error)
	ListByUser(ctx context.Context, userID int64) ([]models.BorrowRecord, error)
}

type borrowService struct {
	repo     repository.BorrowRepository
	userRepo repository.UserRepository
	bookRepo repository.BookRepository
	cache    BorrowListCache
	logger   *slog.Logger
}

func NewBorrowService(
	repo repository.BorrowRepository,
	userRepo repository.UserRepository,
	bookRepo repository.BookRepository,
	cache BorrowListCache,
	logger *slog.Logger,
) BorrowService {
	if cache == nil {
		cache = noopBorrowListCache{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &borrowService{
		repo:     repo,
		userRepo: userRepo,
		bookRepo: bookRepo,
		cache:    cache,
		logger:   logger,
	}
}

// Borrow records that userID borrowed bookID. Both must exist. Availability is
// not tracked, so a book can be borrowed by any number of users at once.
func (s *borrowService) Borrow(ctx context.Context, userID, bookID int64) (*models.BorrowRecord, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	record := &models.BorrowRecord{
		UserID: userID,
		BookID: bookID,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}

	s.cache.Invalidate(ctx, userID)
	s.logger.Info("borrow_created",
		"borrow_id", record.ID,
		"user_id", userID,
		"book_id", bookID,
	)
	return record, nil
}

// ListByUser returns the user's borrows oldest first. Users without borrows,
// known or not, get an empty list.
func (s *borrowService) ListByUser(ctx context.Context, userID int64) ([]models.BorrowRecord, error) {
	records, version, ok := s.cache.Get(ctx, userID)
	if ok {
		return records, nil
	}

	// version was read before the store; a borrow landing in between makes Set a no-op
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, userID, version, records)
	return records, nil
}
