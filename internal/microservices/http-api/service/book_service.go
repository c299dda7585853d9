package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"libraryhub/internal/microservices/http-api/models"
	"libraryhub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

type BookService interface {
	Create(ctx context.Context, title, firstAuthor, isbn string) (*models.Book, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
}

type bookService struct {
	repo   repository.BookRepository
	logger *slog.Logger
}

func NewBookService(repo repository.BookRepository, logger *slog.Logger) BookService {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookService{repo: repo, logger: logger}
}

// Create stores a book as given. ISBN format and duplicates are not checked.
func (s *bookService) Create(ctx context.Context, title, firstAuthor, isbn string) (*models.Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	book := &models.Book{
		Title:       title,
		FirstAuthor: firstAuthor,
		ISBN:        isbn,
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	s.logger.Info("book_created", "book_id", book.ID, "isbn", book.ISBN)
	return book, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}
