package repository

import (
	"context"
	"sync"
	"time"

	"libraryhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// MemoryStore keeps users, books and borrow records in process memory.
// It reports the same gorm errors as the PostgreSQL store (ErrRecordNotFound,
// ErrDuplicatedKey, ErrForeignKeyViolated) so services behave identically on both.
type MemoryStore struct {
	mu      sync.RWMutex
	users   []models.User
	books   []models.Book
	borrows []models.BorrowRecord

	lastUserID   int64
	lastBookID   int64
	lastBorrowID int64

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Users() UserRepository { return &memoryUserRepository{s: s} }
func (s *MemoryStore) Books() BookRepository { return &memoryBookRepository{s: s} }
func (s *MemoryStore) Borrows() BorrowRepository { return &memoryBorrowRepository{s: s} }

// Ping always succeeds; it mirrors the health check of the SQL store.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) findUser(id int64) (models.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *MemoryStore) findBook(id int64) (models.Book, bool) {
	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}
	return models.Book{}, false
}

type memoryUserRepository struct {
	s *MemoryStore
}

var _ UserRepository = (*memoryUserRepository)(nil)

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}

	r.s.lastUserID++
	user.ID = r.s.lastUserID
	user.CreatedAt = r.s.now()
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.findUser(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type memoryBookRepository struct {
	s *MemoryStore
}

var _ BookRepository = (*memoryBookRepository)(nil)

func (r *memoryBookRepository) Create(ctx context.Context, book *models.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastBookID++
	book.ID = r.s.lastBookID
	book.CreatedAt = r.s.now()
	r.s.books = append(r.s.books, *book)
	return nil
}

func (r *memoryBookRepository) FindByID(ctx context.Context, id int64) (*models.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.findBook(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

type memoryBorrowRepository struct {
	s *MemoryStore
}

var _ BorrowRepository = (*memoryBorrowRepository)(nil)

func (r *memoryBorrowRepository) Create(ctx context.Context, record *models.BorrowRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.findUser(record.UserID); !ok {
		return gorm.ErrForeignKeyViolated
	}
	if _, ok := r.s.findBook(record.BookID); !ok {
		return gorm.ErrForeignKeyViolated
	}

	r.s.lastBorrowID++
	record.ID = r.s.lastBorrowID
	record.BorrowedAt = r.s.now()
	r.s.borrows = append(r.s.borrows, *record)
	return nil
}

func (r *memoryBorrowRepository) ListByUser(ctx context.Context, userID int64) ([]models.BorrowRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	records := make([]models.BorrowRecord, 0)
	for _, rec := range r.s.borrows {
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}
	return records, nil
}
