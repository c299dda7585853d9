package dto

import (
	"time"

	"libraryhub/internal/microservices/http-api/models"
)

// CreateBorrowRequest: payload to borrow a book for a user
type CreateBorrowRequest struct {
	UserID int64 `form:"user_id" json:"user_id" binding:"required"`
	BookID int64 `form:"book_id" json:"book_id" binding:"required"`
}

// BorrowResponse: one entry of a user's borrow list
type BorrowResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	BookID     int64     `json:"book_id"`
	BorrowedAt time.Time `json:"borrowed_at"`
}

func FromBorrowModel(r models.BorrowRecord) BorrowResponse {
	return BorrowResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		BookID:     r.BookID,
		BorrowedAt: r.BorrowedAt,
	}
}

// FromBorrowModels never returns nil so an empty list encodes as [].
func FromBorrowModels(records []models.BorrowRecord) []BorrowResponse {
	items := make([]BorrowResponse, 0, len(records))
	for _, r := range records {
		items = append(items, FromBorrowModel(r))
	}
	return items
}
