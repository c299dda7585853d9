package dto

import (
	"time"

	"libraryhub/internal/microservices/http-api/models"
)

// CreateBookRequest: parameters for POST /books/. Only the title must be non-empty.
type CreateBookRequest struct {
	Title       string `form:"title" json:"title" binding:"required"`
	FirstAuthor string `form:"firstauthor" json:"firstauthor"`
	ISBN        string `form:"isbn" json:"isbn"`
}

type BookResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	FirstAuthor string    `json:"firstauthor"`
	ISBN        string    `json:"isbn"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromBookModel(b models.Book) BookResponse {
	return BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		FirstAuthor: b.FirstAuthor,
		ISBN:        b.ISBN,
		CreatedAt:   b.CreatedAt,
	}
}
