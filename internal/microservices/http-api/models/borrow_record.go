package models

import "time"

// BorrowRecord links a user to a book at the time of a borrow.
// Nothing limits how many records point at the same book.
type BorrowRecord struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"not null;index" json:"user_id"`
	BookID     int64     `gorm:"not null;index" json:"book_id"`
	BorrowedAt time.Time `gorm:"autoCreateTime" json:"borrowed_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	Book *Book `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (BorrowRecord) TableName() string {
	return "borrowlist"
}
