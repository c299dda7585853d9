package models

import "time"

type Book struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	FirstAuthor string    `gorm:"column:firstauthor" json:"firstauthor"`
	ISBN        string    `gorm:"column:isbn;index" json:"isbn"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}
