package service

import "errors"

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTaken    = errors.New("username already in use")
	ErrUserNotFound     = errors.New("user not found")

	ErrTitleRequired = errors.New("title is required")
	ErrBookNotFound  = errors.New("book not found")

	// ErrInvalidReference is returned when the store rejects a borrow whose
	// user or book disappeared between the existence check and the insert.
	ErrInvalidReference = errors.New("user or book does not exist")
)
