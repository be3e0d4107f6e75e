package utils

import "errors"

var (
	ErrFeedbackNotFound   = errors.New("feedback not found")
	ErrNotFeedbackOwner   = errors.New("not the feedback owner")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
)
