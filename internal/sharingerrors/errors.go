package sharingerrors

import "errors"

// Store-level errors
var (
	ErrItemNotFound = errors.New("item not found")
	ErrNoActiveUser = errors.New("no active user")
)

// business logic errors
var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrEmptyPost          = errors.New("post text is empty")
	ErrInvalidItem        = errors.New("invalid item details")
	ErrInvalidRequest     = errors.New("invalid request details")
	ErrUnknownPage        = errors.New("unknown page")
)
