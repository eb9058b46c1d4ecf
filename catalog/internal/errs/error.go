package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrAlreadyLoaned      = errors.New("book is already loaned")
	ErrNotLoaned          = errors.New("book is not loaned")
	ErrLoanerName         = errors.New("loaner name is required")
	ErrBookName           = errors.New("book name is required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnsupportedFormat  = errors.New("unsupported file format")
	ErrForbidden          = errors.New("admin only")
	ErrEmptyPatch         = errors.New("nothing to update")
	ErrInvalidDate        = errors.New("invalid date")
	ErrBadQuery           = errors.New("invalid query")
)
