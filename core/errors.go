package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("course not found")
	ErrAlreadyExists       = errors.New("course already exists")
	ErrIO                  = errors.New("i/o failure")
	ErrInvalidRecordNumber = errors.New("invalid record number")
	ErrInvalidHours        = errors.New("credit hours must be greater than zero")
)

// StoreError is returned by every Store operation. It records which
// operation failed on which record number and unwraps to one of the
// sentinel errors above.
type StoreError struct {
	Op     string
	Number int64
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s course %d: %v", e.Op, e.Number, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func ioFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}
