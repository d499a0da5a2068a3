package store

import (
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// Error kinds returned by every Store operation. Match them with errors.Is.
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorageCorrupt     = errors.New("storage corrupt")
)

// StorageError carries the kind of failure next to the driver error.
type StorageError struct {
	Kind error
	Err  error
}

func (e *StorageError) Error() string {
	return e.Kind.Error() + ": " + e.Err.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *StorageError) Unwrap() []error { return []error{e.Kind, e.Err} }

// classify maps a driver error onto an error kind and annotates it with op.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(&StorageError{Kind: kindOf(err), Err: err}, op)
}

func kindOf(err error) error {
	var se sqlite3.Error
	if errors.As(err, &se) {
		switch se.Code {
		case sqlite3.ErrCorrupt, sqlite3.ErrNotADB, sqlite3.ErrFormat:
			return ErrStorageCorrupt
		}
		return ErrStorageUnavailable
	}
	// database/sql reports undecodable column values this way
	if strings.Contains(err.Error(), "Scan error") {
		return ErrStorageCorrupt
	}
	return ErrStorageUnavailable
}
