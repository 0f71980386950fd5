package errors

import (
	"errors"
	"fmt"
)

// FetchError is returned when the primary catalog query for a batch fails.
// It always aborts the crawl.
type FetchError struct {
	Offset int
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch batch at offset %d: %v", e.Offset, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError wraps err as a FetchError for the batch at offset.
func NewFetchError(offset int, err error) *FetchError {
	return &FetchError{Offset: offset, Err: err}
}

// IsFetchError reports whether err is a FetchError (even when wrapped).
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// LookupError is returned when every developer lookup chain of a record failed.
type LookupError struct {
	GameID int64
	Err    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("developer lookup for game %d: %v", e.GameID, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// NewLookupError wraps err as a LookupError for the given game.
func NewLookupError(gameID int64, err error) *LookupError {
	return &LookupError{GameID: gameID, Err: err}
}

// IsLookupError reports whether err is a LookupError (even when wrapped).
func IsLookupError(err error) bool {
	var lookupErr *LookupError
	return errors.As(err, &lookupErr)
}

// ResolveError marks a resolver failure that was downgraded to an absent field.
type ResolveError struct {
	Resolver string
	Err      error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.Resolver, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// NewResolveError wraps err with the name of the resolver that produced it.
func NewResolveError(resolver string, err error) *ResolveError {
	return &ResolveError{Resolver: resolver, Err: err}
}

// IsResolveError reports whether err is a ResolveError (even when wrapped).
func IsResolveError(err error) bool {
	var resolveErr *ResolveError
	return errors.As(err, &resolveErr)
}

// PersistenceError is returned by the sink when an output could not be written.
// The crawl logs it and keeps going.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err with the output path that failed.
func NewPersistenceError(path string, err error) *PersistenceError {
	return &PersistenceError{Path: path, Err: err}
}

// IsPersistenceError reports whether err is a PersistenceError (even when wrapped).
func IsPersistenceError(err error) bool {
	var persistErr *PersistenceError
	return errors.As(err, &persistErr)
}
