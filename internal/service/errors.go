package service

import (
	"errors"
	"fmt"

	"github.com/pliu/seniorsched/internal/store"
)

// Error classes returned by the services. Callers classify with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("already exists")
	ErrAuth       = errors.New("invalid credentials")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage failure")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

func conflict(what string) error {
	return fmt.Errorf("%w: %s", ErrConflict, what)
}

// referenceErr reports a dangling foreign key as ref not being found and
// classifies anything else like storageErr.
func referenceErr(ref, what string, err error) error {
	if errors.Is(err, store.ErrBadReference) {
		return notFound(ref)
	}
	return storageErr(what, err)
}

// storageErr classifies an error coming back from the store.
func storageErr(what string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return notFound(what)
	case errors.Is(err, store.ErrConflict):
		return conflict(what)
	default:
		return fmt.Errorf("%w: %s: %w", ErrStorage, what, err)
	}
}
