// Package services defines the business logic for topics, users, articles and
// comments. This file centralizes the translation of repository outcomes into
// failure values so that every service reports missing rows and duplicate keys
// the same way.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/newsroom-api/internal/failure"
	"github.com/tbourn/newsroom-api/internal/repo"
)

// isNotFound treats repo-level not found sentinels as "not found" in a
// driver-agnostic way.
func isNotFound(err error) bool {
	if errors.Is(err, repo.ErrNotFound) {
		return true
	}
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// orNotFound replaces a repository not-found error with nf.
func orNotFound(err error, nf *failure.Failure) error {
	if err != nil && isNotFound(err) {
		return nf
	}
	return err
}

// orConflict replaces a unique violation with a Conflict for resource/key.
func orConflict(err error, resource, key string) error {
	if f, ok := failure.As(err); ok && f.Kind == failure.KindConstraint && f.Code == failure.UniqueViolation {
		return failure.Conflict(resource, key)
	}
	return err
}
