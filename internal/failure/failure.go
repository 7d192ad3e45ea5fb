// Package failure defines the single error vocabulary shared by the store,
// the services, and the HTTP classification stage.
//
// A Failure is a tagged union: exactly one Kind is active per value and only
// the fields belonging to that kind are meaningful.
//
//   - KindNotFound:   Resource + Key (e.g. "article", "50")
//   - KindMalformed:  Field + Reason (e.g. "inc_votes", "must be an integer")
//   - KindConflict:   Resource + Key (e.g. "topic", "cats")
//   - KindConstraint: Code + Table + Column + Detail as reported by the store
//
// Failures never carry HTTP statuses or user-facing messages; that mapping is
// owned by the classification table in the handlers package.
package failure

import (
	"errors"
	"fmt"
)

// Kind tags the active variant of a Failure.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindMalformed
	KindConflict
	KindConstraint
)

// String returns a short lowercase name, used for logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindMalformed:
		return "malformed"
	case KindConflict:
		return "conflict"
	case KindConstraint:
		return "constraint"
	default:
		return "unknown"
	}
}

// Code is a machine-readable store constraint code. Values follow Postgres
// SQLSTATE so that both supported drivers report the same vocabulary.
type Code string

const (
	NotNullViolation          Code = "23502"
	ForeignKeyViolation       Code = "23503"
	UniqueViolation           Code = "23505"
	InvalidTextRepresentation Code = "22P02"
)

// Resource names.
const (
	Topic   = "topic"
	Article = "article"
	Comment = "comment"
	User    = "user"
)

// Malformed field names with dedicated messages.
const (
	FieldID         = "id"
	FieldPagination = "pagination"
	FieldSortBy     = "sort_by"
	FieldIncVotes   = "inc_votes"
	FieldJSON       = "json"
)

// Failure is the tagged union described in the package comment.
type Failure struct {
	Kind Kind

	// NotFound, Conflict
	Resource string
	Key      string
	// Parent marks a NotFound raised while guarding a child collection
	// (comments of an article) rather than fetching the resource itself.
	Parent bool

	// Malformed
	Field  string
	Reason string

	// Constraint. Column is the offending column when the store names it.
	Code   Code
	Table  string
	Column string
	Detail string

	cause error
}

func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	var s string
	switch f.Kind {
	case KindNotFound:
		s = fmt.Sprintf("%s %s not found", f.Resource, f.Key)
	case KindMalformed:
		s = fmt.Sprintf("malformed %s: %s", f.Field, f.Reason)
	case KindConflict:
		s = fmt.Sprintf("%s %s already exists", f.Resource, f.Key)
	case KindConstraint:
		s = fmt.Sprintf("constraint %s on %s: %s", f.Code, f.Table, f.Detail)
	default:
		s = "unknown failure"
	}
	if f.cause != nil {
		return s + ": " + f.cause.Error()
	}
	return s
}

// Unwrap exposes the underlying driver error, if any.
func (f *Failure) Unwrap() error { return f.cause }

// NotFound reports that resource identified by key does not exist.
func NotFound(resource, key string) *Failure {
	return &Failure{Kind: KindNotFound, Resource: resource, Key: key}
}

// ParentNotFound reports a missing resource that guards a child collection.
func ParentNotFound(resource, key string) *Failure {
	return &Failure{Kind: KindNotFound, Resource: resource, Key: key, Parent: true}
}

// Malformed reports an input value rejected by a validation rule.
func Malformed(field, reason string) *Failure {
	return &Failure{Kind: KindMalformed, Field: field, Reason: reason}
}

// Conflict reports that a resource with the same natural key already exists.
func Conflict(resource, key string) *Failure {
	return &Failure{Kind: KindConflict, Resource: resource, Key: key}
}

// Constraint wraps a store constraint violation.
func Constraint(code Code, table, column, detail string, cause error) *Failure {
	return &Failure{Kind: KindConstraint, Code: code, Table: table, Column: column, Detail: detail, cause: cause}
}

// As returns the Failure in err's chain, if any.
func As(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) && f != nil {
		return f, true
	}
	return nil, false
}

// IsNotFound reports whether err carries a NotFound failure for resource.
// An empty resource matches any NotFound.
func IsNotFound(err error, resource string) bool {
	f, ok := As(err)
	return ok && f.Kind == KindNotFound && (resource == "" || f.Resource == resource)
}
