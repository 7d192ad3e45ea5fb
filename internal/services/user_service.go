package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/newsroom-api/internal/domain"
	"github.com/tbourn/newsroom-api/internal/failure"
	"github.com/tbourn/newsroom-api/internal/repo"
)

// UserService implements user use-cases.
type UserService struct {
	DB *gorm.DB
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "List")
	defer span.End()

	return repo.ListUsers(ctx, s.DB)
}

// Get returns the user or NotFound(user, username).
func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "Get",
		trace.WithAttributes(attribute.String("user.username", username)),
	)
	defer span.End()

	u, err := repo.GetUser(ctx, s.DB, username)
	if err != nil {
		return nil, orNotFound(err, failure.NotFound(failure.User, username))
	}
	return u, nil
}

// Create registers a user. Empty username or name is Malformed; a taken
// username is a Conflict.
func (s *UserService) Create(ctx context.Context, username, name, avatarURL *string) (*domain.User, error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "Create")
	defer span.End()

	if err := failure.NonEmpty(
		failure.NamedValue{Name: "username", Value: username},
		failure.NamedValue{Name: "name", Value: name},
	); err != nil {
		return nil, err
	}
	u, err := repo.InsertUser(ctx, s.DB, username, name, avatarURL)
	if err != nil {
		key := ""
		if username != nil {
			key = *username
		}
		return nil, orConflict(err, failure.User, key)
	}
	return u, nil
}
