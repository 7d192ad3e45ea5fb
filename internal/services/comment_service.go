// Package services – CommentService
//
// CommentService owns the comment use-cases. Operations scoped to an article
// guard the article first and report a missing one as a parent NotFound.
package services

import (
	"context"
	"encoding/json"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/newsroom-api/internal/domain"
	"github.com/tbourn/newsroom-api/internal/failure"
	"github.com/tbourn/newsroom-api/internal/repo"
)

// CommentService implements comment use-cases.
type CommentService struct {
	DB *gorm.DB
}

// guardArticle returns ParentNotFound(article, id) unless the article exists.
func guardArticle(ctx context.Context, db *gorm.DB, id int64) error {
	ok, err := repo.ArticleExists(ctx, db, id)
	if err != nil {
		return err
	}
	if !ok {
		return failure.ParentNotFound(failure.Article, strconv.FormatInt(id, 10))
	}
	return nil
}

// ListForArticle returns one page of an article's comments, newest first.
func (s *CommentService) ListForArticle(ctx context.Context, articleID int64, limit, page int) ([]domain.Comment, error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "ListForArticle",
		trace.WithAttributes(
			attribute.Int64("article.id", articleID),
			attribute.Int("limit", limit),
			attribute.Int("page", page),
		),
	)
	defer span.End()

	if limit <= 0 {
		limit = failure.DefaultLimit
	}
	if page < 1 {
		page = 1
	}

	var out []domain.Comment
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := guardArticle(ctx, tx, articleID); err != nil {
			return err
		}
		items, err := repo.ListComments(ctx, tx, articleID, failure.Offset(limit, page), limit)
		if err != nil {
			return err
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a comment on an article. A missing article is reported before
// anything about the payload; missing fields and an unknown author are
// reported by the store.
func (s *CommentService) Create(ctx context.Context, articleID int64, username, body *string) (*domain.Comment, error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "Create",
		trace.WithAttributes(attribute.Int64("article.id", articleID)),
	)
	defer span.End()

	var out *domain.Comment
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := guardArticle(ctx, tx, articleID); err != nil {
			return err
		}
		c, err := repo.InsertComment(ctx, tx, repo.NewComment{ArticleID: articleID, Author: username, Body: body})
		if err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Vote applies inc_votes to a comment: existence first, then the delta.
func (s *CommentService) Vote(ctx context.Context, id int64, incVotes json.RawMessage) (*domain.Comment, error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "Vote",
		trace.WithAttributes(attribute.Int64("comment.id", id)),
	)
	defer span.End()

	notFound := failure.NotFound(failure.Comment, strconv.FormatInt(id, 10))
	var out *domain.Comment
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetComment(ctx, tx, id); err != nil {
			return orNotFound(err, notFound)
		}
		delta, err := failure.VoteDelta(incVotes)
		if err != nil {
			return err
		}
		if delta != 0 {
			if err := repo.IncrementCommentVotes(ctx, tx, id, delta); err != nil {
				return orNotFound(err, notFound)
			}
		}
		c, err := repo.GetComment(ctx, tx, id)
		if err != nil {
			return orNotFound(err, notFound)
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a comment; no affected row means NotFound.
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int64("comment.id", id)),
	)
	defer span.End()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.DeleteComment(ctx, tx, id)
	})
	return orNotFound(err, failure.NotFound(failure.Comment, strconv.FormatInt(id, 10)))
}
