// Package services – ArticleService
//
// ArticleService owns the article use-cases. Mutations run as a sequence of
// guards followed by one action inside a single transaction, so a request
// either fails at the first guard that rejects it or applies completely.
// Listing is read-only and fans its independent queries out concurrently.
//
// Observability: all public methods are OpenTelemetry-instrumented.
package services

import (
	"context"
	"encoding/json"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/tbourn/newsroom-api/internal/domain"
	"github.com/tbourn/newsroom-api/internal/failure"
	"github.com/tbourn/newsroom-api/internal/repo"
)

// ArticleFilter is a validated list request.
type ArticleFilter struct {
	Topic  string
	SortBy string
	Desc   bool
	Limit  int
	Page   int
}

// ArticleService implements article use-cases.
type ArticleService struct {
	DB     *gorm.DB
	Topics *TopicService
}

// List returns one page of article summaries and the number of articles that
// match the topic filter. When a topic is given but does not exist, its
// NotFound is returned regardless of how the other queries fared.
func (s *ArticleService) List(ctx context.Context, f ArticleFilter) ([]domain.ArticleSummary, int64, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("article.topic", f.Topic),
			attribute.String("sort_by", f.SortBy),
			attribute.Bool("desc", f.Desc),
			attribute.Int("limit", f.Limit),
			attribute.Int("page", f.Page),
		),
	)
	defer span.End()

	if f.SortBy == "" {
		f.SortBy = failure.DefaultSortBy
	}
	if f.Limit <= 0 {
		f.Limit = failure.DefaultLimit
	}
	if f.Page < 1 {
		f.Page = 1
	}

	var (
		g        errgroup.Group
		items    []domain.ArticleSummary
		total    int64
		topicErr error
	)
	g.Go(func() error {
		var err error
		items, err = repo.ListArticles(ctx, s.DB, repo.ArticleQuery{
			Topic:  f.Topic,
			SortBy: f.SortBy,
			Desc:   f.Desc,
			Limit:  f.Limit,
			Offset: failure.Offset(f.Limit, f.Page),
		})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = repo.CountArticles(ctx, s.DB, f.Topic)
		return err
	})
	if f.Topic != "" {
		g.Go(func() error {
			topicErr = s.ensureTopic(ctx, f.Topic)
			return topicErr
		})
	}
	err := g.Wait()
	if topicErr != nil {
		return nil, 0, topicErr
	}
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *ArticleService) ensureTopic(ctx context.Context, slug string) error {
	if s.Topics != nil {
		return s.Topics.Ensure(ctx, slug)
	}
	ok, err := repo.TopicExists(ctx, s.DB, slug)
	if err != nil {
		return err
	}
	if !ok {
		return failure.NotFound(failure.Topic, slug)
	}
	return nil
}

// Get returns a single article with its comment_count.
func (s *ArticleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Get",
		trace.WithAttributes(attribute.Int64("article.id", id)),
	)
	defer span.End()

	a, err := repo.GetArticle(ctx, s.DB, id)
	if err != nil {
		return nil, orNotFound(err, failure.NotFound(failure.Article, strconv.FormatInt(id, 10)))
	}
	return a, nil
}

// Create validates the non-empty title and body, then inserts. Missing
// fields and unknown references are reported by the store.
func (s *ArticleService) Create(ctx context.Context, in repo.NewArticle) (*domain.Article, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Create")
	defer span.End()

	if err := failure.NonEmpty(
		failure.NamedValue{Name: "title", Value: in.Title},
		failure.NamedValue{Name: "body", Value: in.Body},
	); err != nil {
		return nil, err
	}

	var out *domain.Article
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := repo.InsertArticle(ctx, tx, in)
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("article.id", out.ArticleID))
	return out, nil
}

// Vote applies inc_votes to an article. The article's existence is checked
// before the delta is validated, so a missing article wins over a malformed
// delta. A missing or null delta returns the article unchanged.
func (s *ArticleService) Vote(ctx context.Context, id int64, incVotes json.RawMessage) (*domain.Article, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Vote",
		trace.WithAttributes(attribute.Int64("article.id", id)),
	)
	defer span.End()

	notFound := failure.NotFound(failure.Article, strconv.FormatInt(id, 10))
	var out *domain.Article
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := repo.ArticleExists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound
		}
		delta, err := failure.VoteDelta(incVotes)
		if err != nil {
			return err
		}
		if delta != 0 {
			if err := repo.IncrementArticleVotes(ctx, tx, id, delta); err != nil {
				return orNotFound(err, notFound)
			}
		}
		a, err := repo.GetArticle(ctx, tx, id)
		if err != nil {
			return orNotFound(err, notFound)
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes an article and its comments. The delete itself is the
// existence check: no affected row means NotFound.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int64("article.id", id)),
	)
	defer span.End()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.DeleteArticle(ctx, tx, id)
	})
	return orNotFound(err, failure.NotFound(failure.Article, strconv.FormatInt(id, 10)))
}
