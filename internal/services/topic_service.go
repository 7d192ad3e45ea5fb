// Package services – TopicService
//
// TopicService lists and creates topics and answers "does this topic exist"
// for article filtering. Positive existence answers are cached for a short
// TTL; topics are never deleted through the API, so a cached hit cannot go
// stale in a way callers would observe.
package services

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/newsroom-api/internal/domain"
	"github.com/tbourn/newsroom-api/internal/failure"
	"github.com/tbourn/newsroom-api/internal/repo"
)

// DefaultTopicCacheTTL is used when NewTopicService is given a non-positive TTL.
const DefaultTopicCacheTTL = time.Minute

// TopicService implements topic use-cases.
type TopicService struct {
	DB    *gorm.DB
	known *ttlcache.Cache[string, struct{}]
}

// NewTopicService constructs a TopicService with an existence cache of the
// given TTL.
func NewTopicService(db *gorm.DB, ttl time.Duration) *TopicService {
	if ttl <= 0 {
		ttl = DefaultTopicCacheTTL
	}
	return &TopicService{
		DB: db,
		known: ttlcache.New[string, struct{}](
			ttlcache.WithTTL[string, struct{}](ttl),
			ttlcache.WithDisableTouchOnHit[string, struct{}](),
		),
	}
}

// List returns all topics.
func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	ctx, span := otel.Tracer("services/TopicService").Start(ctx, "List")
	defer span.End()

	return repo.ListTopics(ctx, s.DB)
}

// Ensure returns NotFound(topic, slug) unless slug names a stored topic.
func (s *TopicService) Ensure(ctx context.Context, slug string) error {
	ctx, span := otel.Tracer("services/TopicService").Start(ctx, "Ensure",
		trace.WithAttributes(attribute.String("topic.slug", slug)),
	)
	defer span.End()

	if s.known != nil && s.known.Get(slug) != nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return nil
	}
	ok, err := repo.TopicExists(ctx, s.DB, slug)
	if err != nil {
		return err
	}
	if !ok {
		return failure.NotFound(failure.Topic, slug)
	}
	s.remember(slug)
	return nil
}

// Create stores a new topic. An empty slug is Malformed; a duplicate slug is
// a Conflict.
func (s *TopicService) Create(ctx context.Context, slug, description *string) (*domain.Topic, error) {
	ctx, span := otel.Tracer("services/TopicService").Start(ctx, "Create")
	defer span.End()

	if err := failure.NonEmpty(failure.NamedValue{Name: "slug", Value: slug}); err != nil {
		return nil, err
	}
	t, err := repo.InsertTopic(ctx, s.DB, slug, description)
	if err != nil {
		key := ""
		if slug != nil {
			key = *slug
		}
		return nil, orConflict(err, failure.Topic, key)
	}
	s.remember(t.Slug)
	return t, nil
}

func (s *TopicService) remember(slug string) {
	if s.known != nil {
		s.known.Set(slug, struct{}{}, ttlcache.DefaultTTL)
	}
}
