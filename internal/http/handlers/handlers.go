// Package handlers exposes the REST endpoints for topics, articles, comments
// and users.
//
// Handlers are transport-thin: they validate path and query input, call
// application services, and translate results into HTTP responses. Every
// error goes through Classify; handlers never pick a status themselves.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/tbourn/newsroom-api/internal/domain"
	"github.com/tbourn/newsroom-api/internal/failure"
	"github.com/tbourn/newsroom-api/internal/repo"
	"github.com/tbourn/newsroom-api/internal/services"
)

//
// Service contracts (context-aware)
//

// TopicService lists and creates topics.
type TopicService interface {
	List(ctx context.Context) ([]domain.Topic, error)
	Create(ctx context.Context, slug, description *string) (*domain.Topic, error)
}

// ArticleService defines article operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ArticleService interface {
	// List returns a page of summaries and the filter's total count.
	List(ctx context.Context, f services.ArticleFilter) ([]domain.ArticleSummary, int64, error)
	Get(ctx context.Context, id int64) (*domain.Article, error)
	Create(ctx context.Context, in repo.NewArticle) (*domain.Article, error)
	// Vote checks existence before validating incVotes.
	Vote(ctx context.Context, id int64, incVotes json.RawMessage) (*domain.Article, error)
	Delete(ctx context.Context, id int64) error
}

// CommentService defines comment operations consumed by HTTP handlers.
type CommentService interface {
	ListForArticle(ctx context.Context, articleID int64, limit, page int) ([]domain.Comment, error)
	Create(ctx context.Context, articleID int64, username, body *string) (*domain.Comment, error)
	Vote(ctx context.Context, id int64, incVotes json.RawMessage) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// UserService lists, fetches and registers users.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, username, name, avatarURL *string) (*domain.User, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for all resources. It depends on abstract
// service interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	topics   TopicService
	articles ArticleService
	comments CommentService
	users    UserService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(topics TopicService, articles ArticleService, comments CommentService, users UserService) *Handlers {
	return &Handlers{topics: topics, articles: articles, comments: comments, users: users}
}

//
// DTOs
//

// CreateTopicRequest is the JSON payload for creating a topic.
type CreateTopicRequest struct {
	Slug        *string `json:"slug" example:"dogs"`
	Description *string `json:"description" example:"Not cats"`
}

// CreateArticleRequest is the JSON payload for posting an article. Absent
// fields are reported by the store as a NOT NULL violation.
type CreateArticleRequest struct {
	Author        *string `json:"author" example:"butter_bridge"`
	Title         *string `json:"title" example:"Living in the shadow of a great man"`
	Body          *string `json:"body" example:"I find this existence challenging"`
	Topic         *string `json:"topic" example:"mitch"`
	ArticleImgURL *string `json:"article_img_url,omitempty"`
}

// CreateCommentRequest is the JSON payload for posting a comment.
type CreateCommentRequest struct {
	Username *string `json:"username" example:"butter_bridge"`
	Body     *string `json:"body" example:"wow i love this article oh boy 10/10"`
}

// VoteRequest carries a relative vote change. inc_votes is kept raw so that
// its validation can run after the existence check.
type VoteRequest struct {
	IncVotes json.RawMessage `json:"inc_votes" swaggertype:"integer" example:"1"`
}

// CreateUserRequest is the JSON payload for registering a user.
type CreateUserRequest struct {
	Username  *string `json:"username" example:"hollythedev"`
	Name      *string `json:"name" example:"Holly"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Envelopes.
type (
	TopicsResponse struct {
		Topics []domain.Topic `json:"topics"`
	}
	TopicResponse struct {
		Topic *domain.Topic `json:"topic"`
	}
	ArticlesResponse struct {
		Articles   []domain.ArticleSummary `json:"articles"`
		TotalCount int64                   `json:"total_count"`
	}
	ArticleResponse struct {
		Article *domain.Article `json:"article"`
	}
	CommentsResponse struct {
		Comments []domain.Comment `json:"comments"`
	}
	CommentResponse struct {
		Comment *domain.Comment `json:"comment"`
	}
	UsersResponse struct {
		Users []domain.User `json:"users"`
	}
	UserResponse struct {
		User *domain.User `json:"user"`
	}
)

//
// Helpers
//

// bindBody decodes an optional JSON object body into dst. An empty body
// leaves dst untouched; anything that is not a JSON object matching dst is
// Malformed(json).
func bindBody(c *gin.Context, dst any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return failure.Malformed(failure.FieldJSON, "unreadable body")
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] != '{' {
		return failure.Malformed(failure.FieldJSON, "must be an object")
	}
	if err := binding.JSON.BindBody(raw, dst); err != nil {
		return failure.Malformed(failure.FieldJSON, err.Error())
	}
	return nil
}

// pathID validates a numeric path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	return failure.ID(c.Param(name))
}

// orEmpty keeps list responses as [] rather than null.
func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
