// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Article
// model.
//
// Functions:
//
//   - ListArticles(ctx, db, q)        -> []domain.ArticleSummary, error
//   - CountArticles(ctx, db, topic)   -> int64, error
//   - GetArticle(ctx, db, id)         -> *domain.Article, error (ErrNotFound)
//   - ArticleExists(ctx, db, id)      -> bool, error
//   - InsertArticle(ctx, db, in)      -> *domain.Article, error
//   - IncrementArticleVotes(ctx, db, id, delta) -> error (ErrNotFound)
//   - DeleteArticle(ctx, db, id)      -> error (ErrNotFound)
//
// comment_count is always computed with a correlated subquery; it is never
// stored. Votes are only ever changed relative to the stored value.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/newsroom-api/internal/domain"
)

const commentCountExpr = "(SELECT COUNT(*) FROM comments WHERE comments.article_id = articles.article_id) AS comment_count"

const summaryColumns = "articles.article_id, articles.title, articles.topic, articles.author, " +
	"articles.created_at, articles.votes, articles.article_img_url, " + commentCountExpr

// ArticleQuery selects a page of articles. SortBy must already have passed
// the sort allow-list; it is interpolated as a column name.
type ArticleQuery struct {
	Topic  string
	SortBy string
	Desc   bool
	Limit  int
	Offset int
}

// ListArticles returns one page of article summaries. Ties on the sort
// column are broken by article_id in the same direction.
func ListArticles(ctx context.Context, db *gorm.DB, q ArticleQuery) ([]domain.ArticleSummary, error) {
	out := []domain.ArticleSummary{}
	tx := db.WithContext(ctx).Table("articles").Select(summaryColumns)
	if q.Topic != "" {
		tx = tx.Where("articles.topic = ?", q.Topic)
	}
	tx = tx.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Table: "articles", Name: q.SortBy}, Desc: q.Desc},
		{Column: clause.Column{Table: "articles", Name: "article_id"}, Desc: q.Desc},
	}})
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	err := tx.Scan(&out).Error
	return out, err
}

// CountArticles returns the number of articles matching topic, ignoring
// pagination. An empty topic counts everything.
func CountArticles(ctx context.Context, db *gorm.DB, topic string) (int64, error) {
	var total int64
	tx := db.WithContext(ctx).Model(&domain.Article{})
	if topic != "" {
		tx = tx.Where("topic = ?", topic)
	}
	err := tx.Count(&total).Error
	return total, err
}

// GetArticle fetches a single article with its comment_count.
func GetArticle(ctx context.Context, db *gorm.DB, id int64) (*domain.Article, error) {
	var a domain.Article
	err := db.WithContext(ctx).
		Table("articles").
		Select("articles.*, "+commentCountExpr).
		Where("articles.article_id = ?", id).
		Take(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ArticleExists reports whether an article with id is stored.
func ArticleExists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Article{}).Where("article_id = ?", id).Count(&n).Error
	return n > 0, err
}

// NewArticle is the insert payload. Nil fields are inserted as NULL so the
// store's NOT NULL constraints report what is missing.
type NewArticle struct {
	Author        *string
	Title         *string
	Body          *string
	Topic         *string
	ArticleImgURL *string
}

type articleInsert struct {
	ArticleID     int64 `gorm:"primaryKey;autoIncrement"`
	Title         *string
	Topic         *string
	Author        *string
	Body          *string
	CreatedAt     time.Time
	Votes         int64
	ArticleImgURL string
}

func (articleInsert) TableName() string { return "articles" }

// InsertArticle stores a new article and returns it as read back from the
// store. Pass a transaction handle: the author and topic references are
// verified before the insert so a missing reference is reported with the
// offending column on every driver. Author is checked first.
func InsertArticle(ctx context.Context, db *gorm.DB, in NewArticle) (*domain.Article, error) {
	db = db.WithContext(ctx)

	if in.Author != nil && in.Title != nil && in.Body != nil && in.Topic != nil {
		if err := missingReference(db, "articles",
			reference{column: "author", value: *in.Author, table: "users", keyField: "username"},
			reference{column: "topic", value: *in.Topic, table: "topics", keyField: "slug"},
		); err != nil {
			return nil, err
		}
	}

	row := articleInsert{
		Title:         in.Title,
		Topic:         in.Topic,
		Author:        in.Author,
		Body:          in.Body,
		CreatedAt:     time.Now().UTC(),
		ArticleImgURL: domain.DefaultArticleImgURL,
	}
	if in.ArticleImgURL != nil && *in.ArticleImgURL != "" {
		row.ArticleImgURL = *in.ArticleImgURL
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, translate(err)
	}
	return GetArticle(ctx, db, row.ArticleID)
}

// IncrementArticleVotes adds delta to the stored vote total.
func IncrementArticleVotes(ctx context.Context, db *gorm.DB, id, delta int64) error {
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteArticle removes an article and its comments. Run it inside a
// transaction; zero affected article rows yields ErrNotFound.
func DeleteArticle(ctx context.Context, db *gorm.DB, id int64) error {
	db = db.WithContext(ctx)
	if err := db.Where("article_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
		return translate(err)
	}
	res := db.Where("article_id = ?", id).Delete(&domain.Article{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
