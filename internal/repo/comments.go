// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Comment
// model.
package repo

import (
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/newsroom-api/internal/domain"
)

// ListComments returns a page of an article's comments, newest first.
func ListComments(ctx context.Context, db *gorm.DB, articleID int64, offset, limit int) ([]domain.Comment, error) {
	out := []domain.Comment{}
	tx := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC, comment_id DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if offset > 0 {
		tx = tx.Offset(offset)
	}
	err := tx.Find(&out).Error
	return out, err
}

// GetComment fetches a comment by id, or ErrNotFound.
func GetComment(ctx context.Context, db *gorm.DB, id int64) (*domain.Comment, error) {
	var c domain.Comment
	if err := db.WithContext(ctx).Where("comment_id = ?", id).Take(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// NewComment is the insert payload. Nil fields are inserted as NULL.
type NewComment struct {
	ArticleID int64
	Author    *string
	Body      *string
}

type commentInsert struct {
	CommentID int64 `gorm:"primaryKey;autoIncrement"`
	Body      *string
	ArticleID int64
	Author    *string
	Votes     int64
	CreatedAt time.Time
}

func (commentInsert) TableName() string { return "comments" }

// InsertComment stores a new comment. Pass a transaction handle; references
// are verified before the insert, author first.
func InsertComment(ctx context.Context, db *gorm.DB, in NewComment) (*domain.Comment, error) {
	db = db.WithContext(ctx)

	if in.Author != nil && in.Body != nil {
		if err := missingReference(db, "comments",
			reference{column: "author", value: *in.Author, table: "users", keyField: "username"},
			reference{column: "article_id", value: strconv.FormatInt(in.ArticleID, 10), table: "articles", keyField: "article_id"},
		); err != nil {
			return nil, err
		}
	}

	row := commentInsert{
		Body:      in.Body,
		ArticleID: in.ArticleID,
		Author:    in.Author,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, translate(err)
	}
	return GetComment(ctx, db, row.CommentID)
}

// IncrementCommentVotes adds delta to the stored vote total.
func IncrementCommentVotes(ctx context.Context, db *gorm.DB, id, delta int64) error {
	res := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteComment removes a comment; zero affected rows yields ErrNotFound.
func DeleteComment(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Where("comment_id = ?", id).Delete(&domain.Comment{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
