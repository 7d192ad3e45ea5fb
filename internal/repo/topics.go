// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Topic and
// User models, both keyed by a natural string primary key.
//
// Functions follow the thin repository approach: no business logic, only
// persistence and query composition. Missing rows surface as ErrNotFound;
// constraint violations surface as *failure.Failure via translate.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/newsroom-api/internal/domain"
)

// topicInsert carries optional columns so an absent slug reaches the store
// as NULL and trips its NOT NULL constraint.
type topicInsert struct {
	Slug        *string
	Description string
}

func (topicInsert) TableName() string { return "topics" }

// ListTopics returns every topic ordered by slug.
func ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	out := []domain.Topic{}
	err := db.WithContext(ctx).Order("slug asc").Find(&out).Error
	return out, err
}

// TopicExists reports whether slug names a stored topic.
func TopicExists(ctx context.Context, db *gorm.DB, slug string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Topic{}).Where("slug = ?", slug).Count(&n).Error
	return n > 0, err
}

// InsertTopic stores a new topic. A nil description is stored as "".
func InsertTopic(ctx context.Context, db *gorm.DB, slug, description *string) (*domain.Topic, error) {
	row := topicInsert{Slug: slug}
	if description != nil {
		row.Description = *description
	}
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, translate(err)
	}
	return &domain.Topic{Slug: deref(slug), Description: row.Description}, nil
}

// userInsert mirrors topicInsert for users.
type userInsert struct {
	Username  *string
	Name      *string
	AvatarURL string
}

func (userInsert) TableName() string { return "users" }

// ListUsers returns every user ordered by username.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	out := []domain.User{}
	err := db.WithContext(ctx).Order("username asc").Find(&out).Error
	return out, err
}

// GetUser fetches a user by username, or ErrNotFound.
func GetUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("username = ?", username).Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// InsertUser stores a new user. A nil avatar URL is stored as "".
func InsertUser(ctx context.Context, db *gorm.DB, username, name, avatarURL *string) (*domain.User, error) {
	row := userInsert{Username: username, Name: name}
	if avatarURL != nil {
		row.AvatarURL = *avatarURL
	}
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, translate(err)
	}
	return &domain.User{Username: deref(username), Name: deref(name), AvatarURL: row.AvatarURL}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
