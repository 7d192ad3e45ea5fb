// Package seed loads the bundled fixture set (topics, users, articles and
// comments) into a migrated database. It is used by the server when
// SEED_ON_START is enabled and by tests that need a known dataset.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/newsroom-api/internal/domain"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Fixtures is the decoded fixture set.
type Fixtures struct {
	Topics   []topicRow   `yaml:"topics"`
	Users    []userRow    `yaml:"users"`
	Articles []articleRow `yaml:"articles"`
	Comments []commentRow `yaml:"comments"`
}

type topicRow struct {
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

type userRow struct {
	Username  string `yaml:"username"`
	Name      string `yaml:"name"`
	AvatarURL string `yaml:"avatar_url"`
}

type articleRow struct {
	ArticleID     int64     `yaml:"article_id"`
	Title         string    `yaml:"title"`
	Topic         string    `yaml:"topic"`
	Author        string    `yaml:"author"`
	Body          string    `yaml:"body"`
	CreatedAt     time.Time `yaml:"created_at"`
	Votes         int64     `yaml:"votes"`
	ArticleImgURL string    `yaml:"article_img_url"`
}

type commentRow struct {
	CommentID int64     `yaml:"comment_id"`
	Body      string    `yaml:"body"`
	ArticleID int64     `yaml:"article_id"`
	Author    string    `yaml:"author"`
	Votes     int64     `yaml:"votes"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Load decodes the embedded fixture set.
func Load() (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		return nil, fmt.Errorf("seed: decode fixtures: %w", err)
	}
	return &f, nil
}

// Seed replaces all rows in the four tables with the embedded fixtures, in a
// single transaction. Identifiers are inserted explicitly; on Postgres the
// serial sequences are moved past them afterwards.
func Seed(ctx context.Context, db *gorm.DB) error {
	f, err := Load()
	if err != nil {
		return err
	}
	return Apply(ctx, db, f)
}

// Apply writes f in place of the current table contents.
func Apply(ctx context.Context, db *gorm.DB, f *Fixtures) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{&domain.Comment{}, &domain.Article{}, &domain.User{}, &domain.Topic{}} {
			if err := all.Delete(model).Error; err != nil {
				return fmt.Errorf("seed: clear %T: %w", model, err)
			}
		}

		topics := make([]domain.Topic, 0, len(f.Topics))
		for _, t := range f.Topics {
			topics = append(topics, domain.Topic{Slug: t.Slug, Description: t.Description})
		}
		users := make([]domain.User, 0, len(f.Users))
		for _, u := range f.Users {
			users = append(users, domain.User{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL})
		}
		articles := make([]domain.Article, 0, len(f.Articles))
		for _, a := range f.Articles {
			articles = append(articles, domain.Article{
				ArticleID:     a.ArticleID,
				Title:         a.Title,
				Topic:         a.Topic,
				Author:        a.Author,
				Body:          a.Body,
				CreatedAt:     a.CreatedAt.UTC(),
				Votes:         a.Votes,
				ArticleImgURL: a.ArticleImgURL,
			})
		}
		comments := make([]domain.Comment, 0, len(f.Comments))
		for _, c := range f.Comments {
			comments = append(comments, domain.Comment{
				CommentID: c.CommentID,
				Body:      c.Body,
				ArticleID: c.ArticleID,
				Author:    c.Author,
				Votes:     c.Votes,
				CreatedAt: c.CreatedAt.UTC(),
			})
		}

		for _, batch := range []struct {
			n    int
			rows any
		}{
			{len(topics), &topics},
			{len(users), &users},
			{len(articles), &articles},
			{len(comments), &comments},
		} {
			if batch.n == 0 {
				continue
			}
			if err := tx.Omit(clause.Associations).Create(batch.rows).Error; err != nil {
				return fmt.Errorf("seed: insert %T: %w", batch.rows, err)
			}
		}

		if tx.Dialector.Name() == "postgres" {
			for _, seq := range [][2]string{{"articles", "article_id"}, {"comments", "comment_id"}} {
				q := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', '%s'), COALESCE((SELECT MAX(%s) FROM %s), 0) + 1, false)",
					seq[0], seq[1], seq[1], seq[0])
				if err := tx.Exec(q).Error; err != nil {
					return fmt.Errorf("seed: reset %s sequence: %w", seq[0], err)
				}
			}
		}
		return nil
	})
}
