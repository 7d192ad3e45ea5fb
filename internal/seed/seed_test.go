package seed

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/newsroom-api/internal/domain"
	"github.com/tbourn/newsroom-api/internal/repo"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repo.OpenSQLite(filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func counts(t *testing.T, db *gorm.DB) [4]int64 {
	t.Helper()
	var out [4]int64
	for i, m := range []any{&domain.Topic{}, &domain.User{}, &domain.Article{}, &domain.Comment{}} {
		if err := db.Model(m).Count(&out[i]).Error; err != nil {
			t.Fatalf("count %T: %v", m, err)
		}
	}
	return out
}

func TestLoad_Fixtures(t *testing.T) {
	f, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Topics) != 3 || len(f.Users) != 4 || len(f.Articles) != 13 || len(f.Comments) != 18 {
		t.Fatalf("fixture sizes: topics=%d users=%d articles=%d comments=%d",
			len(f.Topics), len(f.Users), len(f.Articles), len(f.Comments))
	}
	if f.Articles[0].CreatedAt.IsZero() || f.Articles[0].Votes != 100 {
		t.Fatalf("article 1 decoded badly: %+v", f.Articles[0])
	}
}

func TestSeed_ReplacesContentsAndIsRepeatable(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := Seed(ctx, db); err != nil {
			t.Fatalf("Seed #%d: %v", i+1, err)
		}
		if got := counts(t, db); got != [4]int64{3, 4, 13, 18} {
			t.Fatalf("Seed #%d counts = %v", i+1, got)
		}
	}

	a, err := repo.GetArticle(ctx, db, 1)
	if err != nil {
		t.Fatalf("GetArticle: %v", err)
	}
	if a.CommentCount != 11 || !a.CreatedAt.Equal(time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)) {
		t.Fatalf("article 1 = %+v", a)
	}
}

func TestApply_CustomFixturesAndFailure(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	small := &Fixtures{
		Topics: []topicRow{{Slug: "cats", Description: "Not dogs"}},
		Users:  []userRow{{Username: "lurker", Name: "do_nothing"}},
	}
	if err := Apply(ctx, db, small); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := counts(t, db); got != [4]int64{1, 1, 0, 0} {
		t.Fatalf("counts after Apply = %v", got)
	}

	// unknown author violates the foreign key; the whole set rolls back
	bad := &Fixtures{
		Topics:   []topicRow{{Slug: "paper"}},
		Articles: []articleRow{{ArticleID: 1, Title: "t", Topic: "paper", Author: "nobody", Body: "b", CreatedAt: time.Now()}},
	}
	if err := Apply(ctx, db, bad); err == nil {
		t.Fatalf("expected foreign key failure")
	}
	if got := counts(t, db); got != [4]int64{1, 1, 0, 0} {
		t.Fatalf("failed Apply must roll back, counts = %v", got)
	}
}
