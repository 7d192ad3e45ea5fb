package repo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tbourn/newsroom-api/internal/domain"
	"github.com/tbourn/newsroom-api/internal/failure"
)

func TestListArticles_DefaultOrderAndCommentCount(t *testing.T) {
	db := newSeededDB(t)
	got, err := ListArticles(context.Background(), db, ArticleQuery{SortBy: "created_at", Desc: true, Limit: 20})
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(got) != 13 {
		t.Fatalf("expected 13 articles, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("not sorted desc at %d: %v > %v", i, got[i].CreatedAt, got[i-1].CreatedAt)
		}
	}
	counts := map[int64]int64{}
	for _, a := range got {
		counts[a.ArticleID] = a.CommentCount
	}
	if counts[1] != 11 || counts[5] != 2 || counts[2] != 0 {
		t.Fatalf("unexpected comment counts: %v", counts)
	}
}

func TestListArticles_TopicSortAndPaging(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()

	cats, err := ListArticles(ctx, db, ArticleQuery{Topic: "cats", SortBy: "created_at", Desc: true, Limit: 10})
	if err != nil || len(cats) != 1 || cats[0].ArticleID != 5 {
		t.Fatalf("cats filter: %+v %v", cats, err)
	}

	asc, err := ListArticles(ctx, db, ArticleQuery{SortBy: "article_id", Desc: false, Limit: 5, Offset: 10})
	if err != nil {
		t.Fatalf("ListArticles asc: %v", err)
	}
	if len(asc) != 3 || asc[0].ArticleID != 11 || asc[2].ArticleID != 13 {
		t.Fatalf("page 3 of 5 ascending by id: %+v", asc)
	}

	// 12 and 13 share created_at; the tie-break follows the sort direction.
	desc, err := ListArticles(ctx, db, ArticleQuery{SortBy: "created_at", Desc: true, Limit: 13})
	if err != nil {
		t.Fatalf("ListArticles desc: %v", err)
	}
	var pos12, pos13 int
	for i, a := range desc {
		switch a.ArticleID {
		case 12:
			pos12 = i
		case 13:
			pos13 = i
		}
	}
	if pos13 > pos12 {
		t.Fatalf("expected article 13 before 12 on descending tie, got %d/%d", pos13, pos12)
	}
}

func TestCountArticles(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()
	for topic, want := range map[string]int64{"": 13, "mitch": 12, "cats": 1, "paper": 0} {
		got, err := CountArticles(ctx, db, topic)
		if err != nil || got != want {
			t.Fatalf("CountArticles(%q) = %d, %v; want %d", topic, got, err, want)
		}
	}
}

func TestGetArticle_AndExists(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()

	a, err := GetArticle(ctx, db, 1)
	if err != nil {
		t.Fatalf("GetArticle: %v", err)
	}
	if a.Votes != 100 || a.CommentCount != 11 || a.Body == "" || a.Author != "butter_bridge" {
		t.Fatalf("unexpected article: %+v", a)
	}
	if _, err := GetArticle(ctx, db, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if ok, _ := ArticleExists(ctx, db, 13); !ok {
		t.Fatalf("article 13 should exist")
	}
	if ok, _ := ArticleExists(ctx, db, 14); ok {
		t.Fatalf("article 14 should not exist")
	}
}

func TestInsertArticle_DefaultsAndReadBack(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()

	a, err := InsertArticle(ctx, db, NewArticle{
		Author: strp("lurker"),
		Title:  strp("Cats and paper"),
		Body:   strp("An uneasy alliance"),
		Topic:  strp("paper"),
	})
	if err != nil {
		t.Fatalf("InsertArticle: %v", err)
	}
	if a.ArticleID != 14 || a.Votes != 0 || a.CommentCount != 0 {
		t.Fatalf("unexpected article: %+v", a)
	}
	if a.ArticleImgURL != domain.DefaultArticleImgURL {
		t.Fatalf("expected default image, got %q", a.ArticleImgURL)
	}
	if a.CreatedAt.IsZero() {
		t.Fatalf("created_at not set")
	}

	b, err := InsertArticle(ctx, db, NewArticle{
		Author: strp("lurker"), Title: strp("t"), Body: strp("b"), Topic: strp("cats"),
		ArticleImgURL: strp("https://example.com/x.png"),
	})
	if err != nil || b.ArticleImgURL != "https://example.com/x.png" {
		t.Fatalf("explicit image: %+v %v", b, err)
	}
}

func TestInsertArticle_ConstraintFailures(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()

	_, err := InsertArticle(ctx, db, NewArticle{Author: strp("lurker"), Body: strp("b"), Topic: strp("cats")})
	if f, ok := failure.As(err); !ok || f.Code != failure.NotNullViolation || f.Table != "articles" {
		t.Fatalf("missing title: %v", err)
	}

	_, err = InsertArticle(ctx, db, NewArticle{Author: strp("lurker"), Title: strp("t"), Body: strp("b"), Topic: strp("ghostwriter-authors")})
	f, ok := failure.As(err)
	if !ok || f.Code != failure.ForeignKeyViolation || f.Column != "topic" || !strings.Contains(f.Detail, "(topic)=(ghostwriter-authors)") {
		t.Fatalf("unknown topic: %v", err)
	}

	_, err = InsertArticle(ctx, db, NewArticle{Author: strp("nobody"), Title: strp("t"), Body: strp("b"), Topic: strp("dogs")})
	f, ok = failure.As(err)
	if !ok || f.Code != failure.ForeignKeyViolation || f.Column != "author" || !strings.Contains(f.Detail, "(author)=(nobody)") {
		t.Fatalf("unknown author should be reported first: %v", err)
	}

	if n, _ := CountArticles(ctx, db, ""); n != 13 {
		t.Fatalf("failed inserts must not persist rows, count=%d", n)
	}
}

func TestIncrementArticleVotes(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()

	if err := IncrementArticleVotes(ctx, db, 1, -30); err != nil {
		t.Fatalf("IncrementArticleVotes: %v", err)
	}
	if err := IncrementArticleVotes(ctx, db, 1, 5); err != nil {
		t.Fatalf("IncrementArticleVotes: %v", err)
	}
	a, _ := GetArticle(ctx, db, 1)
	if a.Votes != 75 {
		t.Fatalf("expected 75 votes, got %d", a.Votes)
	}
	if err := IncrementArticleVotes(ctx, db, 404, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteArticle_RemovesComments(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()

	if err := DeleteArticle(ctx, db, 1); err != nil {
		t.Fatalf("DeleteArticle: %v", err)
	}
	if _, err := GetArticle(ctx, db, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("article should be gone, got %v", err)
	}
	var n int64
	db.Model(&domain.Comment{}).Where("article_id = ?", 1).Count(&n)
	if n != 0 {
		t.Fatalf("expected comments removed, %d remain", n)
	}
	if err := DeleteArticle(ctx, db, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
}
