package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tbourn/newsroom-api/internal/failure"
)

func TestClassify_Table(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"invalid id", failure.Malformed(failure.FieldID, "x"), 400, MsgInvalidID},
		{"pagination", failure.Malformed(failure.FieldPagination, "x"), 400, MsgInvalidPagination},
		{"sort_by", failure.Malformed(failure.FieldSortBy, "x"), 400, MsgInvalidSortBy},
		{"inc_votes", failure.Malformed(failure.FieldIncVotes, "x"), 400, MsgInvalidIncVotes},
		{"json", failure.Malformed(failure.FieldJSON, "x"), 400, MsgInvalidJSON},
		{"empty title", failure.Malformed("title", "x"), 400, MsgEmptyTitle},
		{"empty body", failure.Malformed("body", "x"), 400, MsgEmptyArticleBody},
		{"empty other", failure.Malformed("slug", "x"), 400, "Bad Request: slug cannot be an empty string"},

		{"article", failure.NotFound(failure.Article, "50"), 404, MsgArticleNotFound},
		{"article parent", failure.ParentNotFound(failure.Article, "50"), 404, "Couldn't find article 50"},
		{"comment", failure.NotFound(failure.Comment, "99"), 404, "Couldn't find comment 99"},
		{"topic", failure.NotFound(failure.Topic, "dogs"), 404, "Couldn't find topic: dogs in the database."},
		{"user", failure.NotFound(failure.User, "nobody"), 404, "nobody does not exist!"},

		{"topic conflict", failure.Conflict(failure.Topic, "cats"), 409, "Topic already exists in the database!"},
		{"user conflict", failure.Conflict(failure.User, "lurker"), 409, "User already exists in the database!"},

		{"not null comments", failure.Constraint(failure.NotNullViolation, "comments", "body", "comments.body", nil), 400, MsgInvalidComment},
		{"not null articles", failure.Constraint(failure.NotNullViolation, "articles", "title", "articles.title", nil), 400, MsgInvalidArticle},
		{"not null topics", failure.Constraint(failure.NotNullViolation, "topics", "slug", "topics.slug", nil), 400, "Bad Request: slug cannot be an empty string"},
		{"not null users", failure.Constraint(failure.NotNullViolation, "users", "name", "users.name", nil), 400, "Bad Request: name cannot be an empty string"},
		{"not null no column", failure.Constraint(failure.NotNullViolation, "users", "", "users", nil), 400, "users"},

		{"fk topic", failure.Constraint(failure.ForeignKeyViolation, "articles", "topic", `Key (topic)=(dogs) is not present in table "topics".`, nil), 404, MsgUnknownTopic},
		{"fk topic slug mentions author", failure.Constraint(failure.ForeignKeyViolation, "articles", "topic", `Key (topic)=(ghostwriter-authors) is not present in table "topics".`, nil), 404, MsgUnknownTopic},
		{"fk author", failure.Constraint(failure.ForeignKeyViolation, "comments", "author", `Key (author)=(nobody) is not present in table "users".`, nil), 404, MsgUnknownAuthor},
		{"fk author name mentions topic", failure.Constraint(failure.ForeignKeyViolation, "articles", "author", `Key (author)=(topicfan) is not present in table "users".`, nil), 404, MsgUnknownAuthor},
		{"fk other", failure.Constraint(failure.ForeignKeyViolation, "comments", "article_id", `Key (article_id)=(99) is not present in table "articles".`, nil), 404, `Key (article_id)=(99) is not present in table "articles".`},

		{"unique topics", failure.Constraint(failure.UniqueViolation, "topics", "slug", "", nil), 409, "Topic already exists in the database!"},
		{"unique users", failure.Constraint(failure.UniqueViolation, "users", "username", "", nil), 409, "User already exists in the database!"},

		{"text repr", failure.Constraint(failure.InvalidTextRepresentation, "articles", "", "", nil), 400, MsgInvalidID},

		{"wrapped", fmt.Errorf("svc: %w", failure.NotFound(failure.Article, "1")), 404, MsgArticleNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg, ok := Classify(tc.err)
			if !ok {
				t.Fatalf("expected classified")
			}
			if status != tc.status || msg != tc.msg {
				t.Fatalf("got (%d, %q) want (%d, %q)", status, msg, tc.status, tc.msg)
			}
		})
	}
}

func TestClassify_Unmatched(t *testing.T) {
	for _, err := range []error{
		errors.New("boom"),
		failure.Constraint(failure.UniqueViolation, "comments", "", "", nil),
		failure.Constraint("40001", "articles", "", "", nil),
		failure.NotFound("widget", "1"),
		&failure.Failure{},
	} {
		status, msg, ok := Classify(err)
		if ok || status != http.StatusInternalServerError || msg != MsgInternal {
			t.Fatalf("%v: got (%d, %q, %v)", err, status, msg, ok)
		}
	}
}

func TestClassify_CountsFailures(t *testing.T) {
	count := func() int {
		n, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "api_failures_total")
		if err != nil {
			t.Fatalf("gather: %v", err)
		}
		return n
	}
	Classify(failure.NotFound(failure.Topic, "x"))
	Classify(errors.New("boom"))
	// one series per (kind, status) pair seen so far
	if n := count(); n < 2 {
		t.Fatalf("api_failures_total series=%d want >=2", n)
	}
}
