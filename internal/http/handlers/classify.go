package handlers

import (
	"fmt"
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tbourn/newsroom-api/internal/failure"
	"github.com/tbourn/newsroom-api/internal/http/middleware"
)

// titled capitalizes a resource name. Casers are stateful, so one is built
// per call.
func titled(s string) string { return cases.Title(language.English).String(s) }

// Classify maps err to an HTTP status and message using the failure carried
// in its chain. ok is false when nothing in the table matches; the caller
// then gets 500 and MsgInternal.
func Classify(err error) (status int, msg string, ok bool) {
	kind := "unknown"
	defer func() {
		middleware.ObserveFailure(kind, status)
	}()

	f, found := failure.As(err)
	if found {
		kind = f.Kind.String()
		status, msg, ok = classify(f)
	}
	if !ok {
		status, msg = http.StatusInternalServerError, MsgInternal
	}
	return status, msg, ok
}

func classify(f *failure.Failure) (int, string, bool) {
	switch f.Kind {
	case failure.KindMalformed:
		return http.StatusBadRequest, malformedMessage(f.Field), true

	case failure.KindNotFound:
		switch f.Resource {
		case failure.Article:
			if f.Parent {
				return http.StatusNotFound, fmt.Sprintf(fmtParentNotFound, f.Key), true
			}
			return http.StatusNotFound, MsgArticleNotFound, true
		case failure.Comment:
			return http.StatusNotFound, fmt.Sprintf(fmtCommentNotFound, f.Key), true
		case failure.Topic:
			return http.StatusNotFound, fmt.Sprintf(fmtTopicNotFound, f.Key), true
		case failure.User:
			return http.StatusNotFound, fmt.Sprintf(fmtUserNotFound, f.Key), true
		}

	case failure.KindConflict:
		return http.StatusConflict, fmt.Sprintf(fmtResourceDuplicate, titled(f.Resource)), true

	case failure.KindConstraint:
		return classifyConstraint(f)
	}
	return 0, "", false
}

func malformedMessage(field string) string {
	switch field {
	case failure.FieldID:
		return MsgInvalidID
	case failure.FieldPagination:
		return MsgInvalidPagination
	case failure.FieldSortBy:
		return MsgInvalidSortBy
	case failure.FieldIncVotes:
		return MsgInvalidIncVotes
	case failure.FieldJSON:
		return MsgInvalidJSON
	case "title":
		return MsgEmptyTitle
	case "body":
		return MsgEmptyArticleBody
	default:
		return fmt.Sprintf(fmtEmptyField, field)
	}
}

func classifyConstraint(f *failure.Failure) (int, string, bool) {
	switch f.Code {
	case failure.NotNullViolation:
		switch f.Table {
		case "comments":
			return http.StatusBadRequest, MsgInvalidComment, true
		case "articles":
			return http.StatusBadRequest, MsgInvalidArticle, true
		case "topics", "users":
			if f.Column != "" {
				return http.StatusBadRequest, fmt.Sprintf(fmtEmptyField, f.Column), true
			}
		}
		return http.StatusBadRequest, f.Detail, true

	case failure.ForeignKeyViolation:
		switch f.Column {
		case "author":
			return http.StatusNotFound, MsgUnknownAuthor, true
		case "topic":
			return http.StatusNotFound, MsgUnknownTopic, true
		}
		return http.StatusNotFound, f.Detail, true

	case failure.UniqueViolation:
		switch f.Table {
		case "topics":
			return http.StatusConflict, fmt.Sprintf(fmtResourceDuplicate, titled(failure.Topic)), true
		case "users":
			return http.StatusConflict, fmt.Sprintf(fmtResourceDuplicate, titled(failure.User)), true
		}

	case failure.InvalidTextRepresentation:
		return http.StatusBadRequest, MsgInvalidID, true
	}
	return 0, "", false
}
