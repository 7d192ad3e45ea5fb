// Article HTTP handlers.
//
// This file exposes REST endpoints for article resources:
//   - GET    /articles                       (list, filter, sort, paginate)
//   - POST   /articles                       (create)
//   - GET    /articles/{article_id}          (fetch with comment_count)
//   - PATCH  /articles/{article_id}          (relative vote change)
//   - DELETE /articles/{article_id}          (delete with comments)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/newsroom-api/internal/failure"
	"github.com/tbourn/newsroom-api/internal/repo"
	"github.com/tbourn/newsroom-api/internal/services"
)

// ListArticles godoc
// @ID          listArticles
// @Summary     List articles
// @Description Returns a page of articles (without body) and the total count matching the topic filter.
// @Tags        Articles
// @Produce     json
// @Param       topic    query  string  false  "Topic slug filter"
// @Param       sort_by  query  string  false  "Sort column"  Enums(created_at, votes, author, title, article_id, topic)
// @Param       order    query  string  false  "asc or desc (default desc)"
// @Param       limit    query  int     false  "Page size (default 10)"
// @Param       p        query  int     false  "Page number (default 1)"
// @Success     200  {object}  handlers.ArticlesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid sort_by or pagination"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown topic"
// @Router      /articles [get]
func (h *Handlers) ListArticles(c *gin.Context) {
	sortBy, err := failure.SortBy(c.Query("sort_by"))
	if err != nil {
		failErr(c, err)
		return
	}
	limit, page, err := failure.Page(c.Query("limit"), c.Query("p"))
	if err != nil {
		failErr(c, err)
		return
	}

	items, total, err := h.articles.List(c.Request.Context(), services.ArticleFilter{
		Topic:  c.Query("topic"),
		SortBy: sortBy,
		Desc:   failure.Descending(c.Query("order")),
		Limit:  limit,
		Page:   page,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ArticlesResponse{Articles: orEmpty(items), TotalCount: total})
}

// CreateArticle godoc
// @ID          createArticle
// @Summary     Post an article
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateArticleRequest  true  "New article"
// @Success     201  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or empty fields"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown topic or author"
// @Router      /articles [post]
func (h *Handlers) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := bindBody(c, &req); err != nil {
		failErr(c, err)
		return
	}
	a, err := h.articles.Create(c.Request.Context(), repo.NewArticle{
		Author:        req.Author,
		Title:         req.Title,
		Body:          req.Body,
		Topic:         req.Topic,
		ArticleImgURL: req.ArticleImgURL,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, ArticleResponse{Article: a})
}

// GetArticle godoc
// @ID          getArticle
// @Summary     Get an article
// @Tags        Articles
// @Produce     json
// @Param       article_id  path  int  true  "Article ID"
// @Success     200  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid id"
// @Failure     404  {object}  handlers.ErrorResponse  "Article does not exist"
// @Router      /articles/{article_id} [get]
func (h *Handlers) GetArticle(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		failErr(c, err)
		return
	}
	a, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}

// VoteArticle godoc
// @ID          voteArticle
// @Summary     Change an article's votes
// @Description Adds inc_votes to the stored total. A missing inc_votes returns the article unchanged.
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       article_id  path  int                      true  "Article ID"
// @Param       body        body  handlers.VoteRequest     false "Vote change"
// @Success     200  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid id or inc_votes"
// @Failure     404  {object}  handlers.ErrorResponse  "Article does not exist"
// @Router      /articles/{article_id} [patch]
func (h *Handlers) VoteArticle(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		failErr(c, err)
		return
	}
	var req VoteRequest
	if err := bindBody(c, &req); err != nil {
		failErr(c, err)
		return
	}
	a, err := h.articles.Vote(c.Request.Context(), id, req.IncVotes)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}

// DeleteArticle godoc
// @ID          deleteArticle
// @Summary     Delete an article and its comments
// @Tags        Articles
// @Param       article_id  path  int  true  "Article ID"
// @Success     204  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid id"
// @Failure     404  {object}  handlers.ErrorResponse  "Article does not exist"
// @Router      /articles/{article_id} [delete]
func (h *Handlers) DeleteArticle(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		failErr(c, err)
		return
	}
	if err := h.articles.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}
