// Comment HTTP handlers.
//
//   - GET    /articles/{article_id}/comments  (list, newest first, paginated)
//   - POST   /articles/{article_id}/comments  (create)
//   - PATCH  /comments/{comment_id}           (relative vote change)
//   - DELETE /comments/{comment_id}           (delete)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/newsroom-api/internal/failure"
)

// ListComments godoc
// @ID          listComments
// @Summary     List an article's comments
// @Tags        Comments
// @Produce     json
// @Param       article_id  path   int  true   "Article ID"
// @Param       limit       query  int  false  "Page size (default 10)"
// @Param       p           query  int  false  "Page number (default 1)"
// @Success     200  {object}  handlers.CommentsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid id or pagination"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown article"
// @Router      /articles/{article_id}/comments [get]
func (h *Handlers) ListComments(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		failErr(c, err)
		return
	}
	limit, page, err := failure.Page(c.Query("limit"), c.Query("p"))
	if err != nil {
		failErr(c, err)
		return
	}
	items, err := h.comments.ListForArticle(c.Request.Context(), id, limit, page)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, CommentsResponse{Comments: orEmpty(items)})
}

// CreateComment godoc
// @ID          createComment
// @Summary     Post a comment on an article
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       article_id  path  int                            true  "Article ID"
// @Param       body        body  handlers.CreateCommentRequest  true  "New comment"
// @Success     201  {object}  handlers.CommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid id or missing fields"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown article or username"
// @Router      /articles/{article_id}/comments [post]
func (h *Handlers) CreateComment(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		failErr(c, err)
		return
	}
	var req CreateCommentRequest
	if err := bindBody(c, &req); err != nil {
		failErr(c, err)
		return
	}
	cm, err := h.comments.Create(c.Request.Context(), id, req.Username, req.Body)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, CommentResponse{Comment: cm})
}

// VoteComment godoc
// @ID          voteComment
// @Summary     Change a comment's votes
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       comment_id  path  int                   true   "Comment ID"
// @Param       body        body  handlers.VoteRequest  false  "Vote change"
// @Success     200  {object}  handlers.CommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid id or inc_votes"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown comment"
// @Router      /comments/{comment_id} [patch]
func (h *Handlers) VoteComment(c *gin.Context) {
	id, err := pathID(c, "comment_id")
	if err != nil {
		failErr(c, err)
		return
	}
	var req VoteRequest
	if err := bindBody(c, &req); err != nil {
		failErr(c, err)
		return
	}
	cm, err := h.comments.Vote(c.Request.Context(), id, req.IncVotes)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, CommentResponse{Comment: cm})
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Tags        Comments
// @Param       comment_id  path  int  true  "Comment ID"
// @Success     204  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid id"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown comment"
// @Router      /comments/{comment_id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	id, err := pathID(c, "comment_id")
	if err != nil {
		failErr(c, err)
		return
	}
	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}
