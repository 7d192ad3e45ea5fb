package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListTopics godoc
// @ID          listTopics
// @Summary     List topics
// @Tags        Topics
// @Produce     json
// @Success     200  {object}  handlers.TopicsResponse
// @Router      /topics [get]
func (h *Handlers) ListTopics(c *gin.Context) {
	topics, err := h.topics.List(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, TopicsResponse{Topics: orEmpty(topics)})
}

// CreateTopic godoc
// @ID          createTopic
// @Summary     Create a topic
// @Tags        Topics
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateTopicRequest  true  "New topic"
// @Success     201  {object}  handlers.TopicResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or empty slug"
// @Failure     409  {object}  handlers.ErrorResponse  "Topic already exists"
// @Router      /topics [post]
func (h *Handlers) CreateTopic(c *gin.Context) {
	var req CreateTopicRequest
	if err := bindBody(c, &req); err != nil {
		failErr(c, err)
		return
	}
	t, err := h.topics.Create(c.Request.Context(), req.Slug, req.Description)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, TopicResponse{Topic: t})
}
