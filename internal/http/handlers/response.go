package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/newsroom-api/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
//	HTTP/1.1 404 Not Found
//	{
//	  "msg": "Article does not exist",
//	  "status": 404,
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000"
//	}
type ErrorResponse struct {
	// Human-readable message; part of the API contract.
	Msg string `json:"msg" example:"Article does not exist"`
	// HTTP status code, repeated in the body.
	Status int `json:"status" example:"404"`
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
}

// fail aborts the request with the error envelope. Server errors (>=500) are
// logged with the request-scoped logger.
func fail(c *gin.Context, status int, msg string) {
	resp := ErrorResponse{
		Msg:       msg,
		Status:    status,
		RequestID: c.Writer.Header().Get("X-Request-ID"),
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("msg", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail, used by the router for fallbacks.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// failErr classifies err and responds. Unclassified errors become a 500 and
// the underlying error is logged; it is never echoed to the client.
func failErr(c *gin.Context, err error) {
	status, msg, ok := Classify(err)
	if !ok {
		lg := middleware.LoggerFrom(c)
		lg.Error().Err(err).Str("path", c.FullPath()).Msg("unclassified failure")
	}
	fail(c, status, msg)
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
