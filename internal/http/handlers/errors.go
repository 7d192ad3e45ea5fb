package handlers

// User-facing error messages. Clients match on these strings, so they are
// kept verbatim in one place; Classify selects them from the failure carried
// by an error.
const (
	MsgInvalidID         = "Bad Request: invalid id (must be an integer)"
	MsgInvalidPagination = "Invalid input - must be a positive integer!"
	MsgInvalidSortBy     = "Invalid sort_by query!"
	MsgInvalidIncVotes   = "Invalid request - must include inc_votes which must have an integer value"
	MsgEmptyTitle        = "Title cannot be an empty string"
	MsgEmptyArticleBody  = "Article body cannot be an empty string"
	MsgInvalidJSON       = "Bad Request: body must be a JSON object"

	MsgInvalidComment = "Invalid comment, couldn't post - make sure you include a body and username"
	MsgInvalidArticle = "Invalid article, couldn't post - must include author, title, body and topic (optional article_img_url)"

	MsgUnknownTopic  = "Couldn't find that topic in the database."
	MsgUnknownAuthor = "Username not registered, couldn't post."

	MsgArticleNotFound = "Article does not exist"

	MsgEndpointNotFound = "Endpoint not found!"
	MsgMethodNotAllowed = "Method not allowed!"
	MsgRateLimited      = "Too many requests!"
	MsgInternal         = "Internal server error"
)

// Formats that interpolate the failing key.
const (
	fmtEmptyField        = "Bad Request: %s cannot be an empty string"
	fmtParentNotFound    = "Couldn't find article %s"
	fmtCommentNotFound   = "Couldn't find comment %s"
	fmtTopicNotFound     = "Couldn't find topic: %s in the database."
	fmtUserNotFound      = "%s does not exist!"
	fmtResourceDuplicate = "%s already exists in the database!"
)
