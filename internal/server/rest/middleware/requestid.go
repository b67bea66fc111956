package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIdKey = "request_id"

// RequestId tags every request with a uuid so payout audit records can be
// correlated with access logs.
func RequestId(c *gin.Context) {
	id := uuid.NewString()
	c.Set(RequestIdKey, id)
	c.Header("X-Request-Id", id)
	c.Next()
}
