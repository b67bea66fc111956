package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultOrigin = "https://app.ens.domains"

var allowedSuffixes = []string{"ens-app-v3.pages.dev", "ens.domains"}

func allowOrigin(origin string) string {
	if origin == "http://localhost:3000" {
		return origin
	}
	for _, suffix := range allowedSuffixes {
		if strings.HasSuffix(origin, suffix) {
			return origin
		}
	}
	return defaultOrigin
}

// Cors stamps the allow-list headers on every response and answers preflight
// requests with an empty 204.
func Cors(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", allowOrigin(c.GetHeader("Origin")))
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.Next()
}
