package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ensdomains/ens-faucet-worker/internal/server/rest/handlers"
	"github.com/ensdomains/ens-faucet-worker/internal/server/rest/middleware"
)

func SetupRoutes(app *gin.Engine, faucet *handlers.Faucet) {
	app.Use(middleware.Cors, middleware.RequestId)

	// Transport-level errors stay plain text, outside the JSON-RPC envelope.
	app.HandleMethodNotAllowed = true
	app.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "Unsupported method: "+c.Request.Method)
	})
	app.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Not Found")
	})

	app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "ens-faucet",
			"version": "1.0.0",
		})
	})
	setupFaucetRoutes(app, faucet)
}
