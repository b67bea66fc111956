package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/ensdomains/ens-faucet-worker/internal/server/rest/handlers"
)

func setupFaucetRoutes(app *gin.Engine, faucet *handlers.Faucet) {
	app.POST("/", faucet.Rpc)
	app.POST("/:network", faucet.Rpc)
}
