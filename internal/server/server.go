package server

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ensdomains/ens-faucet-worker/internal/server/repo/redis"
	"github.com/ensdomains/ens-faucet-worker/internal/server/rest/handlers"
	"github.com/ensdomains/ens-faucet-worker/internal/server/rest/routers"
	"github.com/ensdomains/ens-faucet-worker/internal/server/service"
	"github.com/ensdomains/ens-faucet-worker/pkg/chain"
	"github.com/ensdomains/ens-faucet-worker/pkg/config"
	"github.com/ensdomains/ens-faucet-worker/pkg/ens"
	"github.com/ensdomains/ens-faucet-worker/pkg/relayer"
)

func Start(port string) error {
	cfg := config.Config

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	app := gin.Default()

	faucet, err := buildFaucet(cfg)
	if err != nil {
		return err
	}
	routers.SetupRoutes(app, faucet)

	log.Println("Starting server on port " + port)
	if err := app.Run(":" + port); err != nil {
		log.Println("Error starting server: " + err.Error())
		return err
	}

	return nil
}

func buildFaucet(cfg *config.Structure) (*handlers.Faucet, error) {
	networks := make(map[string]*config.Network, len(cfg.Networks))
	clients := make(map[string]service.Collaborators, len(cfg.Networks))
	for name, net := range cfg.Networks {
		if net.RpcUri == "" {
			log.Println("Skipping network without RPC_URI: " + name)
			continue
		}

		ethClient, err := chain.Dial(net.RpcUri)
		if err != nil {
			return nil, fmt.Errorf("failed to connect %s rpc: %w", name, err)
		}

		networks[name] = net
		clients[name] = service.Collaborators{
			Relayer: relayer.NewClient(net.RelayerUri, net.RelayerApiKey, net.RelayerApiSecret, cfg.Debug),
			Chain:   ethClient,
		}
	}

	engine := service.New(
		networks,
		clients,
		ens.NewOracle(cfg.SubgraphUri),
		&redis.Ledger{},
		service.NewPayoutLog(),
	)

	return &handlers.Faucet{
		Service:        engine,
		Networks:       networks,
		DefaultNetwork: cfg.DefaultNetwork,
	}, nil
}
