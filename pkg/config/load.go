package config

import (
	"math/big"
	"os"
	"strconv"
	"strings"
)

const (
	// 0.25 ETH in wei.
	defaultClaimAmount = "250000000000000000"
	// 30 days in milliseconds.
	defaultClaimIntervalMs = int64(30 * 24 * 60 * 60 * 1000)

	defaultSubgraphUri = "https://api.thegraph.com/subgraphs/name/ensdomains/ens"
)

var supportedNetworks = []string{"sepolia", "holesky"}

func Load() {
	networks := make(map[string]*Network, len(supportedNetworks))
	for _, name := range supportedNetworks {
		networks[name] = loadNetwork(name)
	}

	Config = &Structure{
		Port:           os.Getenv("PORT"),
		RedisUri:       os.Getenv("REDIS_URL"),
		MongoUri:       os.Getenv("MONGO_URI"),
		MongoDbName:    os.Getenv("MONGO_DB_NAME"),
		SubgraphUri:    getEnv("ENS_SUBGRAPH_URI", defaultSubgraphUri),
		DefaultNetwork: getEnv("DEFAULT_NETWORK", supportedNetworks[0]),
		Debug:          os.Getenv("DEBUG") != "",
		Networks:       networks,
	}
}

func loadNetwork(name string) *Network {
	prefix := strings.ToUpper(name) + "_"

	amount, ok := new(big.Int).SetString(getEnv(prefix+"CLAIM_AMOUNT", defaultClaimAmount), 10)
	if !ok {
		amount, _ = new(big.Int).SetString(defaultClaimAmount, 10)
	}

	interval := defaultClaimIntervalMs
	if raw := os.Getenv(prefix + "CLAIM_INTERVAL_MS"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			interval = parsed
		}
	}

	return &Network{
		Name:             name,
		RpcUri:           os.Getenv(prefix + "RPC_URI"),
		RelayerUri:       os.Getenv(prefix + "RELAYER_URI"),
		RelayerApiKey:    os.Getenv(prefix + "RELAYER_API_KEY"),
		RelayerApiSecret: os.Getenv(prefix + "RELAYER_API_SECRET"),
		ClaimAmount:      amount,
		ClaimIntervalMs:  interval,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
