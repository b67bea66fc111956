package config

import "math/big"

type Structure struct {
	Port           string
	RedisUri       string
	MongoUri       string
	MongoDbName    string
	SubgraphUri    string
	DefaultNetwork string
	Debug          bool
	Networks       map[string]*Network
}

// Network holds the immutable per-network faucet parameters. Loaded once at
// startup, never mutated afterwards.
type Network struct {
	Name             string
	RpcUri           string
	RelayerUri       string
	RelayerApiKey    string
	RelayerApiSecret string
	ClaimAmount      *big.Int
	ClaimIntervalMs  int64
}

var (
	Config *Structure
)
