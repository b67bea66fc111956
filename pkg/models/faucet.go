package models

import (
	"context"
	"math/big"
	"time"
)

// Faucet status values as reported to clients.
const (
	StatusOk         = "ok"
	StatusPaused     = "paused"
	StatusOutOfFunds = "out of funds"
)

type StatusResult struct {
	Status   string `json:"status"`
	Amount   string `json:"amount"`
	Interval int64  `json:"interval"`
}

type AddressResult struct {
	Eligible bool   `json:"eligible"`
	Amount   string `json:"amount"`
	Interval int64  `json:"interval"`
	Next     int64  `json:"next"`
	Status   string `json:"status"`
}

type ClaimResult struct {
	Id string `json:"id"`
}

type RelayerInfo struct {
	Address string `json:"address"`
	Paused  bool   `json:"paused"`
}

type RelayerImpl interface {
	GetRelayer(ctx context.Context) (*RelayerInfo, error)
	// SendTransaction submits the payout and returns the relayer's
	// transaction identifier, empty when the relayer did not produce one.
	SendTransaction(ctx context.Context, to string, value *big.Int) (string, error)
}

type ChainImpl interface {
	GetBalance(ctx context.Context, address string) (*big.Int, error)
}

type OracleImpl interface {
	HasName(ctx context.Context, address string) (bool, error)
}

type LedgerImpl interface {
	// GetClaim returns the epoch-ms timestamp of the last claim for the
	// (network, address) pair, 0 when no record exists.
	GetClaim(network, address string) (int64, error)
	PutClaim(network, address string, claimedAt int64, ttl time.Duration) error
}

type PayoutImpl interface {
	RecordPayout(network, address, amount, txId, requestId string) (*Payout, error)
	RecentPayouts(network string, limit int64) ([]Payout, error)
}
