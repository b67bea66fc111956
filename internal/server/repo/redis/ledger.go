package redis

import (
	"context"
	"errors"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/ensdomains/ens-faucet-worker/internal/database/redis"
)

const ClaimPrefix = "claim:"

// Ledger records the last claim time per (network, address), keyed as
// claim:{network}/{address}. Redis expires each record after the network's
// claim interval, the service layer re-checks the timestamp on top of that.
type Ledger struct{}

func claimKey(network, address string) string {
	return ClaimPrefix + network + "/" + address
}

func (l *Ledger) GetClaim(network, address string) (int64, error) {
	ctx := context.Background()

	val, err := redis.Client.Get(ctx, claimKey(network, address)).Int64()
	if errors.Is(err, redisv9.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return val, nil
}

func (l *Ledger) PutClaim(network, address string, claimedAt int64, ttl time.Duration) error {
	ctx := context.Background()

	return redis.Client.Set(ctx, claimKey(network, address), claimedAt, ttl).Err()
}
