package service

import (
	"github.com/ensdomains/ens-faucet-worker/internal/database/mongo"
	mongo2 "github.com/ensdomains/ens-faucet-worker/internal/server/repo/mongo"
	"github.com/ensdomains/ens-faucet-worker/pkg/models"
)

const payoutCollection = "payouts"

// NewPayoutLog returns the Mongo-backed audit log, or nil when the audit
// store is not configured.
func NewPayoutLog() models.PayoutImpl {
	if mongo.Database == nil {
		return nil
	}

	payouts := &mongo2.PayoutLog{
		Collection: mongo.Database.Collection(payoutCollection),
	}
	return mongo2.PayoutLogImpl(payouts)
}
