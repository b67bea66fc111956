package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ensdomains/ens-faucet-worker/pkg/models"
)

type PayoutLog models.PayoutLog
type PayoutLogImpl models.PayoutImpl

func (p *PayoutLog) RecordPayout(network, address, amount, txId, requestId string) (*models.Payout, error) {
	payout := &models.Payout{
		ID:        primitive.NewObjectID(),
		Network:   network,
		Address:   address,
		Amount:    amount,
		TxId:      txId,
		RequestId: requestId,
		CreatedAt: time.Now(),
	}

	_, err := p.Collection.InsertOne(context.Background(), payout)
	if err != nil {
		return nil, err
	}

	return payout, nil
}

func (p *PayoutLog) RecentPayouts(network string, limit int64) ([]models.Payout, error) {
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit)

	cursor, err := p.Collection.Find(context.Background(), bson.M{"network": network}, opts)
	if err != nil {
		return nil, err
	}

	var payouts []models.Payout
	if err = cursor.All(context.Background(), &payouts); err != nil {
		return nil, err
	}

	return payouts, nil
}
