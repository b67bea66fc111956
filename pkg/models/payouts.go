package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PayoutLog struct {
	Collection *mongo.Collection
}

// Payout is the audit record written after a successful relayer send.
type Payout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Network   string             `bson:"network" json:"network"`
	Address   string             `bson:"address" json:"address"`
	Amount    string             `bson:"amount" json:"amount"`
	TxId      string             `bson:"tx_id" json:"tx_id"`
	RequestId string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
