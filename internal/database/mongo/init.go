package mongo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ensdomains/ens-faucet-worker/pkg/config"
)

var Client *mongo.Client
var Database *mongo.Database

// Init connects the audit store. The faucet can serve claims without it, so
// a missing MONGO_URI only logs a notice instead of failing startup.
func Init() {
	if config.Config.MongoUri == "" {
		log.Println("MONGO_URI not set, payout audit log disabled")
		return
	}

	if err := connect(config.Config.MongoDbName); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
}

func connect(dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.Config.MongoUri))
	if err != nil {
		return err
	}

	if err = client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	Database = client.Database(dbName)
	log.Println("Connected to MongoDB")
	return nil
}

func Disconnect() error {
	if Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return Client.Disconnect(ctx)
}
