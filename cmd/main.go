package main

import (
	"log"
	"os"

	"github.com/ensdomains/ens-faucet-worker/internal/database/mongo"
	"github.com/ensdomains/ens-faucet-worker/internal/database/redis"
	"github.com/ensdomains/ens-faucet-worker/internal/server"
	"github.com/ensdomains/ens-faucet-worker/pkg/config"
)

func main() {
	config.Load()
	redis.InitRedis()
	mongo.Init()
	defer func() {
		if err := mongo.Disconnect(); err != nil {
			log.Println("Error disconnecting from MongoDB: " + err.Error())
		}
	}()

	err := server.Start(os.Getenv("PORT"))
	if err != nil {
		panic(err)
	}
}
