package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"

	"github.com/lwscloud/authservice"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(envOr("MONGO_URI", "mongodb://127.0.0.1:27017")))
	if err != nil {
		log.Fatal(err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}

	db := client.Database("auth")
	accounts, err := authservice.NewMongoAccountRepository(db.Collection("accounts"))
	if err != nil {
		log.Fatal(err)
	}
	tokens := authservice.NewMongoTokenRepository(db.Collection("accessTokens"))

	rdb := redis.NewClient(&redis.Options{Addr: envOr("REDIS_ADDR", "127.0.0.1:6379")})
	events := authservice.NewRedisEventSink(rdb)

	accountSvc := authservice.NewAccountService(accounts, events)
	tokenSvc := authservice.NewTokenService(tokens)

	router := httprouter.New()
	router.Handler(http.MethodPost, "/v1/accounts", authservice.RegisterAccountHandler(accountSvc))
	router.Handler(http.MethodPost, "/v1/sessions", authservice.LoginHandler(accountSvc, tokenSvc))
	router.Handler(http.MethodGet, "/v1/accounts/me", authservice.RequireAuth(authservice.GetAccountHandler(accountSvc), tokenSvc))
	router.Handler(http.MethodDelete, "/v1/accounts/me", authservice.RequireAuth(authservice.RemoveAccountHandler(accountSvc), tokenSvc))
	router.Handler(http.MethodGet, "/v1/tokens", authservice.RequireAuth(authservice.ListTokensHandler(tokenSvc), tokenSvc))

	port := envOr("PORT", "8090")
	log.Printf("Server started. Listening on port: %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
