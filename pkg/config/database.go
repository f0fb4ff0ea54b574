package config

import (
	"context"
	"net"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dcampos/red-social-backend/pkg/logger"
)

// LoadEnv loads variables from a .env file when present. Missing files are
// fine; deployments set the environment directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Sugar.Info("No .env file found, assuming environment variables are set.")
	}
}

// InitMongo connects to MongoDB. A failed ping is logged but does not halt
// startup: the client reconnects lazily and routes fail downstream until the
// store becomes reachable. Only a malformed URI is fatal.
func InitMongo(uri string) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Sugar.Fatalw("invalid MONGO_URI", "error", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		logger.Sugar.Errorw("Error de conexion a MongoDB", "error", err)
		return client
	}

	logger.Sugar.Info("Conectado a MongoDB")
	return client
}

// CloseMongo disconnects the client, tolerating a nil client from a failed
// startup connect.
func CloseMongo(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Sugar.Errorw("Error closing MongoDB connection", "error", err)
	}
}

// NewRedisClient builds the Redis client backing the session store.
func NewRedisClient(cfg *Config) *redis.Client {
	host, port, err := net.SplitHostPort(cfg.RedisAddr)
	if err != nil {
		host, port = cfg.RedisAddr, "6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(host, port),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Sugar.Warnw("Redis ping failed, sessions unavailable until it recovers", "error", err)
	}
	return client
}
