package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	AssetsDir string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	return Config{
		Port:      getEnv("PORT", "8080"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "pos"),
		AssetsDir: getEnv("ASSETS_DIR", "./files"),
	}
}

// ConnectDB opens the Mongo client and pings it once. A failed ping is
// logged but not fatal: the driver reconnects lazily, and until then every
// request that touches the store fails with a 500.
func ConnectDB(cfg Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to create MongoDB client:", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Println("MongoDB unreachable at startup:", err)
	} else {
		log.Println("✅ Connected to MongoDB at", cfg.MongoURI)
	}
	return client.Database(cfg.MongoDB)
}
