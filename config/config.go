// Package config centralizes environment lookups. godotenv loads the .env
// file in main; everything here is a plain env read with a sane default.
package config

import (
	"os"
	"strings"
)

const (
	defaultPort        = "5000"
	defaultMongoURI    = "mongodb://localhost:27017"
	defaultMongoDB     = "CraveSpotDB"
	defaultStoreDriver = "mongo"
)

func get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Port the HTTP server listens on.
func Port() string {
	return get("PORT", defaultPort)
}

// MongoURI is the connection string for the document store.
func MongoURI() string {
	return get("MONGO_URI", defaultMongoURI)
}

// MongoDB is the database name.
func MongoDB() string {
	return get("MONGO_DB", defaultMongoDB)
}

// StoreDriver selects the persistence driver: "mongo" (default) or "memory".
func StoreDriver() string {
	driver := strings.ToLower(get("STORE_DRIVER", defaultStoreDriver))
	switch driver {
	case "mongo", "memory":
		return driver
	default:
		return defaultStoreDriver
	}
}

// JWTSecret signs and verifies access tokens. Empty when unset: there is
// no baked-in fallback, since a known secret makes every token forgeable.
// main refuses to start without it.
func JWTSecret() string {
	return os.Getenv("ACCESS_TOKEN_SECRET")
}

// StripeSecretKey authenticates against the Stripe API. Empty when payments
// are not configured.
func StripeSecretKey() string {
	return os.Getenv("STRIPE_SECRET_KEY")
}
