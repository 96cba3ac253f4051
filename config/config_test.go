package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTSecret_NoFallback(t *testing.T) {
	// An unset secret must come back empty so startup can refuse to run,
	// rather than silently signing tokens with a well-known value.
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	assert.Empty(t, JWTSecret())

	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")
	assert.Equal(t, "s3cret", JWTSecret())
}

func TestStoreDriver_FallsBackToMongo(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")
	assert.Equal(t, "mongo", StoreDriver())

	t.Setenv("STORE_DRIVER", "MEMORY")
	assert.Equal(t, "memory", StoreDriver())
}
