package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"demo/storefront/internal/config"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, _, err := Open(context.Background(), config.Config{Driver: "oracle", Schema: "storefront"}, zerolog.Nop())
	require.ErrorContains(t, err, `unsupported driver "oracle"`)
}

func TestOpen_BadMySQLDSN(t *testing.T) {
	cfg := config.Config{Driver: config.DriverMySQL, Schema: "storefront", DSN: "not a dsn"}
	_, _, err := Open(context.Background(), cfg, zerolog.Nop())
	require.ErrorContains(t, err, "db dsn")
}
