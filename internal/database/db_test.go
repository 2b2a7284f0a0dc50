package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{
		DBUser: "app", DBPass: "s3cret",
		DBHost: "db.local", DBPort: "3306", DBName: "propman",
	}

	t.Run("with password", func(t *testing.T) {
		require.Equal(t,
			"app:s3cret@tcp(db.local:3306)/propman?charset=utf8mb4&parseTime=true&loc=UTC",
			dsn(cfg))
	})

	t.Run("empty password omits the colon", func(t *testing.T) {
		noPass := cfg
		noPass.DBPass = ""
		require.Equal(t,
			"app@tcp(db.local:3306)/propman?charset=utf8mb4&parseTime=true&loc=UTC",
			dsn(noPass))
	})
}
