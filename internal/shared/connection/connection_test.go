package connection_test

import (
	"testing"

	"barangay-portal/internal/shared/connection"

	"github.com/stretchr/testify/assert"
)

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := connection.PostgresConfig{
		Host:     "db",
		User:     "app",
		Password: "pw",
		Name:     "barangay",
		Port:     "5432",
		SSLMode:  "disable",
	}

	t.Run("without zone", func(t *testing.T) {
		assert.Equal(t, "host=db user=app password=pw dbname=barangay port=5432 sslmode=disable", cfg.DSN())
	})

	t.Run("pins session zone", func(t *testing.T) {
		cfg.TimeZone = "Asia/Manila"
		assert.Equal(t, "host=db user=app password=pw dbname=barangay port=5432 sslmode=disable TimeZone=Asia/Manila", cfg.DSN())
	})
}
