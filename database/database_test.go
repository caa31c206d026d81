package database

import (
	"testing"

	"expense-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	d, err := Dialector(config.DatabaseConfig{
		Driver:   "mysql",
		Host:     "127.0.0.1",
		Port:     "3306",
		Username: "root",
		Password: "pw",
		DBName:   "expense_tracker",
		Charset:  "utf8mb4",
	})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	d, err = Dialector(config.DatabaseConfig{Driver: "postgres", DSN: "postgres://u:p@localhost:5432/db"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	// 未指定驱动时默认 MySQL
	d, err = Dialector(config.DatabaseConfig{DSN: "root:pw@tcp(localhost:3306)/db"})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	_, err = Dialector(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestGormConfig(t *testing.T) {
	cfg := GormConfig("release")
	assert.True(t, cfg.TranslateError)
	assert.True(t, cfg.DisableForeignKeyConstraintWhenMigrating)
	assert.NotNil(t, cfg.Logger)
}
