package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowshift-labs/snowshift/pkg/adapter"
	"github.com/snowshift-labs/snowshift/pkg/core"
)

func TestBuildDSN(t *testing.T) {
	cfg := core.ConnectionConfig{
		Account:   "myorg-myaccount",
		User:      "analyst",
		Password:  "secret",
		Database:  "ANALYTICS",
		Schema:    "PUBLIC",
		Warehouse: "COMPUTE_WH",
		Role:      "REPORTING",
	}

	dsn, err := buildDSN(cfg)
	require.NoError(t, err)

	assert.Contains(t, dsn, "myorg-myaccount")
	assert.Contains(t, dsn, "analyst")
	assert.Contains(t, dsn, "ANALYTICS")
	assert.Contains(t, dsn, "warehouse=COMPUTE_WH")
	assert.Contains(t, dsn, "role=REPORTING")
}

func TestBuildDSNOptions(t *testing.T) {
	cfg := core.ConnectionConfig{
		Account:  "myaccount",
		User:     "analyst",
		Password: "secret",
		Options:  map[string]string{"client_session_keep_alive": "true"},
	}

	dsn, err := buildDSN(cfg)
	require.NoError(t, err)
	assert.Contains(t, dsn, "client_session_keep_alive=true")
}

func TestBuildDSNMissingAccount(t *testing.T) {
	_, err := buildDSN(core.ConnectionConfig{User: "analyst", Password: "secret"})
	assert.Error(t, err)
}

func TestAdapterRegistered(t *testing.T) {
	assert.True(t, adapter.IsRegistered("snowflake"))
}

func TestNewDefaultsLogger(t *testing.T) {
	a := New(nil)
	assert.NotNil(t, a.Logger)
	assert.False(t, a.IsConnected())
}
