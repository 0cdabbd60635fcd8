package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snowshift-labs/snowshift/pkg/adapter"
)

func TestAdapterRegistered(t *testing.T) {
	assert.True(t, adapter.IsRegistered("duckdb"))
}

func TestNewDefaultsLogger(t *testing.T) {
	a := New(nil)
	assert.NotNil(t, a.Logger)
	assert.False(t, a.IsConnected())
}
