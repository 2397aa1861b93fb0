package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppBuildInfo_MarshalJSON(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123")

	b, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"v1.2.0","date":"2026-10-01","commit":"abc123"}`, string(b))
}
