package rtctoken

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAppID       = "970ca35de60c44645bbae8a215061b33"
	testCertificate = "5cfd2fd1755d40ecb72977518be15d3b"
)

func TestAgora_Configured(t *testing.T) {
	assert.True(t, NewAgora(testAppID, testCertificate).Configured())
	assert.False(t, NewAgora("", testCertificate).Configured())
	assert.False(t, NewAgora(testAppID, "").Configured())
	assert.False(t, NewAgora("", "").Configured())
}

func TestAgora_BuildToken(t *testing.T) {
	builder := NewAgora(testAppID, testCertificate)

	token, err := builder.BuildToken("1735725600000-abc123", 0, 3600)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// AccessToken2 credentials carry the "007" version prefix.
	assert.True(t, strings.HasPrefix(token, "007"))

	other, err := builder.BuildToken("1735725600000-xyz789", 0, 3600)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
