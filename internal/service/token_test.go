package service

import (
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var urlSafe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func TestGenerateToken_URLSafe(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)

	assert.Regexp(t, urlSafe, token)

	decoded, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, tokenBytes)
}

func TestGenerateToken_Unique(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		token, err := GenerateToken()
		require.NoError(t, err)
		require.False(t, seen[token], "duplicate token after %d generations", i)
		seen[token] = true
	}
}
