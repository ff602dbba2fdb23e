// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeplebay/meeplebay/internal/platform/sec"
)

/*
TestGenerateSecureToken verifies entropy sizing and per-call uniqueness.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	// 1. 32 bytes of entropy encode to 43 URL-safe characters (no padding).
	assert.Len(t, first, 43)

	// 2. Two calls never collide.
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

/*
TestHashToken verifies that the digest is deterministic, hex-encoded, and
distinct across inputs.
*/
func TestHashToken(t *testing.T) {
	hash := sec.HashToken("refresh-token-value")

	// 1. SHA-256 digests are 64 hex characters.
	assert.Len(t, hash, 64)
	assert.Regexp(t, "^[0-9a-f]+$", hash)

	// 2. Deterministic for session lookup by hash.
	assert.Equal(t, hash, sec.HashToken("refresh-token-value"))

	// 3. Distinct tokens produce distinct digests.
	assert.NotEqual(t, hash, sec.HashToken("other-token-value"))
}
