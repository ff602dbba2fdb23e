// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// # Opaque Tokens

// GenerateSecureToken returns a URL-safe random token built from byteLength
// bytes of crypto/rand entropy.
//
// The encoded string is longer than byteLength; callers size storage for the
// encoded form, not the raw entropy.
func GenerateSecureToken(byteLength int) (string, error) {
	raw := make([]byte, byteLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("auth: failed to generate secure token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// HashToken returns the hex-encoded SHA-256 digest of a token.
//
// Only the digest is persisted. A leaked sessions table cannot be replayed
// because the original token is never stored.
func HashToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}
