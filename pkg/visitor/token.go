package visitor

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

const (
	tokenBytes = 32
	// TokenLength is the encoded length of a visitor token.
	TokenLength = 43
)

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ValidToken reports whether s has the shape of a token minted by this
// package. Anything else is rejected before it can be used as a store key.
func ValidToken(s string) bool {
	if len(s) != TokenLength {
		return false
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	return err == nil && len(b) == tokenBytes
}
