package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
)

// KeySize random bytes of a permission key
const KeySize = 32

// RandomKey random url safe key
func RandomKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(key), nil
}

// HashKey sha256 hex of key
func HashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// VerifyKey compare key with hash in constant time
func VerifyKey(key, hash string) bool {
	if key == "" || hash == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(HashKey(key)), []byte(hash)) == 1
}
