package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

const phoneHashPrefix = "sha256:"

// HashPhone returns the stable pseudonymous identifier stored in place of a
// caller's phone number. Already-hashed values pass through unchanged so
// webhook payloads carrying either form normalize to the same key.
func HashPhone(phone string) string {
	if strings.HasPrefix(phone, phoneHashPrefix) {
		return phone
	}
	sum := sha256.Sum256([]byte(strings.TrimSpace(phone)))
	return phoneHashPrefix + hex.EncodeToString(sum[:])
}

func GenerateSecureCode() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

func MustGenerateSecureCode() string {
	code, err := GenerateSecureCode()
	if err != nil {
		panic("failed to generate secure code: " + err.Error())
	}
	return code
}
