package transform

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash/crc32"

	"textforge/pkg/errors"
)

// MD5Hash returns the hex MD5 digest of input.
func MD5Hash(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA1Hash returns the hex SHA-1 digest of input.
func SHA1Hash(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA256Hash returns the hex SHA-256 digest of input.
func SHA256Hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA512Hash returns the hex SHA-512 digest of input.
func SHA512Hash(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HMACSHA256 returns the hex HMAC-SHA256 of input under the given secret.
// An empty secret is rejected.
func HMACSHA256(s, secret string) (string, error) {
	if secret == "" {
		return "", errors.NewTransformError("a secret key is required")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(s))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// CRC32Checksum returns the IEEE CRC-32 checksum of input as 8 hex digits.
func CRC32Checksum(s string) string {
	return fmt.Sprintf("%08x", crc32.ChecksumIEEE([]byte(s)))
}
