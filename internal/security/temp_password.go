package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// tempPasswordAlphabet avoids lookalike characters (0/O, 1/l/I) so the value
// can be read off a terminal and typed back without mistakes.
const tempPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const minTempPasswordLength = 8

var errEmptyAlphabet = errors.New("alphabet must not be empty")

// TempPassword returns a cryptographically secure one-time password of at
// least minTempPasswordLength characters.
func TempPassword(length int) (string, error) {
	if length < minTempPasswordLength {
		length = minTempPasswordLength
	}
	return randomString(length, tempPasswordAlphabet)
}

// randomString draws each position uniformly from the alphabet, rejecting the
// modulo bias a plain remainder would introduce.
func randomString(length int, alphabet string) (string, error) {
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}
