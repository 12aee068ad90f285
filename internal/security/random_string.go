package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString draws length characters uniformly from alphabet with
// crypto/rand. The reset command uses it for temporary passwords, so bias
// toward any character would weaken the handed-out credential.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if alphabet == "" {
		return "", errEmptyAlphabet
	}

	bound := big.NewInt(int64(len(alphabet)))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		index, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return "", err
		}
		builder.WriteByte(alphabet[index.Int64()])
	}
	return builder.String(), nil
}
