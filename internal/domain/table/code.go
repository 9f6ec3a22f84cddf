package table

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	CodeLength      = 8
	codeCharset     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	MaxCodeAttempts = 10
)

// NewCode returns a random lookup code of CodeLength characters from [A-Z0-9].
func NewCode() (string, error) {
	var b strings.Builder
	b.Grow(CodeLength)

	max := big.NewInt(int64(len(codeCharset)))
	for i := 0; i < CodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("table code: %w", err)
		}
		b.WriteByte(codeCharset[n.Int64()])
	}
	return b.String(), nil
}

// QRURL is the public ordering link printed on a table's QR code.
func QRURL(baseURL, restaurantID, code string) string {
	return fmt.Sprintf("%s/m/%s/%s", strings.TrimRight(baseURL, "/"), restaurantID, code)
}
