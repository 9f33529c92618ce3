package utils

import (
	"crypto/rand"
	"math/big"
)

// CodeCharset is the alphabet for ticket validation codes: uppercase
// alphanumerics only, matched case-sensitively at validation time.
const CodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the fixed length of a validation code.
const CodeLength = 6

// GenerateValidationCode returns a fresh validation code for tickets created
// by live purchases. The seed generator uses its own deterministic source.
func GenerateValidationCode() (string, error) {
	code := make([]byte, CodeLength)
	max := big.NewInt(int64(len(CodeCharset)))

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = CodeCharset[n.Int64()]
	}

	return string(code), nil
}
