package validator

import (
	"fmt"

	"github.com/dmitrymomot/infovalid/pkg/logger"
)

const (
	idNumberLen     = 18
	idNumberBodyLen = idNumberLen - 1
)

var (
	idWeights    = [idNumberBodyLen]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
	idCheckChars = [11]byte{'1', '0', 'X', '9', '8', '7', '6', '5', '4', '3', '2'}
)

// IsIDNumber reports whether s is a national ID number in the 18-character
// form with a valid check character, or in the legacy 15-digit form.
// Legacy numbers carry no check character and are accepted on structure alone.
// A lowercase 'x' check character is accepted.
func IsIDNumber(s string) bool {
	if s == "" {
		return false
	}
	if !idNumberRegex.MatchString(s) {
		return false
	}
	if len(s) != idNumberLen {
		return true
	}

	want, err := CheckDigit(s[:idNumberBodyLen])
	if err != nil {
		pkgLogger().Debug("id number checksum failed",
			logger.Component("validator"),
			logger.Kind(string(KindIDNumber)),
			logger.Error(err),
		)
		return false
	}
	return want == upperASCII(s[idNumberBodyLen])
}

// CheckDigit computes the check character for the first 17 digits of an
// 18-character ID number: the weighted digit sum modulo 11 mapped through
// the check table. The result is one of '0'..'9' or 'X'.
func CheckDigit(body string) (byte, error) {
	if len(body) != idNumberBodyLen {
		return 0, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidIDLength, len(body), idNumberBodyLen)
	}

	sum := 0
	for i := range idNumberBodyLen {
		c := body[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, c, i)
		}
		sum += int(c-'0') * idWeights[i]
	}
	return idCheckChars[sum%11], nil
}

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
