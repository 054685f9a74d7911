// Package token turns lines of text into MIDI bytes.
package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Error reports a token that is not a valid number in range.
type Error struct {
	Token string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid token %q", e.Token)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// parseStrictly parses s as an integer of the given bit size that must
// not be negative. A "0x" prefix selects hex, a leading "0" octal,
// otherwise the token is decimal. One leading sign is allowed, so "-0"
// is zero. The whole token must be consumed.
func parseStrictly(s string, bitSize int) (uint64, error) {
	digits := s
	negative := false

	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		negative = digits[0] == '-'
		digits = digits[1:]
	}

	if strings.ContainsRune(digits, '_') || hasPrefixFold(digits, "0b") || hasPrefixFold(digits, "0o") {
		return 0, &Error{Token: s, Err: strconv.ErrSyntax}
	}

	n, err := strconv.ParseUint(digits, 0, bitSize)
	if err != nil {
		return 0, &Error{Token: s, Err: err}
	}

	if negative && n != 0 {
		return 0, &Error{Token: s, Err: strconv.ErrRange}
	}

	return n, nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// ParseByte parses one byte token, e.g. "64" or "0x7F".
func ParseByte(s string) (byte, error) {
	n, err := parseStrictly(s, 8)
	if err != nil {
		return 0, err
	}
	return byte(n), nil
}

// ParsePortNumber parses a port index in the range 0 to 2147483647.
func ParsePortNumber(s string) (int, error) {
	n, err := parseStrictly(s, 31)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Parse splits line on whitespace and parses every token as a byte.
// A blank line returns an empty slice. The first invalid token fails
// the whole line.
func Parse(line string) ([]byte, error) {
	fields := strings.Fields(line)
	b := make([]byte, 0, len(fields))

	for _, f := range fields {
		c, err := ParseByte(f)
		if err != nil {
			return nil, err
		}
		b = append(b, c)
	}

	return b, nil
}
