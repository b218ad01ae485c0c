package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const fieldSeparator = "\x00"

// EncodeMultiFieldToken creates an opaque, URL-safe token from any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(fields, fieldSeparator)))
}

// DecodeMultiFieldToken decodes a token into exactly want fields.
func DecodeMultiFieldToken(token string, want int) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	parts := strings.Split(string(decodedBytes), fieldSeparator)
	if len(parts) != want {
		return nil, fmt.Errorf("invalid pagination token format (expected %d fields, got %d)", want, len(parts))
	}
	return parts, nil
}

// EncodeClaimCursor creates the token that resumes a holder's claim listing after
// the given (beneficiary, code) position.
func EncodeClaimCursor(beneficiary, code string) string {
	return EncodeMultiFieldToken(beneficiary, code)
}

// DecodeClaimCursor parses a token created by EncodeClaimCursor.
func DecodeClaimCursor(token string) (beneficiary string, code string, err error) {
	parts, err := DecodeMultiFieldToken(token, 2)
	if err != nil {
		return "", "", err
	}
	if parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid pagination token format (empty field)")
	}
	return parts[0], parts[1], nil
}
