package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
)

// MaxPrecision is the largest number of decimal places a symbol may carry.
const MaxPrecision = 18

// maxCodeLength is the longest allowed symbol code.
const maxCodeLength = 7

// Symbol identifies a fungible currency by precision and code (e.g. "4,SYS").
// Two symbols are equal only when both parts match.
type Symbol struct {
	Precision uint8
	Code      string
}

// NewSymbol builds a Symbol without validating it.
func NewSymbol(precision uint8, code string) Symbol {
	return Symbol{Precision: precision, Code: code}
}

// IsValidSymbolCode reports whether code is 1-7 uppercase ASCII letters.
func IsValidSymbolCode(code string) bool {
	if len(code) == 0 || len(code) > maxCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// IsValid reports whether the symbol has a well-formed code and a supported precision.
func (s Symbol) IsValid() bool {
	return s.Precision <= MaxPrecision && IsValidSymbolCode(s.Code)
}

// String returns the "precision,CODE" form.
func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Precision, s.Code)
}

// MarshalText implements encoding.TextMarshaler.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Symbol) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSymbol parses the "precision,CODE" form.
func ParseSymbol(str string) (Symbol, error) {
	parts := strings.Split(strings.TrimSpace(str), ",")
	if len(parts) != 2 {
		return Symbol{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidSymbol, str)
	}

	precision, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Symbol{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidSymbol, str)
	}

	sym := Symbol{Precision: uint8(precision), Code: parts[1]}
	if !sym.IsValid() {
		return Symbol{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidSymbol, str)
	}
	return sym, nil
}
