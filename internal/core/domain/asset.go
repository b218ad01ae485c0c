package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest absolute amount an Asset may hold (2^62 - 1).
const MaxAmount int64 = 1<<62 - 1

var maxAmountDecimal = decimal.NewFromInt(MaxAmount)

// Asset is an integer quantity of the smallest unit of a symbol.
// "10.0000 SYS" is Amount 100000 with Symbol 4,SYS.
type Asset struct {
	Amount int64
	Symbol Symbol
}

// NewAsset builds an Asset without validating it.
func NewAsset(amount int64, sym Symbol) Asset {
	return Asset{Amount: amount, Symbol: sym}
}

// IsValid reports whether the amount is in range and the symbol is well-formed.
func (a Asset) IsValid() bool {
	return a.Symbol.IsValid() && a.Amount >= -MaxAmount && a.Amount <= MaxAmount
}

// Decimal returns the amount scaled by the symbol precision.
func (a Asset) Decimal() decimal.Decimal {
	return decimal.New(a.Amount, -int32(a.Symbol.Precision))
}

// String returns the "10.0000 SYS" form.
func (a Asset) String() string {
	return a.Decimal().StringFixed(int32(a.Symbol.Precision)) + " " + a.Symbol.Code
}

// MarshalText implements encoding.TextMarshaler.
func (a Asset) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Asset) UnmarshalText(text []byte) error {
	parsed, err := ParseAsset(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAsset parses "10.0000 SYS". The precision is the number of digits
// written after the decimal point.
func ParseAsset(str string) (Asset, error) {
	fields := strings.Fields(str)
	if len(fields) != 2 {
		return Asset{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidQuantity, str)
	}
	number, code := fields[0], fields[1]

	if !IsValidSymbolCode(code) {
		return Asset{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidSymbol, str)
	}
	if strings.ContainsAny(number, "eE") {
		return Asset{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidQuantity, str)
	}

	precision := 0
	if dot := strings.IndexByte(number, '.'); dot >= 0 {
		precision = len(number) - dot - 1
	}
	if precision > MaxPrecision {
		return Asset{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidSymbol, str)
	}

	value, err := decimal.NewFromString(number)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidQuantity, str)
	}
	scaled := value.Shift(int32(precision))
	if !scaled.IsInteger() || scaled.Abs().GreaterThan(maxAmountDecimal) {
		return Asset{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidQuantity, str)
	}

	return Asset{
		Amount: scaled.IntPart(),
		Symbol: Symbol{Precision: uint8(precision), Code: code},
	}, nil
}

// SameSymbol reports whether both assets carry exactly the same symbol.
func (a Asset) SameSymbol(other Asset) bool {
	return a.Symbol == other.Symbol
}

// Neg returns the asset with its amount negated.
func (a Asset) Neg() Asset {
	return Asset{Amount: -a.Amount, Symbol: a.Symbol}
}
