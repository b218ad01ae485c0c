package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that a required identity did not authorize the operation.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvariant indicates that the operation would break a ledger invariant.
var ErrInvariant = errors.New("ledger invariant violated")

// Validation errors.
var (
	ErrInvalidSymbol   = fmt.Errorf("%w: invalid symbol name", ErrValidation)
	ErrInvalidSupply   = fmt.Errorf("%w: invalid supply", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: invalid quantity", ErrValidation)
	ErrInvalidName     = fmt.Errorf("%w: invalid account name", ErrValidation)
	ErrMemoTooLong     = fmt.Errorf("%w: memo has more than 256 bytes", ErrValidation)
)

// ErrMissingAuthority is returned when an identity required by the action is not among the signers.
var ErrMissingAuthority = fmt.Errorf("%w: missing required authority", ErrUnauthorized)

// Not-found errors.
var (
	ErrSymbolNotFound = fmt.Errorf("%w: symbol not found", ErrNotFound)
	ErrNoBalance      = fmt.Errorf("%w: no balance object found", ErrNotFound)
	ErrNoClaim        = fmt.Errorf("%w: no claim found", ErrNotFound)
)

// ErrSymbolExists is returned by create when stats for the symbol already exist.
var ErrSymbolExists = fmt.Errorf("%w: token with symbol already exists", ErrDuplicate)

// Invariant-violation errors.
var (
	ErrSymbolMismatch = fmt.Errorf("%w: symbol precision mismatch", ErrInvariant)
	ErrSupplyExceeded = fmt.Errorf("%w: quantity exceeds available supply", ErrInvariant)
	ErrOverdrawn      = fmt.Errorf("%w: overdrawn balance", ErrInvariant)
	ErrOverdrawnClaim = fmt.Errorf("%w: overdrawn claim", ErrInvariant)
)

// AppError carries an HTTP-ish status code alongside a wrapped cause.
// Storage adapters use it for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}
