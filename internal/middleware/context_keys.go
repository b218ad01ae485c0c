package middleware

import (
	"context"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
)

// signersCtxKey is the key used to store the proven identities of a request.
const signersCtxKey = contextKey("signers")

// WithSigners returns a copy of ctx carrying the given signer set.
func WithSigners(ctx context.Context, signers ...domain.Name) context.Context {
	set := make(map[domain.Name]struct{}, len(signers))
	for _, s := range signers {
		set[s] = struct{}{}
	}
	return context.WithValue(ctx, signersCtxKey, set)
}

// GetSignersFromCtx retrieves the signer set of the request.
// It returns the set and a boolean indicating if it was found.
func GetSignersFromCtx(ctx context.Context) (map[domain.Name]struct{}, bool) {
	set, ok := ctx.Value(signersCtxKey).(map[domain.Name]struct{})
	return set, ok
}

// HasSigner reports whether name proved its identity for the request.
func HasSigner(ctx context.Context, name domain.Name) bool {
	set, ok := GetSignersFromCtx(ctx)
	if !ok {
		return false
	}
	_, found := set[name]
	return found
}
