package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/services"
	"github.com/SscSPs/loyalty_token_ledger/internal/middleware"
)

// signerAuthorizer checks identities against the signer set the auth
// middleware placed in the request context.
type signerAuthorizer struct{}

// NewSignerAuthorizer creates the default Authorizer.
func NewSignerAuthorizer() portssvc.Authorizer {
	return signerAuthorizer{}
}

var _ portssvc.Authorizer = signerAuthorizer{}

func (signerAuthorizer) RequireAuth(ctx context.Context, name domain.Name) error {
	if !middleware.HasSigner(ctx, name) {
		return fmt.Errorf("%w of %s", apperrors.ErrMissingAuthority, name)
	}
	return nil
}
