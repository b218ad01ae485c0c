package services

import (
	portsrepo "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container. All facades share one
// ledger service so that every action is serialized by the same lock.
func NewServiceContainer(store portsrepo.LedgerStore, roles Roles, options ...LedgerOption) *portssvc.ServiceContainer {
	ledger := newLedgerService(store, roles, options...)

	return &portssvc.ServiceContainer{
		Token:  ledger,
		Escrow: ledger,
		Admin:  ledger,
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvcFacade  = (*ledgerService)(nil)
	_ portssvc.EscrowSvcFacade = (*ledgerService)(nil)
	_ portssvc.AdminSvc        = (*ledgerService)(nil)
)
