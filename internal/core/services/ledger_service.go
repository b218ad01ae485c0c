package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/services"
	"github.com/SscSPs/loyalty_token_ledger/internal/metrics"
)

// Roles names the two privileged identities of the ledger.
type Roles struct {
	// Admin creates symbols and wipes state.
	Admin domain.Name
	// Exchange co-signs every hold and settlement.
	Exchange domain.Name
}

// ledgerService implements every ledger action on top of a LedgerStore.
type ledgerService struct {
	BaseService
	store          portsrepo.LedgerStore
	roles          Roles
	authorizer     portssvc.Authorizer
	notifier       portssvc.Notifier
	metrics        *metrics.Ledger
	defaultVersion domain.VersionState

	// mu serializes units of work.
	mu sync.Mutex
}

// LedgerOption is a functional option for configuring the ledger service
type LedgerOption func(*ledgerService)

// WithAuthorizer replaces the signer-set authorizer.
func WithAuthorizer(a portssvc.Authorizer) LedgerOption {
	return func(s *ledgerService) {
		s.authorizer = a
	}
}

// WithNotifier replaces the log notifier.
func WithNotifier(n portssvc.Notifier) LedgerOption {
	return func(s *ledgerService) {
		s.notifier = n
	}
}

// WithMetrics records action outcomes.
func WithMetrics(m *metrics.Ledger) LedgerOption {
	return func(s *ledgerService) {
		s.metrics = m
	}
}

// WithDefaultVersion sets the VersionState used when none is stored.
func WithDefaultVersion(v domain.VersionState) LedgerOption {
	return func(s *ledgerService) {
		s.defaultVersion = v
	}
}

func newLedgerService(store portsrepo.LedgerStore, roles Roles, options ...LedgerOption) *ledgerService {
	svc := &ledgerService{
		store:      store,
		roles:      roles,
		authorizer: NewSignerAuthorizer(),
		notifier:   NewLogNotifier(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// unitOfWork is the state visible to one action while it runs.
type unitOfWork struct {
	tx            portsrepo.LedgerTx
	session       *versionSession
	notifications []domain.Notification
}

func (u *unitOfWork) notify(n domain.Notification) {
	u.notifications = append(u.notifications, n)
}

// execute runs fn as one atomic unit of work. Nothing fn wrote is visible
// unless fn, the version session and the storage commit all succeed.
// Notifications are delivered only after the commit.
func (s *ledgerService) execute(ctx context.Context, action domain.Action, fn func(ctx context.Context, uow *unitOfWork) error) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveAction(string(action), err, started)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.store.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin unit of work", slog.String("action", string(action)))
		return err
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.store.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back unit of work", slog.String("action", string(action)))
		}
	}()

	session, err := openSession(ctx, tx.Version(), s.defaultVersion)
	if err != nil {
		s.LogError(ctx, err, "Failed to open version session", slog.String("action", string(action)))
		return err
	}

	uow := &unitOfWork{tx: tx, session: session}
	if err = fn(ctx, uow); err != nil {
		if isRejection(err) {
			s.LogWarn(ctx, err, "Ledger action rejected", slog.String("action", string(action)))
		} else {
			s.LogError(ctx, err, "Ledger action failed", slog.String("action", string(action)))
		}
		return err
	}

	if err = session.commit(ctx); err != nil {
		s.LogError(ctx, err, "Failed to commit version session", slog.String("action", string(action)))
		return err
	}
	if err = s.store.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit unit of work", slog.String("action", string(action)))
		return err
	}
	committed = true

	for _, n := range uow.notifications {
		s.notifier.Notify(ctx, n)
		s.metrics.ObserveNotification(n.Action)
	}

	s.LogInfo(ctx, "Ledger action applied", slog.String("action", string(action)))
	return nil
}

// query runs a read-only fn on a consistent view of the store. Reads do not
// take the unit-of-work lock.
func (s *ledgerService) query(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	started := time.Now()
	tx, err := s.store.BeginRead(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin read")
		return err
	}
	defer func() {
		if rbErr := s.store.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to release read")
		}
	}()

	err = fn(ctx, tx)
	s.LogDebug(ctx, "Ledger read served",
		slog.String("backend", s.store.Backend()),
		slog.Duration("elapsed", time.Since(started)),
		slog.Bool("ok", err == nil))
	return err
}

// isRejection reports whether err is a caller mistake rather than an infrastructure fault.
func isRejection(err error) bool {
	return metrics.Status(err) != "error"
}
