package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/repositories"
)

// versionSession holds the VersionState for one unit of work. It is loaded
// once when the unit starts and flushed once when it commits.
type versionSession struct {
	repo           portsrepo.VersionRepository
	state          domain.VersionState
	pendingRemoval bool
}

func openSession(ctx context.Context, repo portsrepo.VersionRepository, fallback domain.VersionState) (*versionSession, error) {
	state, found, err := repo.LoadVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load version state: %w", err)
	}
	if !found {
		state = fallback
	}
	return &versionSession{repo: repo, state: state}, nil
}

// markForRemoval makes commit delete the record instead of persisting it.
func (s *versionSession) markForRemoval() {
	s.pendingRemoval = true
}

func (s *versionSession) commit(ctx context.Context) error {
	if s.pendingRemoval {
		if err := s.repo.DeleteVersion(ctx); err != nil {
			return fmt.Errorf("failed to remove version state: %w", err)
		}
		return nil
	}
	if err := s.repo.SaveVersion(ctx, s.state); err != nil {
		return fmt.Errorf("failed to save version state: %w", err)
	}
	return nil
}
