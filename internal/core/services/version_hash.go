package services

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	"golang.org/x/crypto/blake2b"
)

// HashReader returns the hex BLAKE2b-256 digest of everything r yields.
func HashReader(r io.Reader) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ExecutableHash digests the running binary, identifying the deployed ledger logic.
func ExecutableHash() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open executable: %w", err)
	}
	defer f.Close()

	return HashReader(f)
}

// DefaultVersionState builds the record used when none is stored.
// The hash is left empty when the binary cannot be read.
func DefaultVersionState(version string) domain.VersionState {
	hash, err := ExecutableHash()
	if err != nil {
		hash = ""
	}
	return domain.VersionState{Version: version, Hash: hash}
}
