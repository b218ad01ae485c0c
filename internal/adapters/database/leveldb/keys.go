package leveldb

import (
	"bytes"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
)

// Table prefixes. Every key starts with one of these bytes.
const (
	prefixStats   byte = 's'
	prefixSymbol  byte = 'y'
	prefixAccount byte = 'a'
	prefixClaim   byte = 'c'
	prefixState   byte = 'v'
)

// sep separates key parts. It sorts before every character allowed in names
// and symbol codes, so prefix scans return rows in lexical order of the parts.
const sep byte = 0x00

func compositeKey(prefix byte, parts ...string) []byte {
	var b bytes.Buffer
	b.WriteByte(prefix)
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(p)
	}
	return b.Bytes()
}

// scanPrefix is a key prefix ending with a separator, for per-owner scans.
func scanPrefix(prefix byte, parts ...string) []byte {
	return append(compositeKey(prefix, parts...), sep)
}

func statsKey(code string) []byte {
	return compositeKey(prefixStats, code)
}

func symbolKey(code string) []byte {
	return compositeKey(prefixSymbol, code)
}

func accountKey(owner domain.Name, code string) []byte {
	return compositeKey(prefixAccount, owner.String(), code)
}

func claimKey(k domain.ClaimKey) []byte {
	return compositeKey(prefixClaim, k.Holder.String(), k.Beneficiary.String(), k.Code)
}

var stateKey = []byte{prefixState}
