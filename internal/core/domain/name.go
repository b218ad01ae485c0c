package domain

// maxNameLength is the longest allowed identity name.
const maxNameLength = 12

// Name is an account identity on the ledger (owner, issuer, exchange, admin).
type Name string

// IsValid reports whether the name is 1-12 characters from [a-z1-5.] and
// does not end with a dot.
func (n Name) IsValid() bool {
	if len(n) == 0 || len(n) > maxNameLength || n[len(n)-1] == '.' {
		return false
	}
	for i := 0; i < len(n); i++ {
		c := n[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '1' && c <= '5':
		case c == '.':
		default:
			return false
		}
	}
	return true
}

func (n Name) String() string {
	return string(n)
}
