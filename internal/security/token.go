// Package security keeps credentials out of logs and error messages:
// remote URLs with embedded users or passwords, and the optional GitHub
// token used for default branch lookups.
package security

import "fmt"

const (
	// Tokens shorter than this are fully redacted.
	minTokenLengthForPartialMask = 8
	// Number of trailing characters shown for longer tokens.
	maskShowChars = 4

	maskEmpty    = "[empty]"
	maskRedacted = "[redacted]"
)

// SecureToken holds a secret whose String, GoString and %v forms are masked.
//
//	token := NewSecureToken("ghp_secret123456")
//	fmt.Printf("%s", token) // [token:****3456]
type SecureToken struct {
	value string
}

// NewSecureToken wraps token.
func NewSecureToken(token string) SecureToken {
	return SecureToken{value: token}
}

// String returns the masked token.
func (t SecureToken) String() string {
	switch {
	case t.value == "":
		return maskEmpty
	case len(t.value) < minTokenLengthForPartialMask:
		return maskRedacted
	default:
		return fmt.Sprintf("[token:****%s]", t.value[len(t.value)-maskShowChars:])
	}
}

// GoString masks %#v output as well.
func (t SecureToken) GoString() string {
	return t.String()
}

// Value returns the real token. Only pass it to an HTTP client; never log it.
func (t SecureToken) Value() string {
	return t.value
}

// IsEmpty reports whether no token was provided.
func (t SecureToken) IsEmpty() bool {
	return t.value == ""
}
