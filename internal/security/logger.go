package security

import (
	"fmt"

	"github.com/sgaunet/bullets"
)

// DebugRemote logs the remote a link is built from, with credentials redacted.
func DebugRemote(logger *bullets.Logger, name, remoteURL string) {
	if logger == nil {
		return
	}
	logger.Debug(fmt.Sprintf("Using remote %s: %s", name, RedactRemoteURL(remoteURL)))
	if ContainsCredentials(remoteURL) {
		logger.Debug("Remote URL embeds credentials; they are dropped from the link")
	}
}

// DebugToken logs which kind of authentication an API client uses.
func DebugToken(logger *bullets.Logger, service string, token SecureToken) {
	if logger == nil {
		return
	}
	if token.IsEmpty() {
		logger.Debug(service + " API: anonymous access")
		return
	}
	logger.Debug(fmt.Sprintf("%s API: using token %s", service, token))
}
