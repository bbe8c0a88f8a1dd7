// Package urlutil parses git remote URLs and rewrites them into the canonical
// HTTPS form used to build web links.
//
// It handles three URL formats:
//   - HTTPS: https://github.com/owner/repo.git
//   - SSH protocol: ssh://git@host:7999/project/repo.git
//   - SSH colon (SCP-like): git@github.com:owner/repo.git
//
// Anything else is passed through untouched.
package urlutil

import (
	"regexp"
	"strings"
)

// Form is the syntax a remote URL was written in.
type Form int

const (
	// FormOther is any remote the parser does not recognise (local paths,
	// git://, file://). It is passed through unchanged.
	FormOther Form = iota
	// FormHTTPS is http:// or https://.
	FormHTTPS
	// FormSSH is ssh://[user@]host[:port]/path.
	FormSSH
	// FormSCP is [user@]host:path.
	FormSCP
)

const (
	schemeSeparator = "://"
	sshScheme       = "ssh"
	httpsScheme     = "https"
)

// scpRemote matches the SCP-like syntax git accepts for SSH remotes.
var scpRemote = regexp.MustCompile(`^(?:([^@/\s]+)@)?([^:/\s]{2,}):(.*)$`)

// Remote is a structured view of a git remote URL.
type Remote struct {
	Form   Form
	Scheme string
	User   string
	Host   string
	// Port is the text after the host colon. In ssh:// remotes it is not
	// always numeric (ssh://git@github.com:owner/repo.git).
	Port string
	// Path has no leading slash and keeps any .git suffix.
	Path string
	Raw  string
}

// ParseRemote splits a remote URL into its parts. It never fails; unknown
// syntaxes come back as [FormOther] with only Raw set.
func ParseRemote(raw string) Remote {
	remote := Remote{Form: FormOther, Raw: raw}

	scheme, rest, hasScheme := strings.Cut(raw, schemeSeparator)
	if hasScheme {
		switch strings.ToLower(scheme) {
		case "http", httpsScheme:
			remote.Form = FormHTTPS
		case sshScheme:
			remote.Form = FormSSH
		default:
			return remote
		}
		remote.Scheme = strings.ToLower(scheme)
		authority, path, _ := strings.Cut(rest, "/")
		remote.User, remote.Host, remote.Port = splitAuthority(authority)
		remote.Path = path
		return remote
	}

	if matches := scpRemote.FindStringSubmatch(raw); matches != nil {
		remote.Form = FormSCP
		remote.User = matches[1]
		remote.Host = matches[2]
		remote.Path = strings.TrimPrefix(matches[3], "/")
	}

	return remote
}

// splitAuthority breaks "user:pass@host:port" apart. Credentials are
// returned as a single user string. A bracketed IPv6 host keeps its
// brackets; only a ':' after the closing ']' starts the port. An
// unterminated bracket yields an empty host.
func splitAuthority(authority string) (user, host, port string) {
	if at := strings.LastIndex(authority, "@"); at >= 0 {
		user = authority[:at]
		authority = authority[at+1:]
	}

	if strings.HasPrefix(authority, "[") {
		end := strings.Index(authority, "]")
		if end < 0 {
			return user, "", ""
		}
		host, rest := authority[:end+1], authority[end+1:]
		port = strings.TrimPrefix(rest, ":")
		if port == rest {
			port = ""
		}
		return user, host, port
	}

	host, port, _ = strings.Cut(authority, ":")
	return user, host, port
}

// sshWebHosts maps the SSH-over-443 endpoints of hosted providers to the
// host serving their web UI.
var sshWebHosts = map[string]string{
	"ssh.github.com":       "github.com",
	"altssh.bitbucket.org": "bitbucket.org",
}

// Hosted returns r adjusted for github.com and bitbucket.org, whose web
// paths never carry a port: a numeric ssh:// port is dropped and SSH
// endpoints are mapped to the web host. Non-numeric ssh:// "ports" are path
// segments and are kept.
func (r Remote) Hosted() Remote {
	if r.Form != FormSSH {
		return r
	}
	if isNumeric(r.Port) {
		r.Port = ""
	}
	if web, ok := sshWebHosts[strings.ToLower(r.Host)]; ok {
		r.Host = web
	}
	return r
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Canonical renders the remote as an HTTPS URL without credentials.
// ssh:// ports become the first path segment; HTTPS ports stay on the host.
// A recognised remote without a host renders as "".
func (r Remote) Canonical() string {
	if r.Form != FormOther && r.Host == "" {
		return ""
	}

	var b strings.Builder

	switch r.Form {
	case FormHTTPS:
		b.WriteString(r.Scheme + schemeSeparator + r.Host)
		if r.Port != "" {
			b.WriteString(":" + r.Port)
		}
	case FormSSH:
		b.WriteString(httpsScheme + schemeSeparator + r.Host)
		if r.Port != "" {
			b.WriteString("/" + r.Port)
		}
	case FormSCP:
		b.WriteString(httpsScheme + schemeSeparator + r.Host)
	case FormOther:
		return r.Raw
	default:
		return r.Raw
	}

	if r.Path != "" {
		b.WriteString("/" + r.Path)
	}
	return b.String()
}
