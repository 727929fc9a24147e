// Package buildinfo holds version information stamped in at build time.
//
//	go build -ldflags "-X github.com/koopamoopa/Decoding-Unicode/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/koopamoopa/Decoding-Unicode/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/koopamoopa/Decoding-Unicode/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/decode
package buildinfo

import "fmt"

// Name is the program name used in version output and the User-Agent.
const Name = "decode"

// Set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}

// UserAgent returns the default User-Agent for outgoing requests,
// e.g. "decode/v1.0.0".
func UserAgent() string {
	return Name + "/" + Version
}
