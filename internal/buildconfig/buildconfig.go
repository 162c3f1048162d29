// Package buildconfig exposes build identity stamped in via ldflags:
//
//	-ldflags "-X .../internal/buildconfig.version=v1.2.0 -X .../internal/buildconfig.commit=$(git rev-parse --short HEAD)"
package buildconfig

var (
	version = "dev"
	commit  = "unknown"
)

// Version is the release tag the binary was built from.
func Version() string {
	return version
}

// Commit is the source revision the binary was built from.
func Commit() string {
	return commit
}
