// Package version carries build metadata, set with -ldflags at release time:
//
//	go build -ldflags "-X github.com/jeanpaul/rolodex/pkg/version.Version=v1.2.0"
package version

var (
	Version = "dev"
	Commit  = "none"
)

// String is the single-line form printed by `rolodex version`.
func String() string {
	return "rolodex " + Version + " (" + Commit + ")"
}
