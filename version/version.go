// Package version reports the version of the chip8web tools. The version
// number is set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/chip8web/version.number=v1.0.0"
//
// Without a number the version is derived from the module build information.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the project
const ApplicationName = "chip8web"

// if number is empty then the binary was not built with a version number
var number string

// revision contains the vcs revision, suffixed with "+dirty" if the working
// tree had uncommitted changes
var revision string

// version is the number if there is one. otherwise it is "unreleased" when vcs
// information is available and "local" when it is not
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a one line description of the named command suitable for
// the --version flag.
func String(command string) string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s (%s) %s", command, ApplicationName, ver)
	}
	return fmt.Sprintf("%s (%s) %s %s", command, ApplicationName, ver, rev)
}

func init() {
	revision, version = fromBuildInfo(debug.ReadBuildInfo())
}

func fromBuildInfo(info *debug.BuildInfo, ok bool) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	if ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return rev, number
	case vcs:
		return rev, "unreleased"
	}
	return rev, "local"
}
