// Package version provides build information for the generate_version binary.
package version

import (
	goversion "github.com/caarlos0/go-version"
)

// Build-time variables injected via ldflags:
//
//	-X github.com/altuslabsxyz/generate-version/internal/version.Version={{.Version}}
//	-X github.com/altuslabsxyz/generate-version/internal/version.GitCommit={{.FullCommit}}
//	-X github.com/altuslabsxyz/generate-version/internal/version.BuildDate={{.Date}}
var (
	Version   = ""
	GitCommit = ""
	BuildDate = ""
)

const (
	appName        = "generate_version"
	appDescription = "Generate the SPRESENSE version header"
)

// Info returns the build information. Values injected at link time take
// precedence over what the Go toolchain embedded in the binary.
func Info() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(appName, appDescription, ""),
		func(i *goversion.Info) {
			if Version != "" {
				i.GitVersion = Version
			}
			if GitCommit != "" {
				i.GitCommit = GitCommit
			}
			if BuildDate != "" {
				i.BuildDate = BuildDate
			}
		},
	)
}

// String returns the human-readable build information.
func String() string {
	info := Info()
	return info.String()
}
