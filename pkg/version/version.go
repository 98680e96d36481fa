// Package version holds build information set by the linker.
package version

import "runtime"

// Version is set at build time with -ldflags "-X github.com/cloudposse/splitwatch/pkg/version.Version=v1.2.3".
var Version = "test"

// Info describes the running binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	OS        string `json:"os" yaml:"os"`
	Arch      string `json:"arch" yaml:"arch"`
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}
