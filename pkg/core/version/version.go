// ============================================================================
// drawlang - Drawing language toolchain
// ============================================================================
//
// Package:     version
// Description: Central version information for drawc
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version constants
const (
	// Tool is the drawc release
	Tool = "0.1.0"

	// Grammar versions the accepted language; bumped on grammar changes
	Grammar = "1"
)

// Info describes the running binary
type Info struct {
	Version   string
	Grammar   string
	Commit    string
	GoVersion string
	OS        string
	Arch      string
}

// Get collects version information, including the VCS revision when the
// binary was built from a checkout
func Get() Info {
	info := Info{
		Version:   Tool,
		Grammar:   Grammar,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				info.Commit = s.Value[:7]
			}
		}
	}
	return info
}

// String renders the one-line version banner
func (i Info) String() string {
	s := fmt.Sprintf("drawc %s (grammar %s)", i.Version, i.Grammar)
	if i.Commit != "" {
		s += " " + i.Commit
	}
	return fmt.Sprintf("%s %s %s/%s", s, i.GoVersion, i.OS, i.Arch)
}
