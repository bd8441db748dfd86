// Package fsmeta extracts the file metadata the picker displays and returns:
// timestamps the standard library does not expose portably, ls-style type
// indicators, and dot-file detection.
package fsmeta

import (
	"io/fs"
	"strings"
	"time"
)

// Times holds the timestamps of a file.
type Times struct {
	// Modified is the last content modification.
	Modified time.Time
	// Accessed is the last access, or Modified when the platform does not record it.
	Accessed time.Time
	// Created is the birth time where available, otherwise the best approximation.
	Created time.Time
}

// TimesOf returns the timestamps of the file at path described by info.
// follow controls whether a final symlink is resolved when querying the
// platform for the birth time; it must match how info was obtained.
func TimesOf(path string, info fs.FileInfo, follow bool) Times {
	t := Times{
		Modified: info.ModTime(),
		Accessed: info.ModTime(),
		Created:  info.ModTime(),
	}

	platformTimes(path, info, follow, &t)

	return t
}

// Indicator returns the ls -F style suffix for a file mode.
func Indicator(mode fs.FileMode) string {
	switch {
	case mode.IsDir():
		return "/"
	case mode&fs.ModeSymlink != 0:
		return "@"
	case mode&fs.ModeNamedPipe != 0:
		return "|"
	case mode&fs.ModeSocket != 0:
		return "="
	case mode.IsRegular() && mode.Perm()&0o111 != 0:
		return "*"
	default:
		return ""
	}
}

// IsHidden reports whether name is a dot-file.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// IsReadonly reports whether the owner write bit is absent.
func IsReadonly(mode fs.FileMode) bool {
	return mode.Perm()&0o200 == 0
}
