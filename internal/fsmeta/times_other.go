//go:build !linux && !darwin

package fsmeta

import "io/fs"

// platformTimes keeps the modification time for every field.
func platformTimes(string, fs.FileInfo, bool, *Times) {}
