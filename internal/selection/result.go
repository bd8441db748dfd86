// Package selection describes what the picker hands back to its caller and
// how that description is assembled from the filesystem.
package selection

import "time"

// Result is the outcome of a picker session.
//
// On success exactly one of FilePath and FolderPath is set. When ErrorMessage
// is set the remaining fields must be ignored. A Result whose ten fields are all
// nil means the user cancelled.
type Result struct {
	// FilePath is set when a file was chosen.
	FilePath *string `json:"file_path"`
	// FolderPath is set when a directory was chosen.
	FolderPath *string `json:"folder_path"`
	// LastModified is the modification time.
	LastModified *time.Time `json:"last_modified"`
	// Created is the creation time, or its closest platform approximation.
	Created *time.Time `json:"created"`
	// SizeBytes is the file size, or the recursive total for a directory.
	SizeBytes *int64 `json:"size_bytes"`
	// Readonly reports a missing owner write permission.
	Readonly *bool `json:"readonly"`
	// FolderHasVenv reports a Python virtual environment in the chosen folder.
	FolderHasVenv *bool `json:"folder_has_venv"`
	// IsSymlink reports that the chosen path is a symbolic link.
	IsSymlink *bool `json:"is_symlink"`
	// SymlinkBroken reports a symbolic link whose target does not exist.
	SymlinkBroken *bool `json:"symlink_broken"`
	// ErrorMessage describes why metadata could not be gathered.
	ErrorMessage *string `json:"error_message"`
}

// Cancelled returns the all-nil Result that signals a cancelled session.
func Cancelled() Result {
	return Result{}
}

// Failed returns a Result carrying only the path and the failure description.
func Failed(path string, isDir bool, err error) Result {
	var r Result
	if isDir {
		r.FolderPath = &path
	} else {
		r.FilePath = &path
	}

	msg := err.Error()
	r.ErrorMessage = &msg

	return r
}

// IsCancelled reports whether every field is nil.
func (r Result) IsCancelled() bool {
	for _, field := range r.Fields() {
		if field != nil {
			return false
		}
	}

	return true
}

// HasError reports whether metadata collection failed.
func (r Result) HasError() bool {
	return r.ErrorMessage != nil
}

// IsDir reports whether a folder was chosen.
func (r Result) IsDir() bool {
	return r.FolderPath != nil
}

// Path returns the chosen file or folder, or "" when neither is set.
func (r Result) Path() string {
	switch {
	case r.FilePath != nil:
		return *r.FilePath
	case r.FolderPath != nil:
		return *r.FolderPath
	default:
		return ""
	}
}

// Fields returns the ten fields in declaration order. Unset fields are
// untyped nil so callers can compare them against nil directly.
func (r Result) Fields() []any {
	return []any{
		ptrOrNil(r.FilePath),
		ptrOrNil(r.FolderPath),
		ptrOrNil(r.LastModified),
		ptrOrNil(r.Created),
		ptrOrNil(r.SizeBytes),
		ptrOrNil(r.Readonly),
		ptrOrNil(r.FolderHasVenv),
		ptrOrNil(r.IsSymlink),
		ptrOrNil(r.SymlinkBroken),
		ptrOrNil(r.ErrorMessage),
	}
}

func ptrOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}

	return *p
}
