package types

import "fmt"

// UsageError reports malformed command line arguments or environment values.
type UsageError struct {
	Option  string
	Value   string
	Message string
	Err     error
}

func (usageError *UsageError) Error() string {
	description := usageError.Message
	if description == "" && usageError.Err != nil {
		description = usageError.Err.Error()
	}
	if usageError.Option == "" {
		return fmt.Sprintf("usage error: %s", description)
	}
	return fmt.Sprintf("usage error: invalid value %q for %s: %s", usageError.Value, usageError.Option, description)
}

func (usageError *UsageError) Unwrap() error { return usageError.Err }

// PathError reports a root path that is missing, not a directory, or unlistable.
type PathError struct {
	Path string
	Err  error
}

func (pathError *PathError) Error() string {
	return fmt.Sprintf("path error: %s: %v", pathError.Path, pathError.Err)
}

func (pathError *PathError) Unwrap() error { return pathError.Err }

// PermissionError reports a single directory or file that could not be read.
// It is recorded as a warning and never aborts a run.
type PermissionError struct {
	Path string
	Err  error
}

func (permissionError *PermissionError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", permissionError.Path, permissionError.Err)
}

func (permissionError *PermissionError) Unwrap() error { return permissionError.Err }

// ClipboardError reports a failed write to the system clipboard.
type ClipboardError struct {
	Err error
}

func (clipboardError *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard error: %v", clipboardError.Err)
}

func (clipboardError *ClipboardError) Unwrap() error { return clipboardError.Err }
