package scaffold

// CreationStatus classifies the outcome of one path entry.
type CreationStatus int

const (
	// StatusCreated means the directory or file exists with its intended
	// content.
	StatusCreated CreationStatus = iota
	// StatusSkipped means a file entry had no fragment content, so no file
	// was written. Not an error.
	StatusSkipped
	// StatusFailed means resolution or I/O failed for this entry only.
	StatusFailed
)

func (s CreationStatus) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CreationResult is the per-entry outcome of materialization.
type CreationResult struct {
	// Pattern is the path entry as declared in the template.
	Pattern string
	// Path is the resolved absolute path; empty when resolution failed.
	Path string
	// Dir reports whether the entry classified as a directory.
	Dir    bool
	Status CreationStatus
	Err    error
}

// HookResult is the per-command outcome of hook execution.
type HookResult struct {
	// Command is the resolved command line, or the raw pattern when
	// resolution failed.
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

// Failed reports whether the command could not run or exited non-zero.
func (h HookResult) Failed() bool {
	return h.Err != nil || h.ExitCode != 0
}

// ProjectResult aggregates one project-creation run.
type ProjectResult struct {
	Template string
	BasePath string
	Entries  []CreationResult
	Hooks    []HookResult
	// HooksOK is false when any hook command failed. Hook failures degrade
	// the run but never fail it.
	HooksOK bool
}

// Created counts entries that materialized successfully.
func (r ProjectResult) Created() int {
	n := 0
	for _, entry := range r.Entries {
		if entry.Status == StatusCreated {
			n++
		}
	}
	return n
}

// Success reports the overall outcome: at least one entry created.
func (r ProjectResult) Success() bool {
	return r.Created() > 0
}
