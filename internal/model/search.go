// Package model defines the data structures shared by the search pipeline.
package model

// Path represents a file system path.
type Path string

// SourceMode tells how the file list of a run was obtained.
type SourceMode int

const (
	// SourceExplicit means a single path was named on the command line.
	// Read failures are fatal in this mode.
	SourceExplicit SourceMode = iota
	// SourceDiscovered means the paths came from walking the working directory.
	// Read failures skip the file.
	SourceDiscovered
)

// String returns the string representation of SourceMode.
func (s SourceMode) String() string {
	switch s {
	case SourceExplicit:
		return "explicit"
	case SourceDiscovered:
		return "discovered"
	default:
		return "unknown"
	}
}

// SearchConfig is built once per run and never mutated afterwards.
type SearchConfig struct {
	Query      string
	FilePaths  []Path
	IgnoreCase bool
	Mode       SourceMode
}

// FileRecord holds the full contents of one input file.
type FileRecord struct {
	FileName Path
	Contents string
}

// MatchLine is a single matching line. LineNumber is 0-based.
type MatchLine struct {
	LineNumber int
	LineText   string
}

// FileMatchGroup holds every match found in one file, ordered by line number.
type FileMatchGroup struct {
	FileName Path
	Matches  []MatchLine
}
