package domain

import "fmt"

// FileRecord is one repository file's path, decoded text content, and size.
// Records are immutable once created.
type FileRecord struct {
	Path    string
	Content string
	Size    int64
}

// FileSet is an ordered collection of file records keyed by path.
// Iteration order is insertion order.
type FileSet struct {
	records []FileRecord
	index   map[string]int
}

// NewFileSet creates an empty file set.
func NewFileSet() *FileSet {
	return &FileSet{index: make(map[string]int)}
}

// Add appends a record. A path may only be added once.
func (s *FileSet) Add(rec FileRecord) error {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[rec.Path]; ok {
		return fmt.Errorf("%w: duplicate path %q", ErrInvalidInput, rec.Path)
	}
	s.index[rec.Path] = len(s.records)
	s.records = append(s.records, rec)
	return nil
}

// Get returns the record for path.
func (s *FileSet) Get(path string) (FileRecord, bool) {
	i, ok := s.index[path]
	if !ok {
		return FileRecord{}, false
	}
	return s.records[i], true
}

// Has reports whether path is in the set.
func (s *FileSet) Has(path string) bool {
	_, ok := s.index[path]
	return ok
}

// Len returns the number of records.
func (s *FileSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Records returns a copy of the records in encounter order.
func (s *FileSet) Records() []FileRecord {
	if s == nil {
		return nil
	}
	out := make([]FileRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Paths returns the record paths in encounter order.
func (s *FileSet) Paths() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.records))
	for i, r := range s.records {
		out[i] = r.Path
	}
	return out
}

// EntryKind is the type of a repository tree entry.
type EntryKind string

// Entry kinds reported by the repository host.
const (
	EntryFile  EntryKind = "file"
	EntryDir   EntryKind = "dir"
	EntryOther EntryKind = "other" // symlinks, submodules
)

// EntryOutcome is what the scanner did with a path.
type EntryOutcome string

// Possible scan outcomes.
const (
	OutcomeIncluded EntryOutcome = "included"
	OutcomeExcluded EntryOutcome = "excluded"
	OutcomeFailed   EntryOutcome = "failed"
)

// Reasons attached to excluded and failed entries.
const (
	ReasonTooLarge        = "exceeds max file size"
	ReasonSuffix          = "matches excluded suffix"
	ReasonSubstring       = "matches excluded pattern"
	ReasonUnsupportedKind = "unsupported entry type"
	ReasonListFailed      = "list directory failed"
	ReasonReadFailed      = "read file failed"
	ReasonNotText         = "content is not valid UTF-8 text"
)

// ScanEntry records the outcome for one path touched during a scan.
type ScanEntry struct {
	Path    string
	Kind    EntryKind
	Size    int64
	Outcome EntryOutcome
	Reason  string
	Err     error
}

// ScanResult is the output of a repository scan.
type ScanResult struct {
	Metadata RepoMetadata
	Files    *FileSet
	Entries  []ScanEntry
}

// Count returns how many entries have the given outcome.
func (r *ScanResult) Count(outcome EntryOutcome) int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome == outcome {
			n++
		}
	}
	return n
}

// Entry returns the recorded entry for path.
func (r *ScanResult) Entry(path string) (ScanEntry, bool) {
	for _, e := range r.Entries {
		if e.Path == path {
			return e, true
		}
	}
	return ScanEntry{}, false
}
