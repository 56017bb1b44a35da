package domain

// Batch is an ordered group of at most K file records processed together
// in one generation request.
type Batch struct {
	// Index is the zero-based position of the batch in the run.
	Index int

	// Files are the records in encounter order.
	Files []FileRecord
}

// Len returns the number of files in the batch.
func (b Batch) Len() int {
	return len(b.Files)
}

// Fragment is the text returned by one generation call for one batch.
type Fragment struct {
	BatchIndex int
	Text       string

	// Err is set when generation failed; Text is then empty.
	Err error
}

// IsEmpty reports whether the fragment contributes nothing to the document.
func (f Fragment) IsEmpty() bool {
	return f.Text == ""
}

// Readme is the result of a generation run.
type Readme struct {
	// RunID correlates log lines and tool output for one run.
	RunID string

	Repo      RepoRef
	Metadata  RepoMetadata
	Content   string
	Fragments []Fragment

	// Files is the number of files included by the scan.
	Files int

	// Batches is the number of generation requests made.
	Batches int
}

// FailedFragments returns how many batches failed to generate.
func (r *Readme) FailedFragments() int {
	n := 0
	for _, f := range r.Fragments {
		if f.Err != nil {
			n++
		}
	}
	return n
}
