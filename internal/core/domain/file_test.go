package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSet_PreservesInsertionOrder(t *testing.T) {
	set := NewFileSet()
	for _, p := range []string{"z.go", "a.go", "m/b.go"} {
		require.NoError(t, set.Add(FileRecord{Path: p, Content: p, Size: 1}))
	}

	assert.Equal(t, []string{"z.go", "a.go", "m/b.go"}, set.Paths())
	assert.Equal(t, 3, set.Len())
}

func TestFileSet_RejectsDuplicatePath(t *testing.T) {
	set := NewFileSet()
	require.NoError(t, set.Add(FileRecord{Path: "main.go"}))

	err := set.Add(FileRecord{Path: "main.go", Content: "other"})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 1, set.Len())
}

func TestFileSet_Get(t *testing.T) {
	set := NewFileSet()
	require.NoError(t, set.Add(FileRecord{Path: "main.go", Content: "package main", Size: 12}))

	rec, ok := set.Get("main.go")
	require.True(t, ok)
	assert.Equal(t, "package main", rec.Content)
	assert.Equal(t, int64(12), rec.Size)

	_, ok = set.Get("missing.go")
	assert.False(t, ok)
	assert.True(t, set.Has("main.go"))
}

func TestFileSet_RecordsReturnsCopy(t *testing.T) {
	set := NewFileSet()
	require.NoError(t, set.Add(FileRecord{Path: "a.go", Content: "a"}))

	recs := set.Records()
	recs[0].Content = "changed"

	rec, _ := set.Get("a.go")
	assert.Equal(t, "a", rec.Content)
}

func TestFileSet_ZeroValueAndNil(t *testing.T) {
	var zero FileSet
	require.NoError(t, zero.Add(FileRecord{Path: "a.go"}))
	assert.Equal(t, 1, zero.Len())

	var nilSet *FileSet
	assert.Equal(t, 0, nilSet.Len())
	assert.Nil(t, nilSet.Records())
}

func TestScanResult_Count(t *testing.T) {
	res := &ScanResult{
		Entries: []ScanEntry{
			{Path: "a.go", Outcome: OutcomeIncluded},
			{Path: "lib.so", Outcome: OutcomeExcluded, Reason: ReasonSuffix},
			{Path: "b.go", Outcome: OutcomeIncluded},
			{Path: "img.bin", Outcome: OutcomeFailed, Reason: ReasonNotText},
		},
	}

	assert.Equal(t, 2, res.Count(OutcomeIncluded))
	assert.Equal(t, 1, res.Count(OutcomeExcluded))
	assert.Equal(t, 1, res.Count(OutcomeFailed))

	e, ok := res.Entry("lib.so")
	require.True(t, ok)
	assert.Equal(t, ReasonSuffix, e.Reason)
}

func TestReadme_FailedFragments(t *testing.T) {
	r := &Readme{Fragments: []Fragment{
		{BatchIndex: 0, Text: "a"},
		{BatchIndex: 1, Err: ErrLLMUnavailable},
		{BatchIndex: 2, Text: ""},
	}}

	assert.Equal(t, 1, r.FailedFragments())
	assert.True(t, r.Fragments[2].IsEmpty())
	assert.False(t, r.Fragments[0].IsEmpty())
}
