package output

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mdtool/internal/core/domain"
)

func TestFileSink_Write_DefaultPath(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	written, err := sink.Write(context.Background(), "", "# Demo\n")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "README.md"), written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "# Demo\n", string(data))

	info, err := os.Stat(written)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestFileSink_Write_CreatesParentsAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	_, err := sink.Write(context.Background(), "docs/out/README.md", "first")
	require.NoError(t, err)
	written, err := sink.Write(context.Background(), "docs/out/README.md", "second")
	require.NoError(t, err)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestFileSink_Write_AbsolutePathIgnoresBase(t *testing.T) {
	target := filepath.Join(t.TempDir(), "OUT.md")
	sink := NewFileSink("/nonexistent-base")

	written, err := sink.Write(context.Background(), target, "x")

	require.NoError(t, err)
	assert.Equal(t, target, written)
}

func TestFileSink_Write_Errors(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	_, err := sink.Write(context.Background(), ".", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sink.Write(ctx, "README.md", "x")
	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(filepath.Join(dir, "README.md"))
	assert.True(t, os.IsNotExist(statErr))
}
