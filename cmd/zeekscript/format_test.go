package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandFormatArgsSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.zeek")
	require.NoError(t, os.WriteFile(path, []byte("global x: count;\n"), 0o644))

	got, err := expandFormatArgs([]string{path}, false)
	require.NoError(t, err)
	require.Equal(t, []string{path}, got)
}

func TestExpandFormatArgsNoArgsMeansStdin(t *testing.T) {
	got, err := expandFormatArgs(nil, false)
	require.NoError(t, err)
	require.Equal(t, []string{"-"}, got)
}

func TestExpandFormatArgsRecursiveFiltersToZeekExt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.zeek"), []byte("global x: count;\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.zeek"), []byte("global y: count;\n"), 0o644))

	got, err := expandFormatArgs([]string{dir}, true)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, p := range got {
		require.Equal(t, ".zeek", filepath.Ext(p))
	}
}

func TestExpandFormatArgsDirWithoutRecursiveSkips(t *testing.T) {
	dir := t.TempDir()
	got, err := expandFormatArgs([]string{dir}, false)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFormatInPlaceRewritesFileCanonically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.zeek")
	require.NoError(t, os.WriteFile(path, []byte("global x : count = 0 ;"), 0o644))

	require.NoError(t, formatInPlace(path, true))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "global x: count = 0;\n", string(got))
}

func TestFormatInPlaceReportsParseErrorsWithoutLosingTheFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.zeek")
	original := "!!! not zeek !!!\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	err := formatInPlace(path, true)
	require.Error(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, got)
}
