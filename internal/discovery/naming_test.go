package discovery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitExt(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		expectedRoot string
		expectedExt  string
	}{
		{name: "simple extension", file: "a.txt", expectedRoot: "a", expectedExt: ".txt"},
		{name: "no extension", file: "README", expectedRoot: "README", expectedExt: ""},
		{name: "multiple dots", file: "archive.tar.gz", expectedRoot: "archive.tar", expectedExt: ".gz"},
		{name: "dotfile", file: ".gitignore", expectedRoot: ".gitignore", expectedExt: ""},
		{name: "dotfile with extension", file: ".env.local", expectedRoot: ".env", expectedExt: ".local"},
		{name: "several leading dots", file: "..kdl", expectedRoot: "..kdl", expectedExt: ""},
		{name: "trailing dot", file: "file.", expectedRoot: "file", expectedExt: "."},
		{name: "empty", file: "", expectedRoot: "", expectedExt: ""},
		{name: "unicode", file: "узел.kdl", expectedRoot: "узел", expectedExt: ".kdl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, ext := SplitExt(tt.file)
			assert.Equal(t, tt.expectedRoot, root)
			assert.Equal(t, tt.expectedExt, ext)
			assert.Equal(t, tt.file, root+ext)
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	valid := []string{"a", "all_escapes", "_private", "node2", "Node", "узел"}
	for _, name := range valid {
		assert.True(t, IsIdentifier(name), "expected %q to be valid", name)
	}

	invalid := []string{"", "_", "1bad", "a-b", "a.b", "with space", "quote\"d", ".hidden"}
	for _, name := range invalid {
		assert.False(t, IsIdentifier(name), "expected %q to be invalid", name)
	}
}

func TestFindNameIssues(t *testing.T) {
	fixtures := fixturesNamed("ok.kdl", "fn.kdl", "a-b.kdl", "dup.kdl", "dup.txt", "1bad.kdl")

	issues := FindNameIssues(fixtures)
	require.Len(t, issues, 4)

	// Ordered by name
	assert.Equal(t, "1bad", issues[0].Name)
	assert.Equal(t, ReasonInvalidIdentifier, issues[0].Reason)

	assert.Equal(t, "a-b", issues[1].Name)
	assert.Equal(t, ReasonInvalidIdentifier, issues[1].Reason)

	assert.Equal(t, "dup", issues[2].Name)
	assert.Equal(t, ReasonNameConflict, issues[2].Reason)
	assert.Equal(t, []string{"dup.kdl", "dup.txt"}, issues[2].FileNames)

	assert.Equal(t, "fn", issues[3].Name)
	assert.Equal(t, ReasonReservedKeyword, issues[3].Reason)
}

func TestFindNameIssues_InvalidAndConflicting(t *testing.T) {
	issues := FindNameIssues(fixturesNamed("a-b.kdl", "a-b.txt"))
	require.Len(t, issues, 2)
	assert.Equal(t, ReasonInvalidIdentifier, issues[0].Reason)
	assert.Equal(t, ReasonNameConflict, issues[1].Reason)
}

func TestValidateNames(t *testing.T) {
	t.Run("valid names", func(t *testing.T) {
		assert.NoError(t, ValidateNames(fixturesNamed("a.txt", "b.txt", "README")))
	})

	t.Run("invalid identifier", func(t *testing.T) {
		err := ValidateNames(fixturesNamed("a.txt", "1bad.kdl"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidIdentifier))
		assert.False(t, errors.Is(err, ErrNameConflict))
		assert.Contains(t, err.Error(), "1bad.kdl")
	})

	t.Run("keyword", func(t *testing.T) {
		err := ValidateNames(fixturesNamed("match.kdl"))
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
	})

	t.Run("conflict", func(t *testing.T) {
		err := ValidateNames(fixturesNamed("x.kdl", "x.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNameConflict)
		assert.Contains(t, err.Error(), "x.kdl, x.txt")
	})

	t.Run("empty list", func(t *testing.T) {
		assert.NoError(t, ValidateNames(nil))
	})
}
