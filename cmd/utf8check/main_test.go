package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStdinValid(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("hello"), &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "<stdin>: ok")
}

func TestRunStdinInvalid(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, bytes.NewReader([]byte{0xC0, 0x80}), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "invalid UTF-8 at byte 0")
}

func TestRunOffsetOnly(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-o"}, bytes.NewReader([]byte{0xC0, 0x80}), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Equal(t, "0\n", stdout.String())
}

func TestRunQuietSuppressesSummary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-q"}, strings.NewReader("hello"), &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout.String())
}

func TestRunFileArguments(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(good, []byte("fine"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte{0xFF}, 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{good, bad}, nil, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "good.txt: ok")
	assert.Contains(t, stdout.String(), "bad.txt: invalid UTF-8 at byte 0")
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"/nonexistent/path/does-not-exist"}, nil, &stdout, &stderr)
	assert.Equal(t, 2, code)
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, nil, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "Usage: utf8check")
}
